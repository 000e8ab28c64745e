// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testioc

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

// BehaviorTopic 和线上的 topic 保持一致
const BehaviorTopic = "recommend_behavior_events"

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 测试里面用内存实现替换 kafka
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		strategy, err := retry.NewExponentialBackoffRetryStrategy(100*time.Millisecond, time.Second, 5)
		if err != nil {
			panic(err)
		}
		for {
			q, err = newMemoryMQ(BehaviorTopic)
			if err == nil {
				return
			}
			next, ok := strategy.Next()
			if !ok {
				panic("初始化内存 MQ 失败")
			}
			time.Sleep(next)
		}
	})
	return q
}

func newMemoryMQ(topics ...string) (mq.MQ, error) {
	qq := memory.NewMQ()
	for _, topic := range topics {
		if err := qq.CreateTopic(context.Background(), topic, 1); err != nil {
			return nil, err
		}
	}
	return qq, nil
}
