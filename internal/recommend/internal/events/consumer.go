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

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

var errTrackFailed = errors.New("写入用户行为失败")

type BehaviorConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewBehaviorConsumer(svc service.Service, q mq.MQ) (*BehaviorConsumer, error) {
	const groupID = "recommend"
	consumer, err := q.Consumer(BehaviorTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &BehaviorConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start ctx 取消之后退出
func (c *BehaviorConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			err := c.Consume(ctx)
			if err != nil && ctx.Err() == nil {
				c.logger.Error("消费用户行为事件失败", elog.FieldErr(err))
			}
		}
	}()
}

// Consume 解析失败或者参数不合法的消息直接丢弃
func (c *BehaviorConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt BehaviorEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	ok, err := c.svc.Track(ctx, evt.toDomain())
	if err != nil {
		return fmt.Errorf("非法的用户行为事件 uid %d: %w", evt.UserId, err)
	}
	if !ok {
		return fmt.Errorf("%w uid %d", errTrackFailed, evt.UserId)
	}
	return nil
}
