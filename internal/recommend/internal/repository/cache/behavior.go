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

package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const DefaultBehaviorCapacity = 1000

//go:generate mockgen -source=./behavior.go -package=cachemocks -destination=mocks/behavior.mock.go BehaviorCache
type BehaviorCache interface {
	// Push 写到列表头部，超出容量的旧记录会被裁掉
	Push(ctx context.Context, evt domain.BehaviorEvent) error
	// Recent 最新的在前
	Recent(ctx context.Context, uid int64, limit int) ([]domain.BehaviorEvent, error)
}

type RedisBehaviorCache struct {
	client   redis.Cmdable
	capacity int64
}

func NewRedisBehaviorCache(client redis.Cmdable, capacity int) BehaviorCache {
	if capacity <= 0 {
		capacity = DefaultBehaviorCapacity
	}
	return &RedisBehaviorCache{
		client:   client,
		capacity: int64(capacity),
	}
}

func (c *RedisBehaviorCache) Push(ctx context.Context, evt domain.BehaviorEvent) error {
	val, err := encodeBehavior(evt)
	if err != nil {
		return errors.Wrap(err, "序列化用户行为失败")
	}
	key := c.key(evt.Uid)
	// LPUSH 和 LTRIM 放在一个事务里，其他客户端看不到超出容量的中间状态
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, val)
		pipe.LTrim(ctx, key, 0, c.capacity-1)
		return nil
	})
	return errors.Wrapf(err, "写入用户行为失败 key %s", key)
}

func (c *RedisBehaviorCache) Recent(ctx context.Context, uid int64, limit int) ([]domain.BehaviorEvent, error) {
	if limit <= 0 {
		return []domain.BehaviorEvent{}, nil
	}
	vals, err := c.client.LRange(ctx, c.key(uid), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "读取用户行为失败")
	}
	res := make([]domain.BehaviorEvent, 0, len(vals))
	for _, val := range vals {
		evt, err := decodeBehavior(uid, val)
		// 脏数据直接跳过
		if err != nil {
			continue
		}
		res = append(res, evt)
	}
	return res, nil
}

func (c *RedisBehaviorCache) key(uid int64) string {
	return fmt.Sprintf("user:%d:behavior", uid)
}

// behavior 列表里面存的 JSON，字段名和线上已有的数据保持一致。老数据没有 id 和 timestamp
type behavior struct {
	Id       string         `json:"id"`
	ItemId   int64          `json:"item_id"`
	ItemType string         `json:"item_type"`
	Action   string         `json:"action"`
	Metadata map[string]any `json:"metadata"`
	Ctime    int64          `json:"timestamp"`
}

func encodeBehavior(evt domain.BehaviorEvent) ([]byte, error) {
	meta := evt.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return json.Marshal(behavior{
		Id:       evt.Id,
		ItemId:   evt.ItemId,
		ItemType: evt.ItemKind.String(),
		Action:   evt.Action.String(),
		Metadata: meta,
		Ctime:    evt.Ctime,
	})
}

func decodeBehavior(uid int64, val string) (domain.BehaviorEvent, error) {
	var b behavior
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return domain.BehaviorEvent{}, err
	}
	return domain.BehaviorEvent{
		Id:       b.Id,
		Uid:      uid,
		ItemId:   b.ItemId,
		ItemKind: domain.ItemKind(b.ItemType),
		Action:   domain.Action(b.Action),
		Metadata: b.Metadata,
		Ctime:    b.Ctime,
	}, nil
}
