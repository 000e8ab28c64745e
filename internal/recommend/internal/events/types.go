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

import "github.com/ecodeclub/recommend/internal/recommend/internal/domain"

const BehaviorTopic = "recommend_behavior_events"

// BehaviorEvent 业务服务异步上报的用户行为，字段和 /behavior/track 的请求体一致
type BehaviorEvent struct {
	UserId   int64          `json:"user_id"`
	ItemId   int64          `json:"item_id"`
	ItemType string         `json:"item_type"`
	Action   string         `json:"action"`
	Metadata map[string]any `json:"metadata"`
	// 毫秒，不传就用消费的时间
	Timestamp int64 `json:"timestamp"`
}

func (evt BehaviorEvent) toDomain() domain.BehaviorEvent {
	return domain.BehaviorEvent{
		Uid:      evt.UserId,
		ItemId:   evt.ItemId,
		ItemKind: domain.ItemKind(evt.ItemType),
		Action:   domain.Action(evt.Action),
		Metadata: evt.Metadata,
		Ctime:    evt.Timestamp,
	}
}
