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

package domain

type Action string

const (
	ActionView    Action = "view"
	ActionLike    Action = "like"
	ActionComment Action = "comment"
	ActionShare   Action = "share"
	ActionCollect Action = "collect"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) Valid() bool {
	switch a {
	case ActionView, ActionLike, ActionComment, ActionShare, ActionCollect:
		return true
	default:
		return false
	}
}

// BehaviorEvent 用户行为，按时间倒序存放在用户的行为日志里
type BehaviorEvent struct {
	// 追加进日志时生成，方便排查重复上报
	Id       string
	Uid      int64
	ItemId   int64
	ItemKind ItemKind
	Action   Action
	Metadata map[string]any
	// 毫秒
	Ctime int64
}
