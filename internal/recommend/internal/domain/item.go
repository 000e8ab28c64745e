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

import (
	"time"

	"github.com/ecodeclub/ekit"
)

type ItemKind string

const (
	KindQuestion ItemKind = "question"
	KindAnswer   ItemKind = "answer"
	KindNote     ItemKind = "note"
	KindPost     ItemKind = "post"
	KindVillage  ItemKind = "village"
)

func (k ItemKind) String() string {
	return string(k)
}

// Valid 行为上报允许的全部类型，推荐只覆盖 question、note、village 三类
func (k ItemKind) Valid() bool {
	switch k {
	case KindQuestion, KindAnswer, KindNote, KindPost, KindVillage:
		return true
	default:
		return false
	}
}

// Extra 里面常用的 key
const (
	AttrMemberCount = "member_count"
	AttrPostCount   = "post_count"
	AttrCategory    = "category"
	AttrIcon        = "icon"
)

// Item 一次推荐请求里从数据库读出来的候选内容快照
type Item struct {
	Id         int64
	Kind       ItemKind
	Title      string
	Content    string
	Tags       string
	Ctime      time.Time
	Engagement Engagement
	Extra      map[string]any
}

type Engagement struct {
	Likes int
	// 问题是回答数，笔记是评论数
	Comments int
}

// Attr 读取 Extra 中的字段，缺失时拿到的是零值
func (i Item) Attr(key string) ekit.AnyValue {
	val, ok := i.Extra[key]
	if !ok {
		return ekit.AnyValue{}
	}
	return ekit.AnyValue{Val: val}
}

// Text 参与相似度计算的文本
func (i Item) Text() string {
	return i.Title + " " + i.Content
}

// UserInteraction 用户在某个领域内已经交互过的内容，以及用于兴趣匹配的历史文本
type UserInteraction struct {
	InteractedIds map[int64]struct{}
	// 最新的在前面
	HistoryTexts []string
}

func (u UserInteraction) Interacted(id int64) bool {
	_, ok := u.InteractedIds[id]
	return ok
}
