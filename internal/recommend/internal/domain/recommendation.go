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

type Reason string

const (
	ReasonPopular       Reason = "popular"
	ReasonInterestMatch Reason = "interest_match"
)

// 展示给用户的推荐理由
const (
	LabelInterest        = "基于您的兴趣"
	LabelHotQuestion     = "热门问题"
	LabelHotNote         = "热门笔记"
	LabelMaybeInterested = "可能感兴趣"
)

const MetaReasonLabel = "reason_label"

// Filters 推荐请求里的领域过滤条件，目前只接收
type Filters map[string]any

// ScoredCandidate 排序过程中的中间结果，请求结束就丢弃
type ScoredCandidate struct {
	Item         Item
	HotScore     float64
	ContentScore float64
	Combined     float64
	Reason       Reason
}

// RecommendationItem 返回给调用方的推荐结果，Score 在 [0, 0.99]
type RecommendationItem struct {
	Id       int64
	Kind     ItemKind
	Title    string
	Excerpt  string
	Score    float64
	Reason   Reason
	Metadata map[string]any
}

// HotItem 热榜条目
type HotItem struct {
	Id       int64
	Title    string
	HotScore float64
	Category string
}

const DefaultCategory = "综合"
