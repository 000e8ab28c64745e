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

package web

import (
	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
)

const defaultCount = 10

type RecommendReq struct {
	UserId int64 `json:"user_id"`
	// 不传默认 10
	Count   *int           `json:"count"`
	Filters map[string]any `json:"filters"`
}

func (r RecommendReq) count() int {
	if r.Count == nil {
		return defaultCount
	}
	return *r.Count
}

type RecommendationItem struct {
	Id       int64          `json:"id"`
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Score    float64        `json:"score"`
	Reason   string         `json:"reason"`
	Metadata map[string]any `json:"metadata"`
}

func newRecommendationItem(item domain.RecommendationItem) RecommendationItem {
	return RecommendationItem{
		Id:       item.Id,
		Type:     item.Kind.String(),
		Title:    item.Title,
		Content:  item.Excerpt,
		Score:    item.Score,
		Reason:   string(item.Reason),
		Metadata: item.Metadata,
	}
}

type RecommendationList struct {
	Items []RecommendationItem `json:"items"`
	Total int                  `json:"total"`
}

type TrackReq struct {
	UserId   int64          `json:"user_id"`
	ItemId   int64          `json:"item_id"`
	ItemType string         `json:"item_type"`
	Action   string         `json:"action"`
	Metadata map[string]any `json:"metadata"`
}

type TrackResp struct {
	Success bool `json:"success"`
}

type RecentReq struct {
	UserId int64 `json:"user_id"`
	Limit  int   `json:"limit"`
}

type Behavior struct {
	Id       string         `json:"id"`
	ItemId   int64          `json:"item_id"`
	ItemType string         `json:"item_type"`
	Action   string         `json:"action"`
	Metadata map[string]any `json:"metadata"`
	// 毫秒
	Timestamp int64 `json:"timestamp"`
}

type BehaviorList struct {
	Items []Behavior `json:"items"`
	Total int        `json:"total"`
}

type SimilarityReq struct {
	Content1 string `json:"content1"`
	Content2 string `json:"content2"`
}

type SimilarityResp struct {
	Similarity float64 `json:"similarity"`
}

type HotReq struct {
	Category string `form:"category"`
	Limit    int    `form:"limit"`
}

type HotItem struct {
	Id       int64   `json:"id"`
	Title    string  `json:"title"`
	HotScore float64 `json:"hot_score"`
	Category string  `json:"category"`
}

type HotList struct {
	Items []HotItem `json:"items"`
	Total int       `json:"total"`
}
