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

package scorer

import (
	"math"
	"time"
)

const (
	DefaultLikeWeight    = 2
	DefaultCommentWeight = 3
	// 一周之后大约剩 13%，两周之后大约剩 1.7%
	DefaultDecayHours = 168
)

// HotScorer 热度 = (点赞*2 + 评论*3) * exp(-小时数/168)
type HotScorer struct {
	LikeWeight    float64
	CommentWeight float64
	DecayHours    float64
	now           func() time.Time
}

func NewHotScorer() *HotScorer {
	return &HotScorer{
		LikeWeight:    DefaultLikeWeight,
		CommentWeight: DefaultCommentWeight,
		DecayHours:    DefaultDecayHours,
		now:           time.Now,
	}
}

// WithClock 测试用
func (h *HotScorer) WithClock(now func() time.Time) *HotScorer {
	h.now = now
	return h
}

func (h *HotScorer) Score(likes, comments int, ctime time.Time) float64 {
	return h.ScoreAt(likes, comments, h.now().Sub(ctime))
}

// ScoreAt 按内容年龄计算热度，时钟回拨导致的负年龄按 0 处理
func (h *HotScorer) ScoreAt(likes, comments int, age time.Duration) float64 {
	engagement := float64(max(likes, 0))*h.LikeWeight + float64(max(comments, 0))*h.CommentWeight
	if engagement <= 0 {
		return 0
	}
	ageHours := max(age.Hours(), 0)
	return engagement * math.Exp(-ageHours/h.DecayHours)
}
