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

package service

import (
	"context"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service/scorer"
)

// HotList 热榜，和个性化推荐无关，每次请求重新计算
type HotList struct {
	repo repository.ItemRepository
	hot  *scorer.HotScorer
	cfg  Config
}

func NewHotList(repo repository.ItemRepository, hot *scorer.HotScorer, cfg Config) *HotList {
	return &HotList{repo: repo, hot: hot, cfg: cfg}
}

func (h *HotList) Questions(ctx context.Context, category string, limit int) ([]domain.HotItem, error) {
	return h.list(ctx, domain.KindQuestion, h.cfg.QuestionPool, category, limit)
}

func (h *HotList) Notes(ctx context.Context, category string, limit int) ([]domain.HotItem, error) {
	return h.list(ctx, domain.KindNote, h.cfg.NotePool, category, limit)
}

// Limit 热榜条数限制在 [1, HotListMaxLimit]
func (h *HotList) Limit(limit int) int {
	return min(max(limit, 1), h.cfg.HotListMaxLimit)
}

func (h *HotList) list(ctx context.Context, kind domain.ItemKind, pool int,
	category string, limit int) ([]domain.HotItem, error) {
	items, err := h.repo.Candidates(ctx, kind, category, pool)
	if err != nil {
		return nil, err
	}
	res := slice.Map(items, func(idx int, src domain.Item) domain.HotItem {
		cate := src.Attr(domain.AttrCategory).StringOrDefault("")
		if cate == "" {
			cate = category
		}
		if cate == "" {
			cate = domain.DefaultCategory
		}
		return domain.HotItem{
			Id:       src.Id,
			Title:    src.Title,
			HotScore: h.hot.Score(src.Engagement.Likes, src.Engagement.Comments, src.Ctime),
			Category: cate,
		}
	})
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].HotScore > res[j].HotScore
	})
	limit = h.Limit(limit)
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
