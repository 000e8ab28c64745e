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
	"errors"

	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service/scorer"
	"github.com/gotomicro/ego/core/elog"
)

// Service 对外的推荐入口。数据源出错的时候不返回错误，
// 只记录日志并返回空列表、false 或者 0
//
//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go Service
type Service interface {
	RecommendQuestions(ctx context.Context, uid int64, count int, filters domain.Filters) []domain.RecommendationItem
	RecommendNotes(ctx context.Context, uid int64, count int, filters domain.Filters) []domain.RecommendationItem
	RecommendVillages(ctx context.Context, uid int64, count int, filters domain.Filters) []domain.RecommendationItem

	// Track 返回是否写入成功，参数不合法返回 error
	Track(ctx context.Context, evt domain.BehaviorEvent) (bool, error)
	RecentBehaviors(ctx context.Context, uid int64, limit int) []domain.BehaviorEvent

	Similarity(content1, content2 string) float64

	HotQuestions(ctx context.Context, category string, limit int) []domain.HotItem
	HotNotes(ctx context.Context, category string, limit int) []domain.HotItem
}

type service struct {
	ranker  *Ranker
	tracker *Tracker
	hotList *HotList
	sim     *scorer.TFIDFScorer
	logger  *elog.Component
}

func NewService(ranker *Ranker, tracker *Tracker, hotList *HotList, sim *scorer.TFIDFScorer) Service {
	return &service{
		ranker:  ranker,
		tracker: tracker,
		hotList: hotList,
		sim:     sim,
		logger:  elog.DefaultLogger,
	}
}

// 过滤条件目前只接收不使用
func (s *service) RecommendQuestions(ctx context.Context, uid int64, count int, _ domain.Filters) []domain.RecommendationItem {
	res, err := s.ranker.RankQuestions(ctx, uid, count)
	return s.degrade(res, err, uid, domain.KindQuestion)
}

func (s *service) RecommendNotes(ctx context.Context, uid int64, count int, _ domain.Filters) []domain.RecommendationItem {
	res, err := s.ranker.RankNotes(ctx, uid, count)
	return s.degrade(res, err, uid, domain.KindNote)
}

func (s *service) RecommendVillages(ctx context.Context, uid int64, count int, _ domain.Filters) []domain.RecommendationItem {
	res, err := s.ranker.RankVillages(ctx, uid, count)
	return s.degrade(res, err, uid, domain.KindVillage)
}

func (s *service) degrade(res []domain.RecommendationItem, err error,
	uid int64, kind domain.ItemKind) []domain.RecommendationItem {
	if err != nil {
		s.logger.Error("生成推荐失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.String("kind", kind.String()))
		return []domain.RecommendationItem{}
	}
	return res
}

func (s *service) Track(ctx context.Context, evt domain.BehaviorEvent) (bool, error) {
	err := s.tracker.Track(ctx, evt)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrInvalidItemKind) || errors.Is(err, ErrInvalidAction):
		return false, err
	default:
		s.logger.Error("记录用户行为失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
			elog.Int64("itemId", evt.ItemId),
			elog.String("action", evt.Action.String()))
		return false, nil
	}
}

func (s *service) RecentBehaviors(ctx context.Context, uid int64, limit int) []domain.BehaviorEvent {
	res, err := s.tracker.Recent(ctx, uid, limit)
	if err != nil {
		s.logger.Error("查询用户行为失败", elog.FieldErr(err), elog.Int64("uid", uid))
		return []domain.BehaviorEvent{}
	}
	return res
}

func (s *service) Similarity(content1, content2 string) float64 {
	return s.sim.Similarity(content1, content2)
}

func (s *service) HotQuestions(ctx context.Context, category string, limit int) []domain.HotItem {
	res, err := s.hotList.Questions(ctx, category, limit)
	if err != nil {
		s.logger.Error("查询热门问题失败", elog.FieldErr(err), elog.String("category", category))
		return []domain.HotItem{}
	}
	return res
}

func (s *service) HotNotes(ctx context.Context, category string, limit int) []domain.HotItem {
	res, err := s.hotList.Notes(ctx, category, limit)
	if err != nil {
		s.logger.Error("查询热门笔记失败", elog.FieldErr(err), elog.String("category", category))
		return []domain.HotItem{}
	}
	return res
}
