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
	"github.com/ecodeclub/recommend/internal/pkg/excerpt"
	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service/scorer"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// Ranker 三个领域共用一套流程：取交互集合和候选集，排除、打分、稳定排序、截断
type Ranker struct {
	repo   repository.ItemRepository
	hot    *scorer.HotScorer
	sim    *scorer.TFIDFScorer
	cfg    Config
	logger *elog.Component
}

func NewRanker(repo repository.ItemRepository, hot *scorer.HotScorer,
	sim *scorer.TFIDFScorer, cfg Config) *Ranker {
	return &Ranker{
		repo:   repo,
		hot:    hot,
		sim:    sim,
		cfg:    cfg,
		logger: elog.DefaultLogger,
	}
}

// policy 领域之间只有候选池、打分和输出字段不一样
type policy struct {
	kind        domain.ItemKind
	pool        int
	withHistory bool
	score       func(item domain.Item, interaction domain.UserInteraction) domain.ScoredCandidate
	metadata    func(c domain.ScoredCandidate) map[string]any
	finalScore  func(c domain.ScoredCandidate) float64
	label       func(c domain.ScoredCandidate) string
}

func (r *Ranker) RankQuestions(ctx context.Context, uid int64, count int) ([]domain.RecommendationItem, error) {
	return r.rank(ctx, uid, count, policy{
		kind:        domain.KindQuestion,
		pool:        r.cfg.QuestionPool,
		withHistory: true,
		score:       r.scoreQuestion,
		metadata: func(c domain.ScoredCandidate) map[string]any {
			return map[string]any{
				"likes":         c.Item.Engagement.Likes,
				"answer_count":  c.Item.Engagement.Comments,
				"tags":          c.Item.Tags,
				"hot_score":     c.HotScore,
				"content_score": c.ContentScore,
			}
		},
		finalScore: r.rescale,
		label: func(c domain.ScoredCandidate) string {
			if c.Reason == domain.ReasonInterestMatch {
				return domain.LabelInterest
			}
			return domain.LabelHotQuestion
		},
	})
}

func (r *Ranker) RankNotes(ctx context.Context, uid int64, count int) ([]domain.RecommendationItem, error) {
	return r.rank(ctx, uid, count, policy{
		kind: domain.KindNote,
		pool: r.cfg.NotePool,
		score: func(item domain.Item, _ domain.UserInteraction) domain.ScoredCandidate {
			hot := r.hot.Score(item.Engagement.Likes, item.Engagement.Comments, item.Ctime)
			return domain.ScoredCandidate{
				Item:     item,
				HotScore: hot,
				Combined: hot,
				Reason:   domain.ReasonPopular,
			}
		},
		metadata: func(c domain.ScoredCandidate) map[string]any {
			return map[string]any{
				"likes":    c.Item.Engagement.Likes,
				"comments": c.Item.Engagement.Comments,
				"category": c.Item.Attr(domain.AttrCategory).StringOrDefault(""),
			}
		},
		finalScore: r.rescale,
		label: func(domain.ScoredCandidate) string {
			return domain.LabelHotNote
		},
	})
}

func (r *Ranker) RankVillages(ctx context.Context, uid int64, count int) ([]domain.RecommendationItem, error) {
	return r.rank(ctx, uid, count, policy{
		kind: domain.KindVillage,
		pool: r.cfg.VillagePool,
		score: func(item domain.Item, _ domain.UserInteraction) domain.ScoredCandidate {
			members := item.Attr(domain.AttrMemberCount).IntOrDefault(0)
			posts := item.Attr(domain.AttrPostCount).IntOrDefault(0)
			// 只看成员和帖子的增长，不衰减也不算相似度
			growth := float64(max(members, 0)+max(posts, 0)*2) / 100
			return domain.ScoredCandidate{
				Item:     item,
				Combined: min(growth, r.cfg.ScoreCap),
				Reason:   domain.ReasonPopular,
			}
		},
		metadata: func(c domain.ScoredCandidate) map[string]any {
			return map[string]any{
				domain.AttrMemberCount: c.Item.Attr(domain.AttrMemberCount).IntOrDefault(0),
				domain.AttrPostCount:   c.Item.Attr(domain.AttrPostCount).IntOrDefault(0),
				domain.AttrCategory:    c.Item.Attr(domain.AttrCategory).StringOrDefault(""),
				domain.AttrIcon:        c.Item.Attr(domain.AttrIcon).StringOrDefault(""),
			}
		},
		finalScore: func(c domain.ScoredCandidate) float64 {
			return r.clamp(c.Combined)
		},
		label: func(domain.ScoredCandidate) string {
			return domain.LabelMaybeInterested
		},
	})
}

func (r *Ranker) rank(ctx context.Context, uid int64, count int, p policy) ([]domain.RecommendationItem, error) {
	if count <= 0 {
		return []domain.RecommendationItem{}, nil
	}
	var (
		eg          errgroup.Group
		interaction domain.UserInteraction
		candidates  []domain.Item
	)
	eg.Go(func() error {
		ids, err := r.repo.InteractedIds(ctx, uid, p.kind)
		interaction.InteractedIds = ids
		return err
	})
	eg.Go(func() error {
		var err error
		candidates, err = r.repo.Candidates(ctx, p.kind, "", p.pool)
		return err
	})
	if p.withHistory {
		eg.Go(func() error {
			texts, err := r.repo.HistoryTexts(ctx, uid, r.cfg.HistorySize)
			if err != nil {
				// 拿不到历史就退化成只按热度排序
				r.logger.Warn("查询用户历史失败，退化为热度排序",
					elog.FieldErr(err),
					elog.Int64("uid", uid))
				return nil
			}
			interaction.HistoryTexts = texts
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, item := range candidates {
		if interaction.Interacted(item.Id) {
			continue
		}
		scored = append(scored, p.score(item, interaction))
	}
	// 稳定排序，分数相同的保持数据库返回的顺序
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Combined > scored[j].Combined
	})
	if len(scored) > count {
		scored = scored[:count]
	}
	return slice.Map(scored, func(idx int, src domain.ScoredCandidate) domain.RecommendationItem {
		meta := p.metadata(src)
		meta[domain.MetaReasonLabel] = p.label(src)
		return domain.RecommendationItem{
			Id:       src.Item.Id,
			Kind:     src.Item.Kind,
			Title:    src.Item.Title,
			Excerpt:  excerpt.Make(src.Item.Content, r.cfg.ExcerptLength),
			Score:    p.finalScore(src),
			Reason:   src.Reason,
			Metadata: meta,
		}
	}), nil
}

func (r *Ranker) scoreQuestion(item domain.Item, interaction domain.UserInteraction) domain.ScoredCandidate {
	hot := r.hot.Score(item.Engagement.Likes, item.Engagement.Comments, item.Ctime)
	var content float64
	if len(interaction.HistoryTexts) > 0 {
		content = r.sim.MaxSimilarity(item.Text(), interaction.HistoryTexts) * r.cfg.SimilarityScale
	}
	reason := domain.ReasonPopular
	if content > hot {
		reason = domain.ReasonInterestMatch
	}
	return domain.ScoredCandidate{
		Item:         item,
		HotScore:     hot,
		ContentScore: content,
		Combined:     hot*r.cfg.HotWeight + content*r.cfg.ContentWeight,
		Reason:       reason,
	}
}

func (r *Ranker) rescale(c domain.ScoredCandidate) float64 {
	return r.clamp(c.Combined / r.cfg.ScoreScale)
}

func (r *Ranker) clamp(score float64) float64 {
	return min(max(score, 0), r.cfg.ScoreCap)
}
