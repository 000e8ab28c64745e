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

package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository/dao"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./item.go -package=repomocks -destination=mocks/item.mock.go ItemRepository
type ItemRepository interface {
	// Candidates 某个领域的候选集，category 为空表示不过滤。village 忽略 category
	Candidates(ctx context.Context, kind domain.ItemKind, category string, limit int) ([]domain.Item, error)
	// InteractedIds 用户在这个领域已经交互过的内容
	InteractedIds(ctx context.Context, uid int64, kind domain.ItemKind) (map[int64]struct{}, error)
	// HistoryTexts 用户最近点赞过的问题的标题加内容，最新的在前
	HistoryTexts(ctx context.Context, uid int64, limit int) ([]string, error)
}

type itemRepository struct {
	dao dao.ItemDAO
}

func NewItemRepository(d dao.ItemDAO) ItemRepository {
	return &itemRepository{dao: d}
}

func (repo *itemRepository) Candidates(ctx context.Context, kind domain.ItemKind,
	category string, limit int) ([]domain.Item, error) {
	switch kind {
	case domain.KindQuestion:
		rows, err := repo.dao.ListQuestions(ctx, category, limit)
		if err != nil {
			return nil, errors.Wrap(err, "查询候选问题失败")
		}
		return slice.Map(rows, func(idx int, src dao.QuestionRow) domain.Item {
			return repo.questionToDomain(src)
		}), nil
	case domain.KindNote:
		rows, err := repo.dao.ListNotes(ctx, category, limit)
		if err != nil {
			return nil, errors.Wrap(err, "查询候选笔记失败")
		}
		return slice.Map(rows, func(idx int, src dao.NoteRow) domain.Item {
			return repo.noteToDomain(src)
		}), nil
	case domain.KindVillage:
		rows, err := repo.dao.ListVillages(ctx, limit)
		if err != nil {
			return nil, errors.Wrap(err, "查询候选村落失败")
		}
		return slice.Map(rows, func(idx int, src dao.Village) domain.Item {
			return repo.villageToDomain(src)
		}), nil
	default:
		return nil, fmt.Errorf("不支持推荐的类型 %s", kind)
	}
}

func (repo *itemRepository) InteractedIds(ctx context.Context, uid int64, kind domain.ItemKind) (map[int64]struct{}, error) {
	var (
		ids []int64
		err error
	)
	switch kind {
	case domain.KindQuestion:
		ids, err = repo.dao.LikedQuestionIds(ctx, uid)
	case domain.KindNote:
		ids, err = repo.dao.LikedNoteIds(ctx, uid)
	case domain.KindVillage:
		ids, err = repo.dao.JoinedVillageIds(ctx, uid)
	default:
		return nil, fmt.Errorf("不支持推荐的类型 %s", kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "查询用户交互记录失败 uid %d", uid)
	}
	res := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res, nil
}

func (repo *itemRepository) HistoryTexts(ctx context.Context, uid int64, limit int) ([]string, error) {
	qs, err := repo.dao.LikedQuestions(ctx, uid, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "查询用户历史失败 uid %d", uid)
	}
	return slice.Map(qs, func(idx int, src dao.Question) string {
		return src.Title + " " + src.Content
	}), nil
}

func (repo *itemRepository) questionToDomain(q dao.QuestionRow) domain.Item {
	return domain.Item{
		Id:      q.Id,
		Kind:    domain.KindQuestion,
		Title:   q.Title,
		Content: q.Content,
		Tags:    q.Tags,
		Ctime:   q.CreatedAt,
		Engagement: domain.Engagement{
			Likes:    q.Likes,
			Comments: q.AnswerCount,
		},
	}
}

func (repo *itemRepository) noteToDomain(n dao.NoteRow) domain.Item {
	return domain.Item{
		Id:      n.Id,
		Kind:    domain.KindNote,
		Title:   n.Title,
		Content: n.Content,
		Tags:    n.Tags,
		Ctime:   n.CreatedAt,
		Engagement: domain.Engagement{
			Likes:    n.LikeCount,
			Comments: n.CommentCount,
		},
		Extra: map[string]any{
			domain.AttrCategory: n.Category,
		},
	}
}

func (repo *itemRepository) villageToDomain(v dao.Village) domain.Item {
	return domain.Item{
		Id:      v.Id,
		Kind:    domain.KindVillage,
		Title:   v.Name,
		Content: v.Description,
		Ctime:   v.CreatedAt,
		Extra: map[string]any{
			domain.AttrMemberCount: v.MemberCount,
			domain.AttrPostCount:   v.PostCount,
			domain.AttrCategory:    v.Category,
			domain.AttrIcon:        v.Icon,
		},
	}
}
