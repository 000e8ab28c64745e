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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type ItemDAO interface {
	// ListQuestions 按照发布时间倒序，category 不为空的时候按照标签模糊匹配
	ListQuestions(ctx context.Context, category string, limit int) ([]QuestionRow, error)
	ListNotes(ctx context.Context, category string, limit int) ([]NoteRow, error)
	// ListVillages 按照成员数、帖子数倒序
	ListVillages(ctx context.Context, limit int) ([]Village, error)

	LikedQuestionIds(ctx context.Context, uid int64) ([]int64, error)
	LikedNoteIds(ctx context.Context, uid int64) ([]int64, error)
	JoinedVillageIds(ctx context.Context, uid int64) ([]int64, error)
	// LikedQuestions 最近点赞过的问题，最新的在前
	LikedQuestions(ctx context.Context, uid int64, limit int) ([]Question, error)
}

type GORMItemDAO struct {
	db *egorm.Component
}

func NewGORMItemDAO(db *egorm.Component) ItemDAO {
	return &GORMItemDAO{db: db}
}

func (g *GORMItemDAO) ListQuestions(ctx context.Context, category string, limit int) ([]QuestionRow, error) {
	var res []QuestionRow
	db := g.db.WithContext(ctx).Model(&Question{}).
		Select("questions.id, questions.title, questions.content, questions.tags, questions.likes, questions.created_at, " +
			"(SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id " +
			"AND answers.status = 1 AND answers.deleted_at IS NULL) AS answer_count").
		Where("questions.status = ?", StatusNormal)
	if category != "" {
		db = db.Where("questions.tags LIKE ?", "%"+category+"%")
	}
	err := db.Order("questions.created_at DESC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}

func (g *GORMItemDAO) ListNotes(ctx context.Context, category string, limit int) ([]NoteRow, error) {
	var res []NoteRow
	db := g.db.WithContext(ctx).Model(&Note{}).
		Select("notes.id, notes.title, notes.content, notes.category, notes.tags, notes.created_at, "+
			"(SELECT COUNT(*) FROM note_likes WHERE note_likes.note_id = notes.id) AS like_count, "+
			"(SELECT COUNT(*) FROM comments WHERE comments.target_id = notes.id "+
			"AND comments.target_type = ? AND comments.deleted_at IS NULL) AS comment_count", CommentTargetNote).
		Where("notes.status = ?", StatusNormal)
	if category != "" {
		db = db.Where("notes.category = ?", category)
	}
	err := db.Order("notes.created_at DESC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}

func (g *GORMItemDAO) ListVillages(ctx context.Context, limit int) ([]Village, error) {
	var res []Village
	err := g.db.WithContext(ctx).
		Where("status = ?", StatusNormal).
		Order("member_count DESC, post_count DESC, id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMItemDAO) LikedQuestionIds(ctx context.Context, uid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&QuestionLike{}).
		Where("user_id = ?", uid).
		Pluck("question_id", &res).Error
	return res, err
}

func (g *GORMItemDAO) LikedNoteIds(ctx context.Context, uid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&NoteLike{}).
		Where("user_id = ?", uid).
		Pluck("note_id", &res).Error
	return res, err
}

func (g *GORMItemDAO) JoinedVillageIds(ctx context.Context, uid int64) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&VillageMember{}).
		Where("user_id = ?", uid).
		Pluck("village_id", &res).Error
	return res, err
}

func (g *GORMItemDAO) LikedQuestions(ctx context.Context, uid int64, limit int) ([]Question, error) {
	var res []Question
	err := g.db.WithContext(ctx).Model(&Question{}).
		Select("questions.id, questions.title, questions.content").
		Joins("JOIN question_likes ON question_likes.question_id = questions.id").
		Where("question_likes.user_id = ? AND questions.status = ?", uid, StatusNormal).
		Order("question_likes.created_at DESC, question_likes.id DESC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}
