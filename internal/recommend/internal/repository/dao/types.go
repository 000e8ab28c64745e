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
	"time"

	"gorm.io/gorm"
)

// 下面的表都由业务服务维护，推荐服务只读

const (
	StatusNormal = 1

	CommentTargetNote = "note"
)

type Question struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Title    string `gorm:"size:200;not null;index"`
	Content  string `gorm:"type:text;not null"`
	AuthorId int64  `gorm:"column:author_id;not null;index"`
	Tags     string `gorm:"size:500"`
	Likes    int    `gorm:"default:0;index"`
	Views    int    `gorm:"default:0"`
	Status   int    `gorm:"default:1;index"`
}

func (Question) TableName() string {
	return "questions"
}

type Answer struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	QuestionId int64          `gorm:"column:question_id;not null;index"`
	Content    string         `gorm:"type:text;not null"`
	AuthorId   int64          `gorm:"column:author_id;not null;index"`
	Status     int            `gorm:"default:1;index"`
}

func (Answer) TableName() string {
	return "answers"
}

type QuestionLike struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt  time.Time
	QuestionId int64 `gorm:"column:question_id;not null;uniqueIndex:idx_question_user"`
	UserId     int64 `gorm:"column:user_id;not null;uniqueIndex:idx_question_user"`
}

func (QuestionLike) TableName() string {
	return "question_likes"
}

type Note struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Title    string `gorm:"size:200;not null"`
	Content  string `gorm:"type:text;not null"`
	AuthorId int64  `gorm:"column:author_id;not null"`
	Category string `gorm:"size:50"`
	Tags     string `gorm:"size:500"`
	Status   int    `gorm:"default:1"`
}

func (Note) TableName() string {
	return "notes"
}

type NoteLike struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt time.Time
	NoteId    int64 `gorm:"column:note_id;not null;uniqueIndex:idx_note_user"`
	UserId    int64 `gorm:"column:user_id;not null;uniqueIndex:idx_note_user"`
}

func (NoteLike) TableName() string {
	return "note_likes"
}

type Comment struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	TargetId   int64          `gorm:"column:target_id;not null"`
	TargetType string         `gorm:"size:20;not null"`
	Content    string         `gorm:"type:text;not null"`
	AuthorId   int64          `gorm:"column:author_id;not null"`
	Status     int            `gorm:"default:1"`
}

func (Comment) TableName() string {
	return "comments"
}

type Village struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"size:255"`
	Category    string `gorm:"size:50"`
	MemberCount int    `gorm:"default:0"`
	PostCount   int    `gorm:"default:0"`
	Status      int    `gorm:"default:1"`
}

func (Village) TableName() string {
	return "villages"
}

type VillageMember struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	CreatedAt time.Time
	VillageId int64 `gorm:"column:village_id;not null"`
	UserId    int64 `gorm:"column:user_id;not null"`
	// 0:成员 1:管理员 2:创建者
	Role int `gorm:"default:0"`
}

func (VillageMember) TableName() string {
	return "village_members"
}

// QuestionRow 问题加上回答数
type QuestionRow struct {
	Id          int64
	Title       string
	Content     string
	Tags        string
	Likes       int
	AnswerCount int
	CreatedAt   time.Time
}

// NoteRow 笔记加上点赞数和评论数
type NoteRow struct {
	Id           int64
	Title        string
	Content      string
	Category     string
	Tags         string
	LikeCount    int
	CommentCount int
	CreatedAt    time.Time
}
