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
	"fmt"
	"time"

	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrInvalidItemKind = errors.New("不支持的内容类型")
	ErrInvalidAction   = errors.New("不支持的行为类型")
)

// Tracker 把用户行为追加到用户的行为日志头部，容量由存储层保证
type Tracker struct {
	repo repository.BehaviorRepository
	now  func() time.Time
}

func NewTracker(repo repository.BehaviorRepository) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

func (t *Tracker) Track(ctx context.Context, evt domain.BehaviorEvent) error {
	if !evt.ItemKind.Valid() {
		return fmt.Errorf("%w %s", ErrInvalidItemKind, evt.ItemKind)
	}
	if !evt.Action.Valid() {
		return fmt.Errorf("%w %s", ErrInvalidAction, evt.Action)
	}
	if evt.Id == "" {
		evt.Id = uuid.NewString()
	}
	if evt.Ctime == 0 {
		evt.Ctime = t.now().UnixMilli()
	}
	if evt.Metadata == nil {
		evt.Metadata = map[string]any{}
	}
	return t.repo.Append(ctx, evt)
}

func (t *Tracker) Recent(ctx context.Context, uid int64, limit int) ([]domain.BehaviorEvent, error) {
	return t.repo.Recent(ctx, uid, limit)
}
