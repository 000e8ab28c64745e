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

	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository/cache"
)

//go:generate mockgen -source=./behavior.go -package=repomocks -destination=mocks/behavior.mock.go BehaviorRepository
type BehaviorRepository interface {
	Append(ctx context.Context, evt domain.BehaviorEvent) error
	Recent(ctx context.Context, uid int64, limit int) ([]domain.BehaviorEvent, error)
}

type behaviorRepository struct {
	cache cache.BehaviorCache
}

func NewBehaviorRepository(c cache.BehaviorCache) BehaviorRepository {
	return &behaviorRepository{cache: c}
}

func (repo *behaviorRepository) Append(ctx context.Context, evt domain.BehaviorEvent) error {
	return repo.cache.Push(ctx, evt)
}

func (repo *behaviorRepository) Recent(ctx context.Context, uid int64, limit int) ([]domain.BehaviorEvent, error) {
	return repo.cache.Recent(ctx, uid, limit)
}
