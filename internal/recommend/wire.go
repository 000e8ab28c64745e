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

//go:build wireinject

package recommend

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recommend/internal/recommend/internal/events"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository/cache"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository/dao"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service/scorer"
	"github.com/ecodeclub/recommend/internal/recommend/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component, rdb redis.Cmdable, q mq.MQ) (*Module, error) {
	wire.Build(
		initConfig,
		dao.NewGORMItemDAO,
		initBehaviorCache,
		repository.NewItemRepository,
		repository.NewBehaviorRepository,
		initHotScorer,
		scorer.NewTFIDFScorer,
		service.NewRanker,
		service.NewTracker,
		service.NewHotList,
		service.NewService,
		web.NewHandler,
		initBehaviorConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initConfig() service.Config {
	cfg := service.DefaultConfig()
	if err := econf.UnmarshalKey("recommend", &cfg); err != nil {
		elog.DefaultLogger.Warn("读取推荐配置失败，使用默认配置", elog.FieldErr(err))
		return service.DefaultConfig()
	}
	return cfg.WithDefaults()
}

func initHotScorer(cfg service.Config) *scorer.HotScorer {
	h := scorer.NewHotScorer()
	h.LikeWeight = cfg.LikeWeight
	h.CommentWeight = cfg.CommentWeight
	h.DecayHours = cfg.DecayHours
	return h
}

func initBehaviorCache(rdb redis.Cmdable, cfg service.Config) cache.BehaviorCache {
	return cache.NewRedisBehaviorCache(rdb, cfg.BehaviorCapacity)
}

func initBehaviorConsumer(svc service.Service, q mq.MQ) *events.BehaviorConsumer {
	c, err := events.NewBehaviorConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
