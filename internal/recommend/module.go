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

package recommend

import (
	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/events"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service"
	"github.com/ecodeclub/recommend/internal/recommend/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	// 只是为了让 wire 创建并启动
	BehaviorConsumer *BehaviorConsumer
}

type Handler = web.Handler
type Service = service.Service
type Config = service.Config
type BehaviorConsumer = events.BehaviorConsumer
type BehaviorEvent = events.BehaviorEvent
type RecommendationItem = domain.RecommendationItem
type HotItem = domain.HotItem

const BehaviorTopic = events.BehaviorTopic
