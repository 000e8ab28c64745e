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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 服务之间调用，用户 id 放在请求体里面
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/v1")
	g.POST("/recommend/questions", ginx.B[RecommendReq](h.RecommendQuestions))
	g.POST("/recommend/notes", ginx.B[RecommendReq](h.RecommendNotes))
	g.POST("/recommend/villages", ginx.B[RecommendReq](h.RecommendVillages))
	g.POST("/behavior/track", ginx.B[TrackReq](h.Track))
	g.POST("/behavior/recent", ginx.B[RecentReq](h.Recent))
	g.POST("/similarity/calculate", ginx.B[SimilarityReq](h.Similarity))
	g.GET("/hot/questions", ginx.W(h.HotQuestions))
	g.GET("/hot/notes", ginx.W(h.HotNotes))
}

func (h *Handler) RecommendQuestions(ctx *ginx.Context, req RecommendReq) (ginx.Result, error) {
	items := h.svc.RecommendQuestions(ctx.Request.Context(), req.UserId, req.count(), req.Filters)
	return h.recommendResult(items), nil
}

func (h *Handler) RecommendNotes(ctx *ginx.Context, req RecommendReq) (ginx.Result, error) {
	items := h.svc.RecommendNotes(ctx.Request.Context(), req.UserId, req.count(), req.Filters)
	return h.recommendResult(items), nil
}

func (h *Handler) RecommendVillages(ctx *ginx.Context, req RecommendReq) (ginx.Result, error) {
	items := h.svc.RecommendVillages(ctx.Request.Context(), req.UserId, req.count(), req.Filters)
	return h.recommendResult(items), nil
}

func (h *Handler) recommendResult(items []domain.RecommendationItem) ginx.Result {
	return ginx.Result{
		Data: RecommendationList{
			Items: slice.Map(items, func(idx int, src domain.RecommendationItem) RecommendationItem {
				return newRecommendationItem(src)
			}),
			Total: len(items),
		},
	}
}

func (h *Handler) Track(ctx *ginx.Context, req TrackReq) (ginx.Result, error) {
	ok, err := h.svc.Track(ctx.Request.Context(), domain.BehaviorEvent{
		Uid:      req.UserId,
		ItemId:   req.ItemId,
		ItemKind: domain.ItemKind(req.ItemType),
		Action:   domain.Action(req.Action),
		Metadata: req.Metadata,
	})
	switch {
	case errors.Is(err, service.ErrInvalidItemKind):
		return invalidItemKindResult, nil
	case errors.Is(err, service.ErrInvalidAction):
		return invalidActionResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: TrackResp{Success: ok}}, nil
}

func (h *Handler) Recent(ctx *ginx.Context, req RecentReq) (ginx.Result, error) {
	events := h.svc.RecentBehaviors(ctx.Request.Context(), req.UserId, req.Limit)
	return ginx.Result{
		Data: BehaviorList{
			Items: slice.Map(events, func(idx int, src domain.BehaviorEvent) Behavior {
				return Behavior{
					Id:        src.Id,
					ItemId:    src.ItemId,
					ItemType:  src.ItemKind.String(),
					Action:    src.Action.String(),
					Metadata:  src.Metadata,
					Timestamp: src.Ctime,
				}
			}),
			Total: len(events),
		},
	}, nil
}

func (h *Handler) Similarity(ctx *ginx.Context, req SimilarityReq) (ginx.Result, error) {
	return ginx.Result{
		Data: SimilarityResp{Similarity: h.svc.Similarity(req.Content1, req.Content2)},
	}, nil
}

func (h *Handler) HotQuestions(ctx *ginx.Context) (ginx.Result, error) {
	req, err := h.hotReq(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return h.hotResult(h.svc.HotQuestions(ctx.Request.Context(), req.Category, req.Limit)), nil
}

func (h *Handler) HotNotes(ctx *ginx.Context) (ginx.Result, error) {
	req, err := h.hotReq(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return h.hotResult(h.svc.HotNotes(ctx.Request.Context(), req.Category, req.Limit)), nil
}

func (h *Handler) hotReq(ctx *ginx.Context) (HotReq, error) {
	var req HotReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return HotReq{}, err
	}
	if req.Limit == 0 {
		req.Limit = defaultCount
	}
	return req, nil
}

func (h *Handler) hotResult(items []domain.HotItem) ginx.Result {
	return ginx.Result{
		Data: HotList{
			Items: slice.Map(items, func(idx int, src domain.HotItem) HotItem {
				return HotItem{
					Id:       src.Id,
					Title:    src.Title,
					HotScore: src.HotScore,
					Category: src.Category,
				}
			}),
			Total: len(items),
		},
	}
}
