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
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/ecodeclub/recommend/internal/recommend/internal/errs"
	"github.com/ecodeclub/recommend/internal/recommend/internal/service"
	svcmocks "github.com/ecodeclub/recommend/internal/recommend/internal/service/mocks"
	"github.com/ecodeclub/recommend/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)
	return server
}

func newJSONRequest(t *testing.T, path string, body any) *http.Request {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

func TestHandler_RecommendQuestions(t *testing.T) {
	five := 5
	testCases := []struct {
		name     string
		req      map[string]any
		mock     func(ctrl *gomock.Controller) service.Service
		wantResp test.Result[RecommendationList]
	}{
		{
			name: "默认推荐 10 条",
			req:  map[string]any{"user_id": 1},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().RecommendQuestions(gomock.Any(), int64(1), 10, gomock.Any()).
					Return([]domain.RecommendationItem{
						{
							Id:       3,
							Kind:     domain.KindQuestion,
							Title:    "Redis 缓存",
							Excerpt:  "缓存穿透",
							Score:    0.5,
							Reason:   domain.ReasonPopular,
							Metadata: map[string]any{domain.MetaReasonLabel: domain.LabelHotQuestion},
						},
					})
				return svc
			},
			wantResp: test.Result[RecommendationList]{
				Data: RecommendationList{
					Items: []RecommendationItem{
						{
							Id:       3,
							Type:     "question",
							Title:    "Redis 缓存",
							Content:  "缓存穿透",
							Score:    0.5,
							Reason:   "popular",
							Metadata: map[string]any{domain.MetaReasonLabel: domain.LabelHotQuestion},
						},
					},
					Total: 1,
				},
			},
		},
		{
			name: "指定数量",
			req:  map[string]any{"user_id": 2, "count": five, "filters": map[string]any{"tag": "go"}},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().RecommendQuestions(gomock.Any(), int64(2), 5, domain.Filters{"tag": "go"}).
					Return([]domain.RecommendationItem{})
				return svc
			},
			wantResp: test.Result[RecommendationList]{
				Data: RecommendationList{Items: []RecommendationItem{}, Total: 0},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl))
			recorder := test.NewJSONResponseRecorder[RecommendationList]()
			server.ServeHTTP(recorder, newJSONRequest(t, "/api/v1/recommend/questions", tc.req))
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Track(t *testing.T) {
	testCases := []struct {
		name     string
		req      TrackReq
		mock     func(ctrl *gomock.Controller) service.Service
		wantResp test.Result[TrackResp]
	}{
		{
			name: "记录成功",
			req:  TrackReq{UserId: 1, ItemId: 5, ItemType: "note", Action: "like"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Track(gomock.Any(), domain.BehaviorEvent{
					Uid:      1,
					ItemId:   5,
					ItemKind: domain.KindNote,
					Action:   domain.ActionLike,
				}).Return(true, nil)
				return svc
			},
			wantResp: test.Result[TrackResp]{Data: TrackResp{Success: true}},
		},
		{
			name: "存储失败",
			req:  TrackReq{UserId: 1, ItemId: 5, ItemType: "note", Action: "like"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Track(gomock.Any(), gomock.Any()).Return(false, nil)
				return svc
			},
			wantResp: test.Result[TrackResp]{Data: TrackResp{Success: false}},
		},
		{
			name: "内容类型不合法",
			req:  TrackReq{UserId: 1, ItemId: 5, ItemType: "article", Action: "like"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Track(gomock.Any(), gomock.Any()).Return(false, service.ErrInvalidItemKind)
				return svc
			},
			wantResp: test.Result[TrackResp]{Code: errs.InvalidItemKind.Code, Msg: errs.InvalidItemKind.Msg},
		},
		{
			name: "行为类型不合法",
			req:  TrackReq{UserId: 1, ItemId: 5, ItemType: "note", Action: "dislike"},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Track(gomock.Any(), gomock.Any()).Return(false, service.ErrInvalidAction)
				return svc
			},
			wantResp: test.Result[TrackResp]{Code: errs.InvalidActionType.Code, Msg: errs.InvalidActionType.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl))
			recorder := test.NewJSONResponseRecorder[TrackResp]()
			server.ServeHTTP(recorder, newJSONRequest(t, "/api/v1/behavior/track", tc.req))
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Similarity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().Similarity("golang redis", "golang mysql").Return(0.25)
	server := newServer(svc)

	recorder := test.NewJSONResponseRecorder[SimilarityResp]()
	server.ServeHTTP(recorder, newJSONRequest(t, "/api/v1/similarity/calculate",
		SimilarityReq{Content1: "golang redis", Content2: "golang mysql"}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, SimilarityResp{Similarity: 0.25}, recorder.MustScan().Data)
}

func TestHandler_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().RecentBehaviors(gomock.Any(), int64(1), 2).Return([]domain.BehaviorEvent{
		{Id: "b", Uid: 1, ItemId: 2, ItemKind: domain.KindPost, Action: domain.ActionShare, Ctime: 2},
		{Id: "a", Uid: 1, ItemId: 1, ItemKind: domain.KindNote, Action: domain.ActionView, Ctime: 1},
	})
	server := newServer(svc)

	recorder := test.NewJSONResponseRecorder[BehaviorList]()
	server.ServeHTTP(recorder, newJSONRequest(t, "/api/v1/behavior/recent", RecentReq{UserId: 1, Limit: 2}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, BehaviorList{
		Items: []Behavior{
			{Id: "b", ItemId: 2, ItemType: "post", Action: "share", Timestamp: 2},
			{Id: "a", ItemId: 1, ItemType: "note", Action: "view", Timestamp: 1},
		},
		Total: 2,
	}, recorder.MustScan().Data)
}

func TestHandler_Hot(t *testing.T) {
	testCases := []struct {
		name string
		path string
		mock func(ctrl *gomock.Controller) service.Service
		want HotList
	}{
		{
			name: "热门问题默认 10 条",
			path: "/api/v1/hot/questions",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().HotQuestions(gomock.Any(), "", 10).Return([]domain.HotItem{
					{Id: 1, Title: "q", HotScore: 26, Category: "综合"},
				})
				return svc
			},
			want: HotList{
				Items: []HotItem{{Id: 1, Title: "q", HotScore: 26, Category: "综合"}},
				Total: 1,
			},
		},
		{
			name: "热门笔记按分类",
			path: "/api/v1/hot/notes?category=backend&limit=3",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().HotNotes(gomock.Any(), "backend", 3).Return([]domain.HotItem{})
				return svc
			},
			want: HotList{Items: []HotItem{}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[HotList]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.want, recorder.MustScan().Data)
		})
	}
}
