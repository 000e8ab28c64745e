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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recommend/internal/pkg/mqx"
	"github.com/ecodeclub/recommend/internal/recommend"
	"github.com/ecodeclub/recommend/internal/recommend/internal/integration/startup"
	"github.com/ecodeclub/recommend/internal/recommend/internal/repository/dao"
	"github.com/ecodeclub/recommend/internal/recommend/internal/web"
	"github.com/ecodeclub/recommend/internal/test"
	testioc "github.com/ecodeclub/recommend/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	rdb    redis.Cmdable
	q      mq.MQ
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	mou, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	mou.Hdl.PublicRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.rdb = testioc.InitRedis()
	s.q = testioc.InitMQ()
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"questions", "answers", "question_likes",
		"notes", "note_likes", "comments", "villages", "village_members"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
	err := s.rdb.Del(context.Background(), fmt.Sprintf("user:%d:behavior", uid)).Err()
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestRecommendQuestions() {
	t := s.T()
	now := time.Now()
	qs := []dao.Question{
		{Id: 1, Title: "redis cache", Content: "redis cache eviction", AuthorId: 1, Likes: 10, Status: dao.StatusNormal, CreatedAt: now},
		{Id: 2, Title: "kafka queue", Content: "kafka partition rebalance", AuthorId: 1, Likes: 20, Status: dao.StatusNormal, CreatedAt: now},
		{Id: 3, Title: "mysql index", Content: "mysql clustered index", AuthorId: 1, Status: dao.StatusNormal, CreatedAt: now},
	}
	require.NoError(t, s.db.Create(&qs).Error)
	require.NoError(t, s.db.Create(&[]dao.Answer{
		{QuestionId: 1, Content: "a1", AuthorId: 2, Status: dao.StatusNormal},
		{QuestionId: 1, Content: "a2", AuthorId: 3, Status: dao.StatusNormal},
	}).Error)
	// 点赞过的问题不会再推荐
	require.NoError(t, s.db.Create(&dao.QuestionLike{QuestionId: 2, UserId: uid}).Error)

	recorder := post[web.RecommendationList](t, s.server, "/api/v1/recommend/questions", web.RecommendReq{UserId: uid})
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, []int64{1, 3}, slice.Map(res.Items, func(idx int, src web.RecommendationItem) int64 {
		return src.Id
	}))
	for _, item := range res.Items {
		assert.Equal(t, "question", item.Type)
		assert.Equal(t, "popular", item.Reason)
		assert.Equal(t, "热门问题", item.Metadata["reason_label"])
		assert.True(t, item.Score >= 0 && item.Score <= 0.99)
	}
	assert.True(t, res.Items[0].Score > res.Items[1].Score)
}

func (s *HandlerTestSuite) TestRecommendQuestions_InterestMatch() {
	t := s.T()
	now := time.Now()
	qs := []dao.Question{
		{Id: 1, Title: "mysql index", Content: "b+ tree index", AuthorId: 1, Status: dao.StatusNormal, CreatedAt: now},
		{Id: 2, Title: "golang channel", Content: "select channel", AuthorId: 1, Status: dao.StatusNormal, CreatedAt: now},
		{Id: 3, Title: "mysql index", Content: "b+ tree index", AuthorId: 1, Status: dao.StatusNormal, CreatedAt: now},
	}
	require.NoError(t, s.db.Create(&qs).Error)
	require.NoError(t, s.db.Create(&dao.QuestionLike{QuestionId: 3, UserId: uid}).Error)

	recorder := post[web.RecommendationList](t, s.server, "/api/v1/recommend/questions", web.RecommendReq{UserId: uid})
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(t, 2, res.Total)
	assert.Equal(t, int64(1), res.Items[0].Id)
	assert.Equal(t, "interest_match", res.Items[0].Reason)
	assert.Equal(t, "基于您的兴趣", res.Items[0].Metadata["reason_label"])
	assert.Equal(t, int64(2), res.Items[1].Id)
	assert.Equal(t, "popular", res.Items[1].Reason)
}

func (s *HandlerTestSuite) TestRecommendNotes() {
	t := s.T()
	now := time.Now()
	require.NoError(t, s.db.Create(&[]dao.Note{
		{Id: 1, Title: "缓存笔记", Content: "<p>缓存穿透</p>", AuthorId: 1, Category: "后端", Status: dao.StatusNormal, CreatedAt: now},
		{Id: 2, Title: "前端笔记", Content: "vue", AuthorId: 1, Category: "前端", Status: dao.StatusNormal, CreatedAt: now},
	}).Error)
	require.NoError(t, s.db.Create(&[]dao.NoteLike{{NoteId: 1, UserId: 1}, {NoteId: 1, UserId: 2}}).Error)
	require.NoError(t, s.db.Create(&dao.Comment{TargetId: 1, TargetType: dao.CommentTargetNote, Content: "好", AuthorId: 2, Status: dao.StatusNormal}).Error)

	count := 1
	recorder := post[web.RecommendationList](t, s.server, "/api/v1/recommend/notes", web.RecommendReq{UserId: uid, Count: &count})
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(t, 1, res.Total)
	assert.Equal(t, int64(1), res.Items[0].Id)
	assert.Equal(t, "note", res.Items[0].Type)
	assert.Equal(t, "缓存穿透", res.Items[0].Content)
	assert.Equal(t, "热门笔记", res.Items[0].Metadata["reason_label"])
}

func (s *HandlerTestSuite) TestRecommendVillages() {
	t := s.T()
	require.NoError(t, s.db.Create(&[]dao.Village{
		{Id: 1, Name: "小村", Description: "小", MemberCount: 20, PostCount: 5, Status: dao.StatusNormal},
		{Id: 2, Name: "大村", Description: "大", MemberCount: 150, PostCount: 10, Status: dao.StatusNormal},
		{Id: 3, Name: "已加入", Description: "加入过", MemberCount: 500, PostCount: 50, Status: dao.StatusNormal},
	}).Error)
	require.NoError(t, s.db.Create(&dao.VillageMember{VillageId: 3, UserId: uid}).Error)

	recorder := post[web.RecommendationList](t, s.server, "/api/v1/recommend/villages", web.RecommendReq{UserId: uid})
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(t, 2, res.Total)
	assert.Equal(t, int64(2), res.Items[0].Id)
	assert.Equal(t, 0.99, res.Items[0].Score)
	assert.Equal(t, int64(1), res.Items[1].Id)
	assert.InDelta(t, 0.3, res.Items[1].Score, 1e-9)
	assert.Equal(t, "可能感兴趣", res.Items[1].Metadata["reason_label"])
}

func (s *HandlerTestSuite) TestTrack_Capacity() {
	t := s.T()
	for i := 1; i <= 1001; i++ {
		recorder := post[web.TrackResp](t, s.server, "/api/v1/behavior/track", web.TrackReq{
			UserId:   uid,
			ItemId:   int64(i),
			ItemType: "question",
			Action:   "view",
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		require.True(t, recorder.MustScan().Data.Success)
	}
	key := fmt.Sprintf("user:%d:behavior", uid)
	n, err := s.rdb.LLen(context.Background(), key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)

	recorder := post[web.BehaviorList](t, s.server, "/api/v1/behavior/recent", web.RecentReq{UserId: uid, Limit: 1000})
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(t, 1000, res.Total)
	assert.Equal(t, int64(1001), res.Items[0].ItemId)
	assert.Equal(t, int64(2), res.Items[999].ItemId)
	assert.NotEmpty(t, res.Items[0].Id)
	assert.NotZero(t, res.Items[0].Timestamp)
}

func (s *HandlerTestSuite) TestTrack_Invalid() {
	t := s.T()
	recorder := post[web.TrackResp](t, s.server, "/api/v1/behavior/track", web.TrackReq{
		UserId:   uid,
		ItemId:   1,
		ItemType: "article",
		Action:   "view",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 530002, recorder.MustScan().Code)
	n, err := s.rdb.LLen(context.Background(), fmt.Sprintf("user:%d:behavior", uid)).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func (s *HandlerTestSuite) TestRecent_LegacyEntry() {
	t := s.T()
	err := s.rdb.LPush(context.Background(), fmt.Sprintf("user:%d:behavior", uid),
		`{"item_id":5,"item_type":"note","action":"like","metadata":{}}`).Err()
	require.NoError(t, err)

	recorder := post[web.BehaviorList](t, s.server, "/api/v1/behavior/recent", web.RecentReq{UserId: uid, Limit: 10})
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(t, 1, res.Total)
	assert.Equal(t, int64(5), res.Items[0].ItemId)
	assert.Equal(t, "note", res.Items[0].ItemType)
	assert.Equal(t, "like", res.Items[0].Action)
}

func (s *HandlerTestSuite) TestConsumeBehaviorEvent() {
	t := s.T()
	producer, err := mqx.NewJSONProducer[recommend.BehaviorEvent](s.q, recommend.BehaviorTopic)
	require.NoError(t, err)
	err = producer.Produce(context.Background(), recommend.BehaviorEvent{
		UserId:    uid,
		ItemId:    9,
		ItemType:  "village",
		Action:    "collect",
		Timestamp: 1717200000000,
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		recorder := post[web.BehaviorList](t, s.server, "/api/v1/behavior/recent", web.RecentReq{UserId: uid, Limit: 10})
		res := recorder.MustScan().Data
		return res.Total == 1 &&
			res.Items[0].ItemId == 9 &&
			res.Items[0].ItemType == "village" &&
			res.Items[0].Timestamp == 1717200000000
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *HandlerTestSuite) TestSimilarity() {
	t := s.T()
	recorder := post[web.SimilarityResp](t, s.server, "/api/v1/similarity/calculate", web.SimilarityReq{
		Content1: "redis cache eviction",
		Content2: "redis cache eviction",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.InDelta(t, 1.0, recorder.MustScan().Data.Similarity, 1e-9)
}

func (s *HandlerTestSuite) TestHotNotes() {
	t := s.T()
	now := time.Now()
	require.NoError(t, s.db.Create(&[]dao.Note{
		{Id: 1, Title: "冷门", Content: "c", AuthorId: 1, Category: "后端", Status: dao.StatusNormal, CreatedAt: now},
		{Id: 2, Title: "热门", Content: "c", AuthorId: 1, Category: "后端", Status: dao.StatusNormal, CreatedAt: now},
		{Id: 3, Title: "前端", Content: "c", AuthorId: 1, Category: "前端", Status: dao.StatusNormal, CreatedAt: now},
	}).Error)
	require.NoError(t, s.db.Create(&[]dao.NoteLike{{NoteId: 2, UserId: 1}, {NoteId: 3, UserId: 1}}).Error)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/hot/notes?category="+url.QueryEscape("后端")+"&limit=1", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.HotList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(t, 1, res.Total)
	assert.Equal(t, int64(2), res.Items[0].Id)
	assert.Equal(t, "后端", res.Items[0].Category)
	assert.True(t, res.Items[0].HotScore > 0)
}

func (s *HandlerTestSuite) TestHotQuestions() {
	t := s.T()
	now := time.Now()
	require.NoError(t, s.db.Create(&[]dao.Question{
		{Id: 1, Title: "q1", Content: "c", AuthorId: 1, Likes: 1, Tags: "mysql", Status: dao.StatusNormal, CreatedAt: now},
		{Id: 2, Title: "q2", Content: "c", AuthorId: 1, Likes: 5, Tags: "redis", Status: dao.StatusNormal, CreatedAt: now},
	}).Error)

	req, err := http.NewRequest(http.MethodGet, "/api/v1/hot/questions", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.HotList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(t, 2, res.Total)
	assert.Equal(t, []int64{2, 1}, slice.Map(res.Items, func(idx int, src web.HotItem) int64 {
		return src.Id
	}))
	assert.Equal(t, "综合", res.Items[0].Category)
}

func post[T any](t *testing.T, server http.Handler, path string, body any) *test.JSONResponseRecorder[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
