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

package scorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDFScorer_Similarity(t *testing.T) {
	s := NewTFIDFScorer()
	testCases := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "空文本",
			a:    "",
			b:    "redis cache design",
			want: 0,
		},
		{
			name: "都为空",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "只有单字符的词",
			a:    "a b c",
			b:    "x y z",
			want: 0,
		},
		{
			name: "相同文本",
			a:    "golang redis cache",
			b:    "golang redis cache",
			want: 1,
		},
		{
			name: "大小写不敏感",
			a:    "Golang Redis",
			b:    "golang redis",
			want: 1,
		},
		{
			name: "没有共同的词",
			a:    "golang redis",
			b:    "mysql index",
			want: 0,
		},
		{
			// 共同词 idf = 1，独有词 idf = ln(1.5) + 1
			name: "部分重合",
			a:    "golang redis",
			b:    "golang mysql",
			want: 1 / (1 + math.Pow(math.Log(1.5)+1, 2)),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Similarity(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestTFIDFScorer_SelfSimilarityIsMaximal(t *testing.T) {
	s := NewTFIDFScorer()
	x := "分布式 缓存 一致性 redis"
	ys := []string{"mysql 索引 优化", "kafka 消息 堆积", "分布式 锁"}
	self := s.Similarity(x, x)
	for _, y := range ys {
		assert.GreaterOrEqual(t, self, s.Similarity(x, y))
	}
}

func TestTFIDFScorer_MaxSimilarity(t *testing.T) {
	s := NewTFIDFScorer()
	testCases := []struct {
		name      string
		candidate string
		history   []string
		assertFn  func(t *testing.T, got float64)
	}{
		{
			name:      "没有历史",
			candidate: "golang redis",
			assertFn: func(t *testing.T, got float64) {
				assert.Equal(t, float64(0), got)
			},
		},
		{
			name:      "和某条历史完全相同",
			candidate: "golang redis",
			history:   []string{"mysql index", "golang redis"},
			assertFn: func(t *testing.T, got float64) {
				assert.InDelta(t, 1, got, 1e-9)
			},
		},
		{
			name:      "和所有历史无关",
			candidate: "kafka consumer",
			history:   []string{"mysql index", "golang redis"},
			assertFn: func(t *testing.T, got float64) {
				assert.Equal(t, float64(0), got)
			},
		},
		{
			name:      "取最大值",
			candidate: "golang redis cache",
			history:   []string{"golang tutorial", "redis cache eviction"},
			assertFn: func(t *testing.T, got float64) {
				first := s.Similarity("golang redis cache", "golang tutorial")
				assert.Greater(t, got, float64(0))
				assert.LessOrEqual(t, got, float64(1))
				// 命中的是重合更多的 redis cache eviction
				assert.Greater(t, got, first)
			},
		},
		{
			name:      "候选为空",
			candidate: "",
			history:   []string{"golang redis"},
			assertFn: func(t *testing.T, got float64) {
				assert.Equal(t, float64(0), got)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.assertFn(t, s.MaxSimilarity(tc.candidate, tc.history))
		})
	}
}

func TestTFIDFScorer_MaxFeatures(t *testing.T) {
	s := &TFIDFScorer{MaxFeatures: 1}
	// 只保留语料中出现次数最多的 golang
	assert.InDelta(t, 1, s.Similarity("golang golang redis", "golang mysql"), 1e-9)
	assert.Equal(t, float64(0), s.Similarity("golang golang redis", "redis mysql"))
}
