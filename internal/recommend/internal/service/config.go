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

// Config 排序用到的常量都是经验值，可以在 recommend 配置下覆盖
type Config struct {
	HotWeight       float64 `yaml:"hotWeight"`
	ContentWeight   float64 `yaml:"contentWeight"`
	SimilarityScale float64 `yaml:"similarityScale"`
	// 问题和笔记的综合分除以它得到最终分数
	ScoreScale float64 `yaml:"scoreScale"`
	ScoreCap   float64 `yaml:"scoreCap"`

	LikeWeight    float64 `yaml:"likeWeight"`
	CommentWeight float64 `yaml:"commentWeight"`
	DecayHours    float64 `yaml:"decayHours"`

	QuestionPool int `yaml:"questionPool"`
	NotePool     int `yaml:"notePool"`
	VillagePool  int `yaml:"villagePool"`
	HistorySize  int `yaml:"historySize"`

	BehaviorCapacity int `yaml:"behaviorCapacity"`
	ExcerptLength    int `yaml:"excerptLength"`
	HotListMaxLimit  int `yaml:"hotListMaxLimit"`
}

func DefaultConfig() Config {
	return Config{
		HotWeight:        0.6,
		ContentWeight:    0.4,
		SimilarityScale:  10,
		ScoreScale:       100,
		ScoreCap:         0.99,
		LikeWeight:       2,
		CommentWeight:    3,
		DecayHours:       168,
		QuestionPool:     1000,
		NotePool:         500,
		VillagePool:      100,
		HistorySize:      50,
		BehaviorCapacity: 1000,
		ExcerptLength:    200,
		HotListMaxLimit:  100,
	}
}

// WithDefaults 配置不合法的字段用默认值填上。没有出现在配置里的字段保持 DefaultConfig 的值
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	positive := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
		}
	}
	// 权重允许配置成 0，用来关掉某一项
	nonNegative := func(v *float64, d float64) {
		if *v < 0 {
			*v = d
		}
	}
	positiveInt := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	nonNegative(&c.HotWeight, def.HotWeight)
	nonNegative(&c.ContentWeight, def.ContentWeight)
	positive(&c.SimilarityScale, def.SimilarityScale)
	positive(&c.ScoreScale, def.ScoreScale)
	positive(&c.ScoreCap, def.ScoreCap)
	nonNegative(&c.LikeWeight, def.LikeWeight)
	nonNegative(&c.CommentWeight, def.CommentWeight)
	positive(&c.DecayHours, def.DecayHours)
	positiveInt(&c.QuestionPool, def.QuestionPool)
	positiveInt(&c.NotePool, def.NotePool)
	positiveInt(&c.VillagePool, def.VillagePool)
	positiveInt(&c.HistorySize, def.HistorySize)
	positiveInt(&c.BehaviorCapacity, def.BehaviorCapacity)
	positiveInt(&c.ExcerptLength, def.ExcerptLength)
	positiveInt(&c.HotListMaxLimit, def.HotListMaxLimit)
	return c
}
