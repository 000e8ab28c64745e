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
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

const DefaultMaxFeatures = 5000

var (
	errEmptyVocabulary = errors.New("词表为空")
	// 至少两个字符的词，和常见的 TF-IDF 实现保持一致
	tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)
)

// TFIDFScorer 每次计算都只在传入的文本上拟合 TF-IDF 向量空间，再计算余弦相似度。
// 不持有任何跨调用的状态，可以并发使用。
type TFIDFScorer struct {
	MaxFeatures int
}

func NewTFIDFScorer() *TFIDFScorer {
	return &TFIDFScorer{MaxFeatures: DefaultMaxFeatures}
}

// Similarity 两段文本的相似度，取值 [0, 1]。空文本或者拟合失败都返回 0
func (s *TFIDFScorer) Similarity(a, b string) float64 {
	vectors, err := s.fit([]string{a, b})
	if err != nil {
		return 0
	}
	return cosine(vectors[0], vectors[1])
}

// MaxSimilarity 在 history + candidate 上拟合，返回 candidate 和所有历史文本相似度的最大值
func (s *TFIDFScorer) MaxSimilarity(candidate string, history []string) float64 {
	if len(history) == 0 {
		return 0
	}
	docs := make([]string, 0, len(history)+1)
	docs = append(docs, history...)
	docs = append(docs, candidate)
	vectors, err := s.fit(docs)
	if err != nil {
		return 0
	}
	target := vectors[len(vectors)-1]
	var best float64
	for _, vec := range vectors[:len(vectors)-1] {
		best = max(best, cosine(target, vec))
	}
	return best
}

type vector map[string]float64

func (s *TFIDFScorer) fit(docs []string) ([]vector, error) {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int, 64)
	total := make(map[string]int, 64)
	for i, doc := range docs {
		tokens := tokenPattern.FindAllString(strings.ToLower(doc), -1)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			total[t]++
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	if len(df) == 0 {
		return nil, errEmptyVocabulary
	}
	vocab := s.vocabulary(total)

	n := float64(len(docs))
	idf := make(map[string]float64, len(vocab))
	for t := range vocab {
		// 平滑过的 idf，避免出现在所有文档里的词权重为 0
		idf[t] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vectors := make([]vector, len(docs))
	for i, tokens := range tokenized {
		vec := make(vector, len(tokens))
		for _, t := range tokens {
			if _, ok := vocab[t]; ok {
				vec[t]++
			}
		}
		var norm float64
		for t, tf := range vec {
			w := tf * idf[t]
			vec[t] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for t := range vec {
				vec[t] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// vocabulary 超过 MaxFeatures 时按语料词频保留，词频相同按字典序
func (s *TFIDFScorer) vocabulary(total map[string]int) map[string]struct{} {
	vocab := make(map[string]struct{}, len(total))
	if s.MaxFeatures <= 0 || len(total) <= s.MaxFeatures {
		for t := range total {
			vocab[t] = struct{}{}
		}
		return vocab
	}
	terms := make([]string, 0, len(total))
	for t := range total {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	for _, t := range terms[:s.MaxFeatures] {
		vocab[t] = struct{}{}
	}
	return vocab
}

// cosine 两个向量都已经做过 L2 归一化，点积就是余弦值
func cosine(a, b vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	return min(max(dot, 0), 1)
}
