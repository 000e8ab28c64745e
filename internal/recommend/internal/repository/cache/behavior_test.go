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

package cache

import (
	"encoding/json"
	"testing"

	"github.com/ecodeclub/recommend/internal/recommend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBehavior(t *testing.T) {
	testCases := []struct {
		name    string
		val     string
		want    domain.BehaviorEvent
		wantErr bool
	}{
		{
			name: "老服务写入的数据",
			val:  `{"item_id":5,"item_type":"note","action":"like","metadata":{}}`,
			want: domain.BehaviorEvent{
				Uid:      1,
				ItemId:   5,
				ItemKind: domain.KindNote,
				Action:   domain.ActionLike,
				Metadata: map[string]any{},
			},
		},
		{
			name: "完整数据",
			val:  `{"id":"abc","item_id":7,"item_type":"question","action":"view","metadata":{"from":"home"},"timestamp":1717200000000}`,
			want: domain.BehaviorEvent{
				Id:       "abc",
				Uid:      1,
				ItemId:   7,
				ItemKind: domain.KindQuestion,
				Action:   domain.ActionView,
				Metadata: map[string]any{"from": "home"},
				Ctime:    1717200000000,
			},
		},
		{
			name:    "脏数据",
			val:     `not json`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			evt, err := decodeBehavior(1, tc.val)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, evt)
		})
	}
}

func TestEncodeBehavior(t *testing.T) {
	val, err := encodeBehavior(domain.BehaviorEvent{
		Id:       "abc",
		Uid:      1,
		ItemId:   5,
		ItemKind: domain.KindNote,
		Action:   domain.ActionLike,
		Ctime:    1717200000000,
	})
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(val, &raw))
	assert.Equal(t, map[string]any{
		"id":        "abc",
		"item_id":   float64(5),
		"item_type": "note",
		"action":    "like",
		"metadata":  map[string]any{},
		"timestamp": float64(1717200000000),
	}, raw)
}
