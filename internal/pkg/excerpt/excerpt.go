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

package excerpt

const (
	DefaultLength = 200
	ellipsis      = "..."
)

// Make 生成摘要：先去掉 HTML，超过 length 个字符的截断并加上省略号。
// 按照字符而不是字节截断，不会切坏中文
func Make(content string, length int) string {
	if length <= 0 {
		length = DefaultLength
	}
	text := StripHTML(content)
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length]) + ellipsis
}
