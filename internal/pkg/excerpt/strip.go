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

import (
	"regexp"
	"strings"
)

var (
	linkPattern       = regexp.MustCompile(`(?s)<a\s+[^>]*>.*?</a>`)
	blockClosePattern = regexp.MustCompile(`(?i)</(p|h[1-6]|li|blockquote|pre|div)>|<br\s*/?>`)
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	spacePattern      = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", "\"",
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// StripHTML 去掉标签，只保留纯文本。块级标签结束的地方补一个空格，空白压缩成一个。
// 不含标签和实体的纯文本原样返回
func StripHTML(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return content
	}
	// 超链接连同文字一起去掉
	content = linkPattern.ReplaceAllString(content, "")
	content = blockClosePattern.ReplaceAllString(content, " ")
	content = tagPattern.ReplaceAllString(content, "")
	content = entityReplacer.Replace(content)
	content = spacePattern.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}
