package parser

import "unicode"

// Tokenize 从商品名提取关键词：连续的文字字符为一个词，
// 数字、标点、空白一律作为分隔符。空串返回空切片。
func Tokenize(text string) []string {
	tokens := make([]string, 0, 4)
	var run []rune
	flush := func() {
		if len(run) > 0 {
			tokens = append(tokens, string(run))
			run = run[:0]
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
