package layout

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// 平均字宽超过该值时认为前缀里混入了超宽符号（例如复选框）。
	wideGlyphThreshold = 20.0
	// 超宽时退回的等宽字符宽度（24px Iosevka/DejaVu Sans Mono 约 14px）。
	fallbackCharWidth = 14.0
)

// WrappedLine 是折行后的一行文本及其起始 x（px）。
type WrappedLine struct {
	X       float64 `json:"x"`
	Content string  `json:"content"`
}

// Wrap 将 prefix+text 按 maxWidth 折行，返回各行的 x 与内容。
//
// 字体是等宽的，所以放不下时改用字符数折行：平均字宽由前缀的推进宽度估算。
// 首行带前缀并从 x 开始；有前缀时其余行合并后按收窄的宽度重新折行，
// 并整体右移前缀宽度，使续行与条目正文首字对齐（悬挂缩进）。
// 没有前缀时（标题、备注）所有行都从 x 开始。
// text 中的换行、制表符按空格处理，每个 WrappedLine 只对应一行；
// 需要保留换行的调用方应先按段落拆分。
func Wrap(text, prefix string, x, maxWidth float64, face Advancer) []WrappedLine {
	full := flatten(prefix + text)
	if face.TextWidth(full) <= maxWidth {
		return []WrappedLine{{X: x, Content: full}}
	}

	charWidth := estimateCharWidth(prefix, face)
	lines := wrapWords(full, charBudget(maxWidth, charWidth))
	if len(lines) == 0 {
		return nil
	}

	out := make([]WrappedLine, 0, len(lines))
	out = append(out, WrappedLine{X: x, Content: lines[0]})
	rest := lines[1:]
	if len(rest) == 0 {
		return out
	}

	indent := 0.0
	if prefix != "" {
		indent = face.TextWidth(prefix)
		rest = wrapWords(strings.Join(rest, " "), charBudget(maxWidth-indent, charWidth))
	}
	for _, line := range rest {
		out = append(out, WrappedLine{X: x + indent, Content: line})
	}
	return out
}

// flatten 把控制类空白替换为空格，避免一行文本在绘制时变成多行。
func flatten(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\v', '\f':
			return ' '
		}
		return r
	}, s)
}

// estimateCharWidth 用前缀的平均推进宽度估算字宽；没有前缀时量一个空格。
func estimateCharWidth(prefix string, face Advancer) float64 {
	probe := prefix
	if probe == "" {
		probe = " "
	}
	w := face.TextWidth(probe) / float64(utf8.RuneCountInString(probe))
	if w > wideGlyphThreshold || w <= 0 {
		return fallbackCharWidth
	}
	return w
}

// charBudget 向下取整，保证估算宽度不越过右边距。
func charBudget(width, charWidth float64) int {
	n := int(math.Floor(width / charWidth))
	if n < 1 {
		return 1
	}
	return n
}

// wrapWords 以空白分词做贪心折行，limit 为每行最多字符数。
// 单词只有在自身超过 limit 时才会被拆开。
func wrapWords(s string, limit int) []string {
	words := strings.Fields(s)
	var lines []string
	var builder strings.Builder
	current := 0

	emit := func() {
		if builder.Len() == 0 {
			return
		}
		lines = append(lines, builder.String())
		builder.Reset()
		current = 0
	}

	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if n > limit {
			emit()
			chunks := splitWord(word, limit)
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			builder.WriteString(last)
			current = utf8.RuneCountInString(last)
			continue
		}
		if current > 0 && current+1+n > limit {
			emit()
		}
		if current > 0 {
			builder.WriteByte(' ')
			current++
		}
		builder.WriteString(word)
		current += n
	}
	emit()
	return lines
}

func splitWord(word string, limit int) []string {
	runes := []rune(word)
	parts := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		parts = append(parts, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(parts, string(runes))
}
