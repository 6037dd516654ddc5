package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ListStyle 表示条目前缀样式。
type ListStyle int

const (
	StyleCheckbox ListStyle = iota
	StyleBullet
	StyleNumbered
	StyleArrow
	StyleArrowhead
	StyleTriangle

	styleCount
)

// ErrUnknownStyle 表示无法识别的清单样式名称。
var ErrUnknownStyle = errors.New("layout: 未知的清单样式")

// styleTable 按样式索引，新增样式只需在这里补一行。
// 数组长度由 styleCount 固定，漏掉某个样式时 style_test 会失败。
var styleTable = [styleCount]struct {
	name  string
	glyph string
}{
	StyleCheckbox:  {name: "checkbox", glyph: "▢"},
	StyleBullet:    {name: "bullet", glyph: "•"},
	StyleNumbered:  {name: "numbered"},
	StyleArrow:     {name: "arrow", glyph: "→"},
	StyleArrowhead: {name: "arrowhead", glyph: "➤"},
	StyleTriangle:  {name: "triangle", glyph: "‣"},
}

// String 返回样式名称。
func (s ListStyle) String() string {
	if !s.Valid() {
		return "ListStyle(" + strconv.Itoa(int(s)) + ")"
	}
	return styleTable[s].name
}

// Valid 判断样式是否在查找表范围内。
func (s ListStyle) Valid() bool { return s >= 0 && s < styleCount }

// Glyph 返回样式对应的符号；numbered 没有固定符号。
func (s ListStyle) Glyph() string {
	if !s.Valid() {
		return ""
	}
	return styleTable[s].glyph
}

// Prefix 返回第 index 个条目（从 1 开始）的前缀，含结尾空格。
func (s ListStyle) Prefix(index int) string {
	if s == StyleNumbered {
		return strconv.Itoa(index) + ") "
	}
	return s.Glyph() + " "
}

// ParseListStyle 解析样式名称，大小写不敏感；"number" 视为 numbered。
func ParseListStyle(name string) (ListStyle, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "number" {
		return StyleNumbered, nil
	}
	for i, entry := range styleTable {
		if entry.name == n {
			return ListStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// MarshalJSON 以名称输出样式，调试 JSON 更易读。
func (s ListStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON 接受样式名称。
func (s *ListStyle) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseListStyle(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
