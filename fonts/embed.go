package fonts

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-fonts/dejavu/dejavusansmono"
	"github.com/go-fonts/dejavu/dejavusansmonobold"
)

// 内置等宽字体（DejaVu Sans Mono），未配置外部字体时使用。
// 它覆盖全部清单样式符号：▢ • → ➤ ‣。
const (
	BuiltinRegular = "builtin:mono"
	BuiltinBold    = "builtin:mono-bold"
)

var builtin = map[string][]byte{
	"mono":      dejavusansmono.TTF,
	"mono-bold": dejavusansmonobold.TTF,
}

// Load 返回字体的字节数据。src 可写为 "builtin:mono"、"builtin:mono-bold"，
// 也可以是 TTF/OTF 文件路径（例如 assets/Iosevka-Extended.ttf）。
func Load(src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("字体来源为空")
	}
	if name, ok := strings.CutPrefix(src, "builtin:"); ok {
		data, found := builtin[name]
		if !found {
			return nil, fmt.Errorf("找不到内置字体 %s", src)
		}
		return data, nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("字体文件 %s 为空", src)
	}
	return data, nil
}
