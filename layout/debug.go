package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteDebugJSON 将布局结果输出为 JSON，便于核对每一行的坐标与分隔线位置。
// path 为 "-" 时写到标准输出。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	if path == "-" {
		return EncodeDebugJSON(os.Stdout, res)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建调试文件 %s 失败: %w", path, err)
	}
	if err := EncodeDebugJSON(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EncodeDebugJSON 以缩进格式编码布局结果，不转义前缀符号之类的非 ASCII 字符。
func EncodeDebugJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}
