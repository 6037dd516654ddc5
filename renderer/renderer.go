package renderer

import "github.com/ByLCY/listmaker/layout"

// Renderer 将布局结果输出为最终图像。
// 每次调用都从头生成，不依赖上一次的结果。
type Renderer interface {
	Render(result *layout.Result) (*Image, error)
}

// Image 是编码后的 PNG 以及像素尺寸，可用于预览、送入打印机或保存到磁盘。
type Image struct {
	PNG    []byte
	Width  int
	Height int
}
