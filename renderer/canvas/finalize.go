package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/ByLCY/listmaker/layout"
	"github.com/ByLCY/listmaker/renderer"
)

// finalize 把透明画布裁剪到 [0, 0, width, 墨迹底部 + margin]，
// 再叠加到不透明背景上并编码为 PNG。
// 画布保持透明，边界框才只反映真正画上去的内容。
func finalize(img *image.RGBA, s layout.ImageSettings) (*renderer.Image, error) {
	ink := inkBounds(img)
	if ink.Empty() {
		return nil, ErrEmptyContent
	}

	bounds := img.Bounds()
	bottom := min(ink.Max.Y+s.Margin, bounds.Max.Y)
	crop := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bottom)

	out := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	bg := color.RGBA{R: uint8(s.Background.R), G: uint8(s.Background.G), B: uint8(s.Background.B), A: 0xff}
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, crop.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return &renderer.Image{
		PNG:    buf.Bytes(),
		Width:  crop.Dx(),
		Height: crop.Dy(),
	}, nil
}

// inkBounds 返回所有 alpha 非零像素的最小外接矩形；没有墨迹时返回空矩形。
func inkBounds(img *image.RGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X-1, y)+4]
		for i := 3; i < len(row); i += 4 {
			if row[i] == 0 {
				continue
			}
			x := b.Min.X + i/4
			minX = min(minX, x)
			maxX = max(maxX, x+1)
			minY = min(minY, y)
			maxY = max(maxY, y+1)
		}
	}
	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
