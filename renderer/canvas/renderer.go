package canvasrenderer

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/listmaker/fonts"
	"github.com/ByLCY/listmaker/layout"
	"github.com/ByLCY/listmaker/renderer"
)

var (
	// ErrEmptyContent 表示画布上没有任何墨迹，无法确定裁剪范围。
	ErrEmptyContent = errors.New("canvas: 图像没有任何内容")
	// ErrNilResult 表示传入的布局结果为 nil。
	ErrNilResult = errors.New("canvas: 布局结果为空")
)

// FontLoadError 表示字体缺失或损坏；没有字体度量就无法排版，调用方应视为致命错误。
type FontLoadError struct {
	Src string
	Err error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("加载字体 %s 失败: %v", e.Src, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// Renderer draws layout results via github.com/tdewolff/canvas and rasterises them to PNG.
type Renderer struct {
	settings layout.ImageSettings

	// mu 串行化字体的度量与绘制；同一个 Renderer 可以被多个 goroutine 共用。
	mu      sync.Mutex
	regular *canvas.FontFamily
	bold    *canvas.FontFamily
	measure map[layout.FontWeight]*canvas.FontFace
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Settings layout.ImageSettings // 零值时使用 layout.DefaultImageSettings
	Regular  Resource             // 正文字体，默认 builtin:mono
	Bold     Resource             // 标题字体，默认 builtin:mono-bold
}

// Resource can be provided either by Bytes or by Path ("builtin:*" or a file path).
type Resource struct {
	Bytes []byte
	Path  string
}

// New 加载两种字重的字体并创建渲染器。字体只在这里加载一次，之后每次渲染复用。
func New(opts Options) (*Renderer, error) {
	s := opts.Settings
	if s == (layout.ImageSettings{}) {
		s = layout.DefaultImageSettings()
	}
	regular, err := loadFamily("listmaker-regular", opts.Regular, fonts.BuiltinRegular, canvas.FontRegular)
	if err != nil {
		return nil, err
	}
	bold, err := loadFamily("listmaker-bold", opts.Bold, fonts.BuiltinBold, canvas.FontBold)
	if err != nil {
		return nil, err
	}
	r := &Renderer{
		settings: s,
		regular:  regular,
		bold:     bold,
	}
	r.measure = r.faces(s, canvas.Black)
	return r, nil
}

func loadFamily(name string, res Resource, fallback string, style canvas.FontStyle) (*canvas.FontFamily, error) {
	src := res.Path
	data := res.Bytes
	if len(data) == 0 {
		if src == "" {
			src = fallback
		}
		blob, err := fonts.Load(src)
		if err != nil {
			return nil, &FontLoadError{Src: src, Err: err}
		}
		data = blob
	} else if src == "" {
		src = name
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, style); err != nil {
		return nil, &FontLoadError{Src: src, Err: err}
	}
	return family, nil
}

// Settings 返回渲染器使用的画布参数。
func (r *Renderer) Settings() layout.ImageSettings { return r.settings }

// Face 实现 layout.Typesetter，返回按配置字号创建的度量字体面。
func (r *Renderer) Face(weight layout.FontWeight) layout.Advancer {
	face, ok := r.measure[weight]
	if !ok {
		face = r.measure[layout.FontRegular]
	}
	return &lockedFace{mu: &r.mu, face: face}
}

// lockedFace 在共享锁下测量宽度。
type lockedFace struct {
	mu   *sync.Mutex
	face *canvas.FontFace
}

func (f *lockedFace) TextWidth(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.face.TextWidth(s)
}

// RenderList 使用渲染器自身的设置与字体完成排版和渲染，同时返回布局结果供调试。
func (r *Renderer) RenderList(opts layout.ListOptions) (*renderer.Image, *layout.Result, error) {
	res, err := layout.Build(opts, layout.BuildOptions{Settings: r.settings, Typesetter: r})
	if err != nil {
		return nil, nil, err
	}
	img, err := r.Render(res)
	if err != nil {
		return nil, res, err
	}
	return img, res, nil
}

// Render 在透明画布上绘制全部文本与分隔线，栅格化后裁剪到内容并编码为 PNG。
func (r *Renderer) Render(result *layout.Result) (*renderer.Image, error) {
	if result == nil {
		return nil, ErrNilResult
	}
	if len(result.Texts) == 0 && len(result.Rules) == 0 {
		return nil, ErrEmptyContent
	}
	s := result.Settings

	r.mu.Lock()
	defer r.mu.Unlock()

	c := canvas.New(float64(s.Width), float64(s.Height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	ink := colorFromLayout(s.TextColor)
	drawRules(ctx, result.Rules, ink)
	if err := drawTexts(ctx, result.Texts, r.faces(s, ink)); err != nil {
		return nil, err
	}

	img := rasterizer.Draw(c, canvas.DPMM(layout.RasterDPMM), canvas.DefaultColorSpace)
	return finalize(img, s)
}

func (r *Renderer) faces(s layout.ImageSettings, col color.Color) map[layout.FontWeight]*canvas.FontFace {
	return map[layout.FontWeight]*canvas.FontFace{
		layout.FontRegular: r.regular.Face(layout.PxToPt(s.BodySize), col, canvas.FontRegular, canvas.FontNormal),
		layout.FontBold:    r.bold.Face(layout.PxToPt(s.TitleSize), col, canvas.FontBold, canvas.FontNormal),
	}
}

func drawTexts(ctx *canvas.Context, texts []layout.TextBox, faces map[layout.FontWeight]*canvas.FontFace) error {
	for _, tb := range texts {
		face, ok := faces[tb.Font]
		if !ok {
			return fmt.Errorf("未知字重 %q", tb.Font)
		}
		// 基线位置：以行顶部加上字体上升部
		baseline := tb.Y + face.Metrics().Ascent
		ctx.DrawText(tb.X, baseline, canvas.NewTextLine(face, tb.Content, canvas.Left))
	}
	return nil
}

// drawRules 绘制分隔线（px）
func drawRules(ctx *canvas.Context, rules []layout.Line, ink color.Color) {
	for _, ln := range rules {
		ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
		ctx.SetStrokeColor(ink)
		ctx.SetStrokeWidth(ln.Width)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
		ctx.DrawPath(ln.X1, ln.Y1, p)
	}
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
