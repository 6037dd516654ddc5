package layout

// 该文件定义清单输入、画布设置与布局结果，供布局计算、渲染与调试 JSON 共用。

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ImageSettings 描述一次渲染使用的画布参数，单位均为像素。
// Height 是预分配的画布上限，并非根据内容推算；Width 对应打印头宽度。
type ImageSettings struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Background Color   `json:"background"`
	TextColor  Color   `json:"textColor"`
	LineHeight int     `json:"lineHeight"`
	Margin     int     `json:"margin"`
	BodySize   float64 `json:"bodySize"`  // 正文字号（px）
	TitleSize  float64 `json:"titleSize"` // 标题字号（px）
}

// DefaultImageSettings 返回 TM-T88V 一类 80mm 热敏打印机的默认参数。
func DefaultImageSettings() ImageSettings {
	return ImageSettings{
		Width:      512,
		Height:     6000,
		Background: Color{R: 255, G: 255, B: 255},
		TextColor:  Color{R: 0, G: 0, B: 0},
		LineHeight: 30,
		Margin:     20,
		BodySize:   24,
		TitleSize:  32,
	}
}

// ContentWidth 返回左右边距之间可用于排版的宽度。
func (s ImageSettings) ContentWidth() float64 {
	return float64(s.Width - 2*s.Margin)
}

// ListOptions 是表单（或 .list 文件）收集到的全部清单内容。
type ListOptions struct {
	Title         string    `json:"title"`
	Style         ListStyle `json:"style"`
	Entries       []string  `json:"entries"`
	HasNotes      bool      `json:"hasNotes"`
	Notes         string    `json:"notes"`
	HasSeparators bool      `json:"hasSeparators"`
}

// FontWeight 区分正文与标题两种字重。
type FontWeight string

const (
	FontRegular FontWeight = "regular"
	FontBold    FontWeight = "bold"
)

// TextRole 标记文本行来自哪个布局阶段，便于调试与测试。
type TextRole string

const (
	RoleTitle      TextRole = "title"
	RoleEntry      TextRole = "entry"
	RoleNotesLabel TextRole = "notes-label"
	RoleNotes      TextRole = "notes"
)

// Result 保存一次布局的全部绘制指令，坐标以画布左上角为原点（px）。
type Result struct {
	Settings ImageSettings `json:"settings"`
	Texts    []TextBox     `json:"texts"`
	Rules    []Line        `json:"rules,omitempty"`
	CursorY  float64       `json:"cursorY"` // 布局结束时的游标位置
}

// TextBox 表示一行已经定好坐标的文本，Y 为行顶部。
type TextBox struct {
	Content string     `json:"content"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Font    FontWeight `json:"font"`
	Role    TextRole   `json:"role"`
	Entry   int        `json:"entry,omitempty"` // 条目序号（从 1 开始），非条目为 0
}

// Line 表示一条线段，这里只用于条目之间的分隔线。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"` // 线宽（px）
}
