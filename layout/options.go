package layout

// BuildOptions 配置布局阶段所需的依赖，例如排版后端。
type BuildOptions struct {
	Settings   ImageSettings
	Typesetter Typesetter
}

// Advancer 提供字符串在某个字体面下的推进宽度（px）。
// 折行只依赖这一项度量，不需要真正栅格化字形。
type Advancer interface {
	TextWidth(s string) float64
}

// Typesetter 按字重返回对应的字体度量。
type Typesetter interface {
	Face(weight FontWeight) Advancer
}
