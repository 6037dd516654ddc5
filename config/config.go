package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ByLCY/listmaker/fonts"
	"github.com/ByLCY/listmaker/layout"
)

// Config 是可选的 YAML 配置文件，覆盖默认的打印机几何参数与字体。
//
//	image:
//	  width: 512          # 打印头宽度（px）
//	  height: 6000        # 预分配画布高度上限（px）
//	  background: white
//	  text: "#000"
//	  line_height: 30
//	  margin: 20
//	fonts:
//	  regular: assets/Iosevka-Extended.ttf
//	  bold: assets/Iosevka-ExtendedBold.ttf
//	  body_size: 24
//	  title_size: 32
type Config struct {
	Image struct {
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
		LineHeight int    `yaml:"line_height"`
		Margin     int    `yaml:"margin"`
	} `yaml:"image"`
	Fonts struct {
		Regular   string  `yaml:"regular"`
		Bold      string  `yaml:"bold"`
		BodySize  float64 `yaml:"body_size"`
		TitleSize float64 `yaml:"title_size"`
	} `yaml:"fonts"`
}

// Default 返回与目标打印机匹配的默认配置。
func Default() Config {
	d := layout.DefaultImageSettings()
	var c Config
	c.Image.Width = d.Width
	c.Image.Height = d.Height
	c.Image.Background = "white"
	c.Image.Text = "black"
	c.Image.LineHeight = d.LineHeight
	c.Image.Margin = d.Margin
	c.Fonts.Regular = fonts.BuiltinRegular
	c.Fonts.Bold = fonts.BuiltinBold
	c.Fonts.BodySize = d.BodySize
	c.Fonts.TitleSize = d.TitleSize
	return c
}

// Load 读取配置文件；文件中缺省的字段保留默认值。path 为空时直接返回默认配置。
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("解析配置 %s 失败: %w", path, err)
	}
	return cfg, nil
}

// ImageSettings 将配置转换为布局参数，颜色在这里解析。
func (c Config) ImageSettings() (layout.ImageSettings, error) {
	bg, err := ParseColor(c.Image.Background)
	if err != nil {
		return layout.ImageSettings{}, fmt.Errorf("image.background: %w", err)
	}
	fg, err := ParseColor(c.Image.Text)
	if err != nil {
		return layout.ImageSettings{}, fmt.Errorf("image.text: %w", err)
	}
	s := layout.ImageSettings{
		Width:      c.Image.Width,
		Height:     c.Image.Height,
		Background: bg,
		TextColor:  fg,
		LineHeight: c.Image.LineHeight,
		Margin:     c.Image.Margin,
		BodySize:   c.Fonts.BodySize,
		TitleSize:  c.Fonts.TitleSize,
	}
	if s.BodySize <= 0 || s.TitleSize <= 0 {
		return layout.ImageSettings{}, fmt.Errorf("字号必须为正数: body=%g title=%g", s.BodySize, s.TitleSize)
	}
	return s, nil
}

var namedColors = map[string]layout.Color{
	"white": {R: 255, G: 255, B: 255},
	"black": {R: 0, G: 0, B: 0},
}

// ParseColor 支持 white/black 以及 #rgb、#rrggbb、#rrggbbaa（忽略 alpha）。
func ParseColor(value string) (layout.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(v, "#")
	if !ok {
		return layout.Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6, 8:
		hex = hex[:6]
	default:
		return layout.Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return layout.Color{}, fmt.Errorf("颜色值 %s 无法解析: %w", value, err)
	}
	return layout.Color{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}, nil
}
