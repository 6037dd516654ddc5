package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ByLCY/listmaker/config"
	"github.com/ByLCY/listmaker/dsl"
	"github.com/ByLCY/listmaker/layout"
	canvasrenderer "github.com/ByLCY/listmaker/renderer/canvas"
)

func main() {
	input := flag.String("in", "examples/groceries.list", "清单文件路径，- 表示标准输入")
	output := flag.String("out", "", "PNG 输出路径；为空时按标题命名并写入 -dir")
	dir := flag.String("dir", "output", "未指定 -out 时的输出目录")
	configPath := flag.String("config", "", "YAML 配置文件路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径，- 表示标准输出")
	dataJSON := flag.String("data", "", "绑定到清单的 JSON 数据")
	width := flag.Int("width", 0, "覆盖画布宽度（px）")
	regularFont := flag.String("font", "", "正文字体（builtin:mono 或 TTF 路径）")
	boldFont := flag.String("bold-font", "", "标题字体（builtin:mono-bold 或 TTF 路径）")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	if *width > 0 {
		cfg.Image.Width = *width
	}
	if *regularFont != "" {
		cfg.Fonts.Regular = *regularFont
	}
	if *boldFont != "" {
		cfg.Fonts.Bold = *boldFont
	}

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	settings, err := cfg.ImageSettings()
	if err != nil {
		log.Fatalf("配置无效: %v", err)
	}
	// 字体缺失时无法排版，直接退出。
	r, err := canvasrenderer.New(canvasrenderer.Options{
		Settings: settings,
		Regular:  canvasrenderer.Resource{Path: cfg.Fonts.Regular},
		Bold:     canvasrenderer.Resource{Path: cfg.Fonts.Bold},
	})
	if err != nil {
		log.Fatalf("初始化渲染器失败: %v", err)
	}

	path, err := run(*input, *output, *dir, *debug, inputData, r)
	if err != nil {
		log.Fatalf("生成图片失败: %v", err)
	}
	fmt.Printf("已生成图片：%s\n", path)
}

// run 串联解析、布局与渲染，返回写入的 PNG 路径。
func run(inputPath, outputPath, outputDir, debugPath string, data any, r *canvasrenderer.Renderer) (string, error) {
	opts, err := readList(inputPath, data)
	if err != nil {
		return "", err
	}

	img, res, err := r.RenderList(opts)
	if debugPath != "" && res != nil {
		if err := writeDebug(res, debugPath); err != nil {
			return "", err
		}
	}
	if err != nil {
		return "", fmt.Errorf("渲染失败: %w", err)
	}

	if outputPath == "" {
		outputPath = filepath.Join(outputDir, outputName(opts.Title))
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(outputPath, img.PNG, 0o644); err != nil {
		return "", fmt.Errorf("写入 PNG 文件失败: %w", err)
	}
	return outputPath, nil
}

func readList(inputPath string, data any) (layout.ListOptions, error) {
	file := os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return layout.ListOptions{}, fmt.Errorf("无法打开清单文件 %s: %w", inputPath, err)
		}
		defer f.Close()
		file = f
	}

	doc, err := dsl.ParseFile(inputPath, file)
	if err != nil {
		return layout.ListOptions{}, fmt.Errorf("解析清单失败: %w", err)
	}
	opts, err := layout.FromDocument(doc, data)
	if err != nil {
		return layout.ListOptions{}, fmt.Errorf("清单内容无效: %w", err)
	}
	return opts, nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if debugPath != "-" {
		if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
			return fmt.Errorf("创建调试目录失败: %w", err)
		}
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// outputName 用标题生成文件名，去掉路径分隔符等不适合出现在文件名里的字符；标题为空时为 image.png。
func outputName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			return -1
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, title)
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		name = "image"
	}
	return name + ".png"
}
