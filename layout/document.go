package layout

import (
	"fmt"
	"strings"

	"github.com/ByLCY/listmaker/binding"
	"github.com/ByLCY/listmaker/dsl"
)

// FromDocument 将 .list 文件的语法树转换为 ListOptions，并用 data 插值 ${...} 占位符。
// 条目按出现顺序收集，空白条目被丢弃。
func FromDocument(doc *dsl.Document, data any) (ListOptions, error) {
	var opts ListOptions
	if doc == nil || doc.Body == nil {
		return opts, fmt.Errorf("文档为空")
	}
	if doc.Title != nil {
		opts.Title = string(*doc.Title)
	}

	var entries []string
	for _, st := range doc.Body.Statements {
		switch {
		case st.Entry != nil:
			entries = append(entries, string(st.Entry.Value))
		case st.Assignment != nil:
			if err := applyAssignment(&opts, &entries, st.Assignment); err != nil {
				return opts, fmt.Errorf("第 %d 行: %w", st.Assignment.Pos.Line, err)
			}
		}
	}

	opts.Title = binding.Interpolate(opts.Title, data)
	opts.Entries = CleanEntries(binding.InterpolateAll(entries, data))
	opts.Notes = binding.Interpolate(opts.Notes, data)
	return opts, nil
}

func applyAssignment(opts *ListOptions, entries *[]string, a *dsl.Assignment) error {
	key := strings.ToLower(a.Key)
	if key == "entries" {
		if a.Value == nil || (a.Value.Array == nil && a.Value.String == nil) {
			return fmt.Errorf("entries 需要字符串或字符串数组")
		}
		*entries = append(*entries, a.Value.Strings()...)
		return nil
	}

	raw, ok := a.Value.Raw()
	if !ok {
		return fmt.Errorf("%s 不接受数组值", a.Key)
	}
	switch key {
	case "title":
		opts.Title = raw
	case "style", "type":
		style, err := ParseListStyle(raw)
		if err != nil {
			return err
		}
		opts.Style = style
	case "separators":
		v, err := parseSwitch(raw)
		if err != nil {
			return fmt.Errorf("separators: %w", err)
		}
		opts.HasSeparators = v
	case "notes":
		opts.Notes = raw
		opts.HasNotes = true
	default:
		return fmt.Errorf("未知属性 %s", a.Key)
	}
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "yes", "true", "on":
		return true, nil
	case "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("无法解析开关值 %q", v)
}

// CleanEntries 去掉只含空白的条目，保留其余条目的顺序与原文。
func CleanEntries(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
