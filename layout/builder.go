package layout

import (
	"errors"
	"fmt"
	"strings"
)

const (
	separatorWidth = 2.0
	notesLabel     = "Notes:"
)

var (
	// ErrOversizeContent 表示内容高度超出了预分配画布，布局拒绝静默截断。
	ErrOversizeContent = errors.New("layout: 内容超出画布高度")
	errNoTypesetter    = errors.New("layout: 缺少排版后端 Typesetter")
)

// Build 依次排版标题、条目（可选分隔线）与备注，生成绘制指令。
// 每次调用都使用全新的游标，不保留任何跨调用状态；opts.Entries 不会被修改。
func Build(opts ListOptions, bo BuildOptions) (*Result, error) {
	if bo.Typesetter == nil {
		return nil, errNoTypesetter
	}
	s := bo.Settings
	if err := validateSettings(s); err != nil {
		return nil, err
	}
	if !opts.Style.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStyle, opts.Style)
	}

	c := &composer{
		settings: s,
		ts:       bo.Typesetter,
		cur:      newCursor(s),
		res:      &Result{Settings: s},
	}
	if err := c.title(opts.Title); err != nil {
		return nil, err
	}
	if err := c.entries(opts); err != nil {
		return nil, err
	}
	if opts.HasNotes && strings.TrimSpace(opts.Notes) != "" {
		if err := c.notes(opts.Notes); err != nil {
			return nil, err
		}
	}
	c.res.CursorY = c.cur.y
	return c.res, nil
}

func validateSettings(s ImageSettings) error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("layout: 画布尺寸无效 %dx%d", s.Width, s.Height)
	case s.Margin < 0 || 2*s.Margin >= s.Width:
		return fmt.Errorf("layout: 边距 %d 与宽度 %d 不匹配", s.Margin, s.Width)
	case s.LineHeight <= 0:
		return fmt.Errorf("layout: 行高必须为正数，当前 %d", s.LineHeight)
	}
	return nil
}

// cursor 是"下一处空闲的 y"，只增不减。
type cursor struct {
	y     float64
	limit float64 // 行底加下边距不能越过的位置
	line  float64
}

func newCursor(s ImageSettings) cursor {
	return cursor{
		y:     float64(s.Margin),
		limit: float64(s.Height - s.Margin),
		line:  float64(s.LineHeight),
	}
}

func (c *cursor) advance(dy float64) {
	if dy > 0 {
		c.y += dy
	}
}

// reserve 在绘制前检查当前位置还能否再放下 height 高的内容。
func (c *cursor) reserve(height float64) error {
	if c.y+height > c.limit {
		return fmt.Errorf("%w: 需要 y=%.0f，上限 %.0f", ErrOversizeContent, c.y+height, c.limit)
	}
	return nil
}

type composer struct {
	settings ImageSettings
	ts       Typesetter
	cur      cursor
	res      *Result
}

func (c *composer) title(title string) error {
	face := c.ts.Face(FontBold)
	if err := c.emit(Wrap(title, "", c.margin(), c.settings.ContentWidth(), face), FontBold, RoleTitle, 0); err != nil {
		return err
	}
	// 标题后空一行作为段落间距。
	c.cur.advance(c.cur.line)
	return nil
}

func (c *composer) entries(opts ListOptions) error {
	face := c.ts.Face(FontRegular)
	last := len(opts.Entries) - 1
	for i, entry := range opts.Entries {
		prefix := opts.Style.Prefix(i + 1)
		lines := Wrap(entry, prefix, c.margin(), c.settings.ContentWidth(), face)
		if err := c.emit(lines, FontRegular, RoleEntry, i+1); err != nil {
			return err
		}
		if opts.HasSeparators && i != last {
			if err := c.separator(); err != nil {
				return err
			}
		}
	}
	// 条目之后固定空两行，没有条目时也保留，与原有排版一致。
	c.cur.advance(2 * c.cur.line)
	return nil
}

// separator 把分隔线放在条目间空隙的正中。
func (c *composer) separator() error {
	half := c.cur.line / 2
	c.cur.advance(half)
	if err := c.cur.reserve(half); err != nil {
		return err
	}
	c.res.Rules = append(c.res.Rules, Line{
		X1:    c.margin(),
		Y1:    c.cur.y,
		X2:    float64(c.settings.Width - c.settings.Margin),
		Y2:    c.cur.y,
		Width: separatorWidth,
	})
	c.cur.advance(half)
	return nil
}

func (c *composer) notes(notes string) error {
	label := []WrappedLine{{X: c.margin(), Content: notesLabel}}
	if err := c.emit(label, FontRegular, RoleNotesLabel, 0); err != nil {
		return err
	}
	c.cur.advance(c.cur.line / 2)
	face := c.ts.Face(FontRegular)
	for _, para := range paragraphs(notes) {
		para = strings.TrimRight(para, " \t")
		if err := c.emit(Wrap(para, "", c.margin(), c.settings.ContentWidth(), face), FontRegular, RoleNotes, 0); err != nil {
			return err
		}
	}
	return nil
}

// paragraphs 按换行拆分备注，首尾空行去掉；中间的空行保留为一行空白。
func paragraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.Trim(s, " \t\r\n"), "\n")
}

// emit 记录每一行并将游标下移一个行高；空行只占位不产生文本。
func (c *composer) emit(lines []WrappedLine, font FontWeight, role TextRole, entry int) error {
	for _, ln := range lines {
		if err := c.cur.reserve(c.cur.line); err != nil {
			return err
		}
		if ln.Content != "" {
			c.res.Texts = append(c.res.Texts, TextBox{
				Content: ln.Content,
				X:       ln.X,
				Y:       c.cur.y,
				Font:    font,
				Role:    role,
				Entry:   entry,
			})
		}
		c.cur.advance(c.cur.line)
	}
	return nil
}

func (c *composer) margin() float64 { return float64(c.settings.Margin) }
