package layout

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// monoFace 是测试用的等宽字体度量：每个字符固定宽度，个别符号更宽。
type monoFace struct {
	width float64
	wide  map[rune]float64
}

func (f monoFace) TextWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		if w, ok := f.wide[r]; ok {
			total += w
			continue
		}
		total += f.width
	}
	return total
}

var (
	bodyFace  = monoFace{width: 14, wide: map[rune]float64{'▢': 29}}
	titleFace = monoFace{width: 19}
)

const longEntry = "Pick up the dry cleaning before the shop closes and remember to ask about the missing button on the blue coat"

func TestWrapSingleLineWhenItFits(t *testing.T) {
	lines := Wrap("Buy milk", "1) ", 20, 472, bodyFace)
	want := []WrappedLine{{X: 20, Content: "1) Buy milk"}}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %+v, want %+v", lines, want)
	}
}

func TestWrapExactWidthStaysOnOneLine(t *testing.T) {
	text := strings.Repeat("x", 10)
	lines := Wrap(text, "", 0, 140, bodyFace)
	if len(lines) != 1 || lines[0].Content != text {
		t.Fatalf("expected a single unchanged line, got %+v", lines)
	}
}

func TestWrapFlattensLineBreaks(t *testing.T) {
	lines := Wrap("Bring bags.\nPay by card.", "• ", 20, 472, bodyFace)
	want := []WrappedLine{{X: 20, Content: "• Bring bags. Pay by card."}}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("got %+v, want %+v", lines, want)
	}
}

func TestWrapPreservesWordsAndWidth(t *testing.T) {
	const maxWidth = 472.0
	cases := []struct {
		name   string
		prefix string
		face   monoFace
	}{
		{"numbered", "3) ", bodyFace},
		{"bullet", "• ", bodyFace},
		{"checkbox", "▢ ", bodyFace},
		{"plain", "", bodyFace},
		{"title", "", titleFace},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := Wrap(longEntry, tc.prefix, 20, maxWidth, tc.face)
			if len(lines) < 2 {
				t.Fatalf("expected wrapping, got %+v", lines)
			}

			var got []string
			for _, ln := range lines {
				got = append(got, strings.Fields(ln.Content)...)
			}
			want := strings.Fields(tc.prefix + longEntry)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("word sequence changed:\n got %q\nwant %q", got, want)
			}

			cw := estimateCharWidth(tc.prefix, tc.face)
			for i, ln := range lines {
				est := (ln.X - 20) + float64(utf8.RuneCountInString(ln.Content))*cw
				if est > maxWidth {
					t.Fatalf("line %d estimated width %g exceeds %g: %q", i, est, maxWidth, ln.Content)
				}
			}
		})
	}
}

func TestWrapHangingIndent(t *testing.T) {
	lines := Wrap(longEntry, "3) ", 20, 472, bodyFace)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(lines))
	}
	if !strings.HasPrefix(lines[0].Content, "3) ") {
		t.Fatalf("first line must carry the prefix, got %q", lines[0].Content)
	}
	indent := bodyFace.TextWidth("3) ")
	for i, ln := range lines[1:] {
		if ln.X != lines[0].X+indent {
			t.Fatalf("continuation line %d x=%g, want %g", i+1, ln.X, lines[0].X+indent)
		}
	}
}

func TestWrapWithoutPrefixSharesBaseOffset(t *testing.T) {
	lines := Wrap(longEntry, "", 20, 300, bodyFace)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(lines))
	}
	for i, ln := range lines {
		if ln.X != 20 {
			t.Fatalf("line %d x=%g, want 20", i, ln.X)
		}
	}
}

func TestEstimateCharWidthClampsWideGlyphs(t *testing.T) {
	// (29 + 14) / 2 = 21.5，超过阈值后退回 14。
	if got := estimateCharWidth("▢ ", bodyFace); got != fallbackCharWidth {
		t.Fatalf("checkbox prefix char width = %g, want %g", got, fallbackCharWidth)
	}
	if got := estimateCharWidth("12) ", bodyFace); got != 14 {
		t.Fatalf("numbered prefix char width = %g, want 14", got)
	}
	if got := estimateCharWidth("", titleFace); got != 19 {
		t.Fatalf("plain text char width = %g, want 19", got)
	}
}

func TestWrapSplitsOverlongWord(t *testing.T) {
	word := strings.Repeat("a", 35)
	lines := Wrap(word, "", 0, 140, bodyFace)
	want := []string{strings.Repeat("a", 10), strings.Repeat("a", 10), strings.Repeat("a", 10), strings.Repeat("a", 5)}
	var got []string
	for _, ln := range lines {
		got = append(got, ln.Content)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapWordsGreedy(t *testing.T) {
	got := wrapWords("aa bb cc dd", 5)
	want := []string{"aa bb", "cc dd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	if lines := wrapWords("   ", 5); len(lines) != 0 {
		t.Fatalf("blank input should produce no lines, got %q", lines)
	}
}
