package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/listmaker/fonts"
	"github.com/ByLCY/listmaker/layout"
)

func TestDefaultMatchesLayoutDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := cfg.ImageSettings()
	if err != nil {
		t.Fatalf("ImageSettings: %v", err)
	}
	if s != layout.DefaultImageSettings() {
		t.Fatalf("got %+v, want %+v", s, layout.DefaultImageSettings())
	}
	if cfg.Fonts.Regular != fonts.BuiltinRegular || cfg.Fonts.Bold != fonts.BuiltinBold {
		t.Fatalf("unexpected default fonts %+v", cfg.Fonts)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listmaker.yaml")
	data := `
image:
  width: 384
  background: "#fafafa"
fonts:
  regular: assets/Iosevka-Extended.ttf
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := cfg.ImageSettings()
	if err != nil {
		t.Fatalf("ImageSettings: %v", err)
	}
	if s.Width != 384 || s.Margin != 20 || s.LineHeight != 30 || s.Height != 6000 {
		t.Fatalf("unexpected geometry %+v", s)
	}
	if s.Background != (layout.Color{R: 0xfa, G: 0xfa, B: 0xfa}) {
		t.Fatalf("unexpected background %+v", s.Background)
	}
	if cfg.Fonts.Regular != "assets/Iosevka-Extended.ttf" || cfg.Fonts.Bold != fonts.BuiltinBold {
		t.Fatalf("unexpected fonts %+v", cfg.Fonts)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("image: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]layout.Color{
		"white":     {R: 255, G: 255, B: 255},
		" Black ":   {},
		"#f00":      {R: 255},
		"#0F62FE":   {R: 0x0f, G: 0x62, B: 0xfe},
		"#11223344": {R: 0x11, G: 0x22, B: 0x33},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Errorf("ParseColor(%q) = %+v, %v; want %+v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "red", "#12", "#zzzzzz"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestImageSettingsRejectsBadFontSize(t *testing.T) {
	cfg := Default()
	cfg.Fonts.BodySize = 0
	if _, err := cfg.ImageSettings(); err == nil {
		t.Fatalf("expected error for zero body size")
	}
}
