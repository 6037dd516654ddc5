package layout

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/listmaker/dsl"
)

func parseDoc(t *testing.T, src string) *dsl.Document {
	t.Helper()
	doc, err := dsl.ParseString(src)
	if err != nil {
		t.Fatalf("解析 DSL 失败: %v", err)
	}
	return doc
}

func TestFromDocument(t *testing.T) {
	doc := parseDoc(t, `
list "Shopping for ${who}" {
  style: number
  separators: on
  "Buy ${qty} eggs"
  "   "
  entries: ["Bread", "Milk"]
  notes: "Budget ${budget:-unknown}"
}
`)
	var data any
	if err := json.Unmarshal([]byte(`{"who":"Sam","qty":12}`), &data); err != nil {
		t.Fatal(err)
	}
	opts, err := FromDocument(doc, data)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	want := ListOptions{
		Title:         "Shopping for Sam",
		Style:         StyleNumbered,
		Entries:       []string{"Buy 12 eggs", "Bread", "Milk"},
		HasNotes:      true,
		Notes:         "Budget unknown",
		HasSeparators: true,
	}
	if !reflect.DeepEqual(opts, want) {
		t.Fatalf("got %+v\nwant %+v", opts, want)
	}
}

func TestFromDocumentErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":   `list { colour: red }`,
		"bad style":     `list { style: stars }`,
		"bad switch":    `list { separators: maybe }`,
		"array for key": `list { title: ["a"] }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := FromDocument(parseDoc(t, src), nil); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestFromDocumentTitleAssignment(t *testing.T) {
	opts, err := FromDocument(parseDoc(t, `list { title: "Late title"; style: triangle; "x" }`), nil)
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if opts.Title != "Late title" || opts.Style != StyleTriangle || opts.HasNotes {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestCleanEntries(t *testing.T) {
	in := []string{" a ", "", "\t", "b"}
	got := CleanEntries(in)
	if strings.Join(got, "|") != " a |b" {
		t.Fatalf("unexpected result %q", got)
	}
	if len(in) != 4 {
		t.Fatalf("input mutated")
	}
}
