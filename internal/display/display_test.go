package display

import (
	"errors"
	"strings"
	"testing"

	"github.com/xileflig/naming/internal/convention"
	"github.com/xileflig/naming/internal/lint"
)

func TestRenderFields(t *testing.T) {
	kind, err := convention.NewLookupField("kind", []convention.Pair{{Key: "char", Token: "c"}})
	if err != nil {
		t.Fatalf("NewLookupField: %v", err)
	}
	version, err := convention.NewIntegerField("version", convention.WithPadding(4), convention.Optional())
	if err != nil {
		t.Fatalf("NewIntegerField: %v", err)
	}

	out := RenderFields([]*convention.Field{kind, version})
	for _, want := range []string{"kind", "lookup", "char=c", "version", "padding 4", "optional"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFieldsEmpty(t *testing.T) {
	if out := RenderFields(nil); !strings.Contains(out, "no fields") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRenderProfilesMarksActive(t *testing.T) {
	a, _ := convention.NewProfile("asset")
	s, _ := convention.NewProfile("shot", convention.WithSeparator("."))

	out := RenderProfiles([]*convention.Profile{a, s}, "shot")
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "*") {
		t.Errorf("active profile not marked: %q", lines[1])
	}
	if strings.Contains(lines[0], "*") {
		t.Errorf("inactive profile marked: %q", lines[0])
	}
}

func TestRenderValues(t *testing.T) {
	out := RenderValues([]convention.FieldValue{
		{Field: "kind", Value: "char"},
		{Field: "version", Value: 7},
	})
	if out != "kind = char\nversion = 7" {
		t.Errorf("got %q", out)
	}
}

func TestRenderReport(t *testing.T) {
	r := &lint.Report{Profile: "asset", Total: 2, Compliant: 1, Violations: []lint.Violation{
		{Path: "/x/bad name.ma", Err: errors.New("boom")},
	}}
	out := RenderReport(r)
	for _, want := range []string{"2 file(s)", "asset", "1 violation", "bad name.ma", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
