package platform

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/primitives/internal/errors"
)

func TestParseOS(t *testing.T) {
	tests := []struct {
		in      string
		want    OS
		wantErr bool
	}{
		{"", Web, false},
		{"web", Web, false},
		{" Native ", Native, false},
		{"ios", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOS(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseOS(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !stderrors.Is(err, errors.New(errors.CodeUnknownBackend)) {
			t.Errorf("ParseOS(%q) error code = %v", tt.in, err)
		}
	}
}

func TestElementsPerBackend(t *testing.T) {
	tests := []struct {
		os                  OS
		view, text, press   string
		pressEvent, roleKey string
	}{
		{Web, "div", "span", "button", "onclick", ""},
		{Native, "View", "Text", "Pressable", "onpress", "accessibilityRole"},
	}
	for _, tt := range tests {
		if got := View(tt.os).Tag; got != tt.view {
			t.Errorf("%s View = %s", tt.os, got)
		}
		if got := Text(tt.os).Tag; got != tt.text {
			t.Errorf("%s Text = %s", tt.os, got)
		}
		p := Pressable(tt.os, OnPress(tt.os, func() {}))
		if p.Tag != tt.press || p.Handler(tt.pressEvent) == nil {
			t.Errorf("%s Pressable = <%s> %v", tt.os, p.Tag, p.Props)
		}
		if got := AccessibilityRole(tt.os, "adjustable").Key; got != tt.roleKey {
			t.Errorf("%s AccessibilityRole key = %q", tt.os, got)
		}
	}
	if Pressable(Web).Attr("type") != "button" {
		t.Error("web pressable should be type=button")
	}
	if OnPress(Web, nil).Event != "" {
		t.Error("nil press handler should be empty")
	}
}

func TestAccessibilityValueString(t *testing.T) {
	v := AccessibilityValue{Min: 0, Max: 1, Now: 0.5}
	if got := v.String(); got != "min=0 max=1 now=0.5" {
		t.Errorf("String() = %q", got)
	}
}
