package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	e := New(CodeNoProvider)
	if e.Category != CategoryPortal {
		t.Errorf("Category = %q", e.Category)
	}
	if e.Message != "Portal components must be used within a PortalProvider" {
		t.Errorf("Message = %q", e.Message)
	}
	if got := e.Error(); got != "P001: Portal components must be used within a PortalProvider" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	e := New("Z999")
	if e.Message != "Unknown error" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeUpdateDepth)
	raised := New(CodeUpdateDepth).WithDetail("after 50 passes")

	if !stderrors.Is(raised, sentinel) {
		t.Error("same code should match")
	}
	if stderrors.Is(raised, New(CodeNoHandler)) {
		t.Error("different code should not match")
	}

	wrapped := fmt.Errorf("flush: %w", raised)
	if !stderrors.Is(wrapped, sentinel) {
		t.Error("wrapped error should still match")
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	e := New(CodeConfigRead).Wrap(cause)
	if !stderrors.Is(e, cause) {
		t.Error("Unwrap chain should reach cause")
	}
	if !strings.Contains(e.Error(), "disk full") {
		t.Errorf("Error() = %q, want cause text", e.Error())
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeConfigRead) != nil {
		t.Error("FromError(nil) should be nil")
	}
	orig := New(CodeUnknownStory)
	if FromError(orig, CodeConfigRead) != orig {
		t.Error("FromError should pass *Error through")
	}
	wrapped := FromError(stderrors.New("boom"), CodeConfigRead)
	if wrapped.Code != CodeConfigRead {
		t.Errorf("Code = %q", wrapped.Code)
	}
}

func TestFormatters(t *testing.T) {
	e := New(CodeUnknownStory).WithMessage("Unknown story %q", "sldier").WithSuggestion(`did you mean "slider"?`)

	if got := e.FormatCompact(); got != `[G001] Unknown story "sldier" (did you mean "slider"?)` {
		t.Errorf("FormatCompact = %q", got)
	}
	if !strings.Contains(e.Format(), "did you mean") {
		t.Error("Format should include suggestion")
	}
	if !strings.Contains(e.FormatJSON(), `"code":"G001"`) {
		t.Errorf("FormatJSON = %s", e.FormatJSON())
	}
}

func TestCodesSortedAndRegistered(t *testing.T) {
	codes := Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	for _, c := range codes {
		if _, ok := Lookup(c); !ok {
			t.Errorf("Lookup(%s) failed", c)
		}
	}
}
