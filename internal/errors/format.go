package errors

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	codeStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	messageStyle    = lipgloss.NewStyle().Bold(true)
	detailStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Format returns a styled multi-line message for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(codeStyle.Render("ERROR " + e.Code + ":"))
		b.WriteString(" ")
	}
	b.WriteString(messageStyle.Render(e.Message))
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("\n")
		b.WriteString(detailStyle.Render(lipgloss.NewStyle().Width(76).Render(e.Detail)))
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		b.WriteString("\n  caused by: ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n")
		b.WriteString(suggestionStyle.Render("hint: " + e.Suggestion))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCompact returns a single-line representation for logs.
func (e *Error) FormatCompact() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString("[" + e.Code + "] ")
	}
	b.WriteString(e.Message)
	if e.Suggestion != "" {
		b.WriteString(" (" + e.Suggestion + ")")
	}
	return b.String()
}

// FormatJSON returns the error as a JSON document.
func (e *Error) FormatJSON() string {
	payload := map[string]string{
		"code":     e.Code,
		"category": string(e.Category),
		"message":  e.Message,
	}
	if e.Detail != "" {
		payload["detail"] = e.Detail
	}
	if e.Suggestion != "" {
		payload["suggestion"] = e.Suggestion
	}
	if e.Wrapped != nil {
		payload["cause"] = e.Wrapped.Error()
	}
	data, _ := json.Marshal(payload)
	return string(data)
}
