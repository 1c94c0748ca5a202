// Package termview draws a composed native tree (View, Text, Pressable) as
// styled terminal text. Web element trees are drawn too, with div and span
// treated as View and Text.
package termview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/vdom"
)

const (
	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtle  lipgloss.Color = "#6c7086"
	colorSurface lipgloss.Color = "#313244"
	colorFocus   lipgloss.Color = "#b4befe"
	colorAccent  lipgloss.Color = "#f5c2e7"
	colorTrack   lipgloss.Color = "#45475a"
)

// Styles are the lipgloss styles used for each part.
type Styles struct {
	Text      lipgloss.Style
	Heading   lipgloss.Style
	Button    lipgloss.Style
	Focused   lipgloss.Style
	Disabled  lipgloss.Style
	Dialog    lipgloss.Style
	Card      lipgloss.Style
	Overlay   lipgloss.Style
	Container lipgloss.Style
	Filled    lipgloss.Style
	Empty     lipgloss.Style
	Thumb     lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(colorText),
		Heading:   lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(colorSurface).Background(colorFocus).Bold(true).Padding(0, 1),
		Disabled:  lipgloss.NewStyle().Foreground(colorSubtle).Padding(0, 1),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorAccent).Padding(0, 1),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSubtle).Padding(0, 1),
		Overlay:   lipgloss.NewStyle().Foreground(colorSubtle).Faint(true),
		Container: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(colorSubtle),
		Filled:    lipgloss.NewStyle().Foreground(colorAccent),
		Empty:     lipgloss.NewStyle().Foreground(colorTrack),
		Thumb:     lipgloss.NewStyle().Foreground(colorFocus).Bold(true),
	}
}

// Options control drawing.
type Options struct {
	// Width of slider tracks in cells. Defaults to 24.
	TrackWidth int

	// Focus is the hydration ID drawn as focused.
	Focus string

	Styles *Styles
}

// Render draws node.
func Render(node *vdom.VNode, opts Options) string {
	if opts.TrackWidth <= 0 {
		opts.TrackWidth = 24
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	d := &drawer{opts: opts, styles: styles}
	main := d.block(node)
	parts := []string{main}
	parts = append(parts, d.containers...)
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, nonEmpty(parts)...), "\n")
}

// Focusable returns the hydration IDs of the interactive elements below
// node, in document order.
func Focusable(node *vdom.VNode) []string {
	var out []string
	for _, n := range vdom.Interactive(node) {
		if n.HID != "" {
			out = append(out, n.HID)
		}
	}
	return out
}

type drawer struct {
	opts       Options
	styles     Styles
	containers []string
}

func (d *drawer) block(n *vdom.VNode) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case vdom.KindText:
		return d.styles.Text.Render(n.Text)
	case vdom.KindRaw:
		return n.Text
	case vdom.KindFragment:
		return d.children(n)
	case vdom.KindTeleport:
		body := d.children(n)
		if body != "" {
			d.containers = append(d.containers, d.styles.Container.Render(body))
		}
		return ""
	case vdom.KindElement:
		return d.element(n)
	}
	return ""
}

func (d *drawer) children(n *vdom.VNode) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, d.block(c))
	}
	return lipgloss.JoinVertical(lipgloss.Left, nonEmpty(parts)...)
}

func (d *drawer) element(n *vdom.VNode) string {
	switch {
	case n.Attr("data-part") == "overlay":
		return d.styles.Overlay.Render("░░ overlay ░░")
	case n.Attr("accessibilityRole") == "adjustable" || (n.Attr("role") == "slider" && n.Attr("data-part") == "thumb"):
		return d.thumb(n)
	case n.Attr("role") == "slider":
		return d.track(n)
	}

	switch n.Tag {
	case "Text", "span", "h2", "p", "a":
		style := d.styles.Text
		if n.Attr("role") == "heading" || n.Tag == "h2" {
			style = d.styles.Heading
		}
		if n.IsInteractive() {
			return d.button(n)
		}
		return style.Render(vdom.TextContent(n))
	case "Pressable", "button":
		return d.button(n)
	}

	body := d.children(n)
	switch {
	case n.Attr("role") == "alertdialog":
		return d.styles.Dialog.Render(body)
	case n.Attr("data-side") != "":
		return d.styles.Card.Render(body)
	}
	return body
}

func (d *drawer) button(n *vdom.VNode) string {
	label := vdom.TextContent(n)
	if label == "" {
		label = n.Attr("data-part")
	}
	switch {
	case n.Props["disabled"] == true || n.Attr("aria-disabled") == "true":
		return d.styles.Disabled.Render(label)
	case n.HID != "" && n.HID == d.opts.Focus:
		return d.styles.Focused.Render("▸ " + label)
	}
	return d.styles.Button.Render(label)
}

// track draws a bar for a role=slider track, from its aria values.
func (d *drawer) track(n *vdom.VNode) string {
	lo, hi, now := number(n, "aria-valuemin"), number(n, "aria-valuemax"), number(n, "aria-valuenow")
	frac := 0.0
	if hi > lo {
		frac = (now - lo) / (hi - lo)
	}
	filled := int(math.Round(frac * float64(d.opts.TrackWidth)))
	filled = min(max(filled, 0), d.opts.TrackWidth)
	bar := d.styles.Filled.Render(strings.Repeat("━", filled)) +
		d.styles.Empty.Render(strings.Repeat("─", d.opts.TrackWidth-filled))
	return fmt.Sprintf("%s %s", bar, vdom.AttrString(now))
}

func (d *drawer) thumb(n *vdom.VNode) string {
	mark := "◉ thumb"
	if n.HID != "" && n.HID == d.opts.Focus {
		return d.styles.Focused.Render("▸ " + mark)
	}
	return d.styles.Thumb.Render(mark)
}

// number reads a numeric attribute, falling back to the native
// accessibilityValue prop.
func number(n *vdom.VNode, key string) float64 {
	var v float64
	if _, err := fmt.Sscan(n.Attr(key), &v); err == nil {
		return v
	}
	if av, ok := n.Props["accessibilityValue"].(platform.AccessibilityValue); ok {
		switch key {
		case "aria-valuemin":
			return av.Min
		case "aria-valuemax":
			return av.Max
		case "aria-valuenow":
			return av.Now
		}
	}
	return 0
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
