package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/primitives/pkg/vdom"
)

// Config configures a Renderer.
type Config struct {
	// OmitHIDs drops data-hid attributes, for static output that will
	// never be hydrated.
	OmitHIDs bool

	// OmitEventMarkers drops the data-on-<event> attributes.
	OmitEventMarkers bool
}

// Renderer writes vdom trees as HTML. It is not safe for concurrent use.
type Renderer struct {
	config Config

	// teleports buffers teleported content per container.
	teleports map[string]*bytes.Buffer
	order     []string
}

// NewRenderer creates a Renderer.
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders node, followed by any teleport containers.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders node to w, followed by any teleport containers.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	r.Reset()
	if err := r.renderNode(w, node); err != nil {
		return err
	}
	return r.writeTeleports(w)
}

// Containers returns the teleport containers seen by the last render, in
// first-use order.
func (r *Renderer) Containers() []string {
	return append([]string(nil), r.order...)
}

// Reset drops buffered teleport content.
func (r *Renderer) Reset() {
	r.teleports = nil
	r.order = nil
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node)
	case vdom.KindTeleport:
		return r.renderChildren(r.container(node.Tag), node)
	case vdom.KindComponent:
		return fmt.Errorf("render: unexpanded component node %T; render a runtime tree's Output", node.Comp)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) container(name string) *bytes.Buffer {
	if r.teleports == nil {
		r.teleports = make(map[string]*bytes.Buffer)
	}
	buf, ok := r.teleports[name]
	if !ok {
		buf = new(bytes.Buffer)
		r.teleports[name] = buf
		r.order = append(r.order, name)
	}
	return buf
}

// writeTeleports flushes the buffered containers. A teleport nested in
// another teleport is buffered under its own container, not the outer one.
func (r *Renderer) writeTeleports(w io.Writer) error {
	for _, name := range r.order {
		if _, err := fmt.Fprintf(w, `<div data-portal-container="%s">`, escapeAttr(name)); err != nil {
			return err
		}
		if _, err := r.teleports[name].WriteTo(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</div>"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[node.Tag] {
		return nil
	}
	if err := r.renderChildren(w, node); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]
		if value == nil || key == "key" {
			continue
		}
		if vdom.IsEventKey(key) && isHandler(value) {
			events = append(events, strings.ToLower(key[2:]))
			continue
		}
		if booleanAttrs[key] {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(vdom.AttrString(value))); err != nil {
			return err
		}
	}

	if node.HID != "" && !r.config.OmitHIDs {
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, node.HID); err != nil {
			return err
		}
	}
	if !r.config.OmitEventMarkers {
		for _, ev := range events {
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// isHandler reports whether value is a function.
func isHandler(value any) bool {
	switch value.(type) {
	case func(), func(string), func(float64):
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}
