package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vango-dev/primitives/internal/errors"
	"github.com/vango-dev/primitives/pkg/vdom"
)

// Dispatch invokes the handler for event on the element with hydration ID
// hid, then flushes. event may be given with or without the "on" prefix.
//
// Handlers may be func(), func(string) or func(float64). value is converted
// to the handler's parameter type.
func (t *Tree) Dispatch(hid, event string, value any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrTreeClosed
	}

	node := vdom.FindByHID(t.output, hid)
	if node == nil {
		return errors.New(errors.CodeNoHandler).WithDetail(fmt.Sprintf("no element with hydration id %q", hid))
	}
	key := normalizeEvent(event)
	handler := node.Handler(key)
	if handler == nil {
		return errors.New(errors.CodeNoHandler).WithDetail(fmt.Sprintf("element %s (%s) has no %s handler", hid, node.Tag, key))
	}

	var callErr error
	t.guard(func() {
		callErr = invoke(handler, value)
	})
	if callErr != nil {
		return callErr
	}
	return t.flushLocked()
}

// Handlers returns the event names handled by the element with the given
// hydration ID, without the "on" prefix.
func (t *Tree) Handlers(hid string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	node := vdom.FindByHID(t.output, hid)
	if node == nil {
		return nil
	}
	var out []string
	for k, v := range node.Props {
		if vdom.IsEventKey(k) && v != nil {
			out = append(out, strings.TrimPrefix(k, "on"))
		}
	}
	return out
}

func normalizeEvent(event string) string {
	event = strings.ToLower(event)
	if strings.HasPrefix(event, "on") && len(event) > 2 {
		return event
	}
	return "on" + event
}

func invoke(handler, value any) error {
	switch h := handler.(type) {
	case func():
		h()
	case func(string):
		h(stringValue(value))
	case func(float64):
		f, err := floatValue(value)
		if err != nil {
			return errors.New(errors.CodeHandlerType).Wrap(err)
		}
		h(f)
	default:
		return errors.New(errors.CodeHandlerType).WithDetail(fmt.Sprintf("got %T", handler))
	}
	return nil
}

func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func floatValue(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", v)
	}
}
