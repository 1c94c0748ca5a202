package export

import (
	"github.com/vango-dev/primitives/pkg/gallery"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/vdom"
)

func indexBody(stories []gallery.Story, backends []platform.OS) *vdom.VNode {
	items := make([]any, 0, len(stories))
	for _, s := range stories {
		links := []any{vdom.Span(s.Title)}
		for _, os := range backends {
			links = append(links, " ", vdom.A(vdom.Href(Key("", s.Name, os)), string(os)))
		}
		items = append(items, vdom.Li(links...))
	}
	return vdom.Main(vdom.H1("Primitives gallery"), vdom.Ul(items...))
}
