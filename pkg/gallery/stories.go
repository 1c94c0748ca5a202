package gallery

import (
	"fmt"

	"github.com/vango-dev/primitives/pkg/portal"
	"github.com/vango-dev/primitives/pkg/primitives/alertdialog"
	"github.com/vango-dev/primitives/pkg/primitives/hovercard"
	"github.com/vango-dev/primitives/pkg/primitives/platform"
	"github.com/vango-dev/primitives/pkg/primitives/slider"
	"github.com/vango-dev/primitives/pkg/reactive"
	"github.com/vango-dev/primitives/pkg/vdom"
)

func init() {
	Register(Story{
		Name:        "portal",
		Title:       "Portal",
		Description: "Content registered in one place and drawn by a host elsewhere.",
		New:         func() vdom.Component { return portalStory{} },
	})
	Register(Story{
		Name:        "alert-dialog",
		Title:       "Alert Dialog",
		Description: "A modal confirmation that has to be answered.",
		New:         func() vdom.Component { return alertDialogStory{} },
	})
	Register(Story{
		Name:        "hover-card",
		Title:       "Hover Card",
		Description: "A preview card shown on hover or focus, or on press on native.",
		New:         func() vdom.Component { return hoverCardStory{} },
	})
	Register(Story{
		Name:        "slider",
		Title:       "Slider",
		Description: "A single-thumb range input.",
		New:         func() vdom.Component { return sliderStory{} },
	})
}

// greetings are the portal story's stages; the last stage removes the
// registration.
var greetings = []string{"Hello", "World"}

// portalStory writes to the "main" host and leaves "tooltip" empty.
type portalStory struct{}

func (portalStory) Render() *vdom.VNode {
	os := platform.Use()
	stage := reactive.UseSignal(0)
	s := stage.Get()

	var content *vdom.VNode
	if s < len(greetings) {
		content = vdom.Mount(portal.Portal{
			Name:     "greeting",
			Host:     "main",
			Children: []any{platform.Text(os, vdom.Data("part", "greeting"), greetings[s])},
		})
	}

	label := "Next"
	if s >= len(greetings) {
		label = "Reset"
	}
	return platform.View(os,
		platform.Pressable(os,
			vdom.Data("part", "next"),
			platform.OnPress(os, func() { stage.Set((stage.Peek() + 1) % (len(greetings) + 1)) }),
			label,
		),
		platform.View(os, vdom.Data("host", "main"), vdom.Mount(portal.Host{Name: "main"})),
		platform.View(os, vdom.Data("host", "tooltip"), vdom.Mount(portal.Host{Name: "tooltip"})),
		content,
	)
}

type alertDialogStory struct{}

func (alertDialogStory) Render() *vdom.VNode {
	os := platform.Use()
	deleted := reactive.UseSignal(0)

	return platform.View(os,
		platform.Text(os, vdom.Data("part", "status"), fmt.Sprintf("Deleted %d times", deleted.Get())),
		vdom.Mount(alertdialog.Root{Children: []any{
			vdom.Mount(alertdialog.Trigger{Children: []any{"Delete account"}}),
			vdom.Mount(alertdialog.Portal{Children: []any{
				vdom.Mount(alertdialog.Overlay{}),
				vdom.Mount(alertdialog.Content{Children: []any{
					vdom.Mount(alertdialog.Title{Children: []any{"Are you absolutely sure?"}}),
					vdom.Mount(alertdialog.Description{Children: []any{
						"This action cannot be undone. Your account will be removed from our servers.",
					}}),
					vdom.Mount(alertdialog.Cancel{Children: []any{"Cancel"}}),
					vdom.Mount(alertdialog.Action{
						OnPress:  func() { deleted.Update(func(n int) int { return n + 1 }) },
						Children: []any{"Yes, delete account"},
					}),
				}}),
			}}),
		}}),
	)
}

type hoverCardStory struct{}

func (hoverCardStory) Render() *vdom.VNode {
	return vdom.Mount(hovercard.Root{Children: []any{
		vdom.Mount(hovercard.Trigger{Children: []any{"@vango-dev"}}),
		vdom.Mount(hovercard.Portal{Children: []any{
			vdom.Mount(hovercard.Overlay{}),
			vdom.Mount(hovercard.Content{SideOffset: 5, Children: []any{
				vdom.Mount(profile{}),
			}}),
		}}),
	}})
}

type profile struct{}

func (profile) Render() *vdom.VNode {
	os := platform.Use()
	return platform.View(os,
		platform.Text(os, vdom.Role("heading"), "vango-dev"),
		platform.Text(os, "Primitives for web and native, rendered from Go."),
	)
}

type sliderStory struct{}

func (sliderStory) Render() *vdom.VNode {
	os := platform.Use()
	value := reactive.UseSignal(50.0)
	v := value.Get()

	return platform.View(os,
		platform.Text(os, vdom.Data("part", "value"), "Volume "+vdom.AttrString(v)),
		vdom.Mount(slider.Root{
			Value:         &v,
			Step:          5,
			OnValueChange: value.Set,
			Children: []any{
				vdom.Mount(slider.Track{Children: []any{vdom.Mount(slider.Range{})}}),
				vdom.Mount(slider.Thumb{}),
			},
		}),
	)
}
