// Package vdom provides the virtual node tree shared by every primitive.
//
// Components build trees with element, attribute and event helpers:
//
//	vdom.Div(
//	    vdom.Role("group"),
//	    vdom.Data("state", "open"),
//	    vdom.OnClick(func() { open.Set(false) }),
//	    vdom.Text("Close"),
//	)
//
// Native backends use CustomElement with the View, Text and Pressable tags.
// The web backend uses Teleport to place overlay content in a container at
// the end of the document body.
package vdom
