// Package primitives groups accessible, unstyled UI building blocks that
// render on two backends: "web" (HTML elements, overlays teleported to the
// end of <body>) and "native" (View/Text/Pressable trees, overlays routed
// through the portal package).
//
// Subpackages:
//
//	platform      backend selection and element mapping
//	slot          AsChild prop merging
//	controllable  controlled/uncontrolled state
//	alertdialog   modal confirmation dialog
//	hovercard     preview card shown while hovering a trigger
//	slider        single-thumb range input
package primitives
