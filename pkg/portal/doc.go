// Package portal lets a component declared deep in a tree render its
// content inside a named host somewhere else in the same tree.
//
// A Provider owns a Scope holding an immutable Registry snapshot: host name
// to an ordered bucket of named payloads. A Portal writes its children into
// a bucket when it mounts or changes and removes them when it unmounts. A
// Host renders the payloads of its bucket in first-insertion order, or
// nothing when the bucket is empty.
//
//	vdom.Mount(portal.Provider{Children: []any{
//	    vdom.Mount(portal.Portal{Name: "tooltip", Host: "main", Children: []any{vdom.Text("Hello")}}),
//	    vdom.Mount(portal.Host{Name: "main"}),
//	}})
//
// Every write produces a new snapshot that shares the buckets of other
// hosts, so a Host re-renders only when its own bucket changes.
package portal
