// Package config loads primitives.toml.
//
// Values come from, in increasing precedence: built-in defaults, the TOML
// file, and PRIMITIVES_* environment variables (PRIMITIVES_SERVER_ADDR
// overrides server.addr).
//
//	[server]
//	addr = ":7070"
//
//	[render]
//	backend = "web"
//
//	[portal]
//	reclaim_empty_hosts = false
//	max_passes = 50
//
//	[export]
//	dir = "dist"
//	bucket = ""
//	prefix = "gallery"
//
//	[log]
//	level = "info"
package config
