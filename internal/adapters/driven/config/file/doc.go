// Package file provides file-based configuration for Tubedraft.
// Channel-wide defaults (content style, audience, links, social
// handles) live in a TOML file and are merged into compose requests by
// the description service.
package file
