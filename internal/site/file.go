// Package site holds the build's domain model: source files, pages, menus and
// taxonomies. Collections here are plain mutable containers; the build steps
// own their population and reset policy.
package site

import "time"

// File describes a discovered source file.
type File struct {
	// Path is the absolute filesystem location.
	Path string
	// Rel is the path relative to its source root (content/, static/, ...),
	// always slash-separated.
	Rel string
	// Ext is the lowercase file extension including the dot.
	Ext string
	// ModTime is the source modification time.
	ModTime time.Time
}
