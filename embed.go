package blog

import "embed"

// EmbeddedAssets contains the static files served next to every page:
// style.css and favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
