package ftracker

import "embed"

// Content holds the default configuration
//
//go:embed etc/packages.json
var Content embed.FS
