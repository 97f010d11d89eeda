//go:build !ebiten

// Package ui provides the in-window parameter panel and brush overlay. The
// real implementations require the ebiten build tag; these placeholders keep
// the package compiling for headless builds.
package ui

// DefaultPanelWidth is the pixel width reserved for the parameter panel.
const DefaultPanelWidth = 230
