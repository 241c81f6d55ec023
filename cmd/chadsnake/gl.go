//go:build gl

package main

// Register the OpenGL window host.
import _ "github.com/vovakirdan/chad-snake/internal/platform/window"
