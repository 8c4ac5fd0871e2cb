//go:build !cgo

package hal

import "fmt"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	Scale  int
}

// RunWindow is unavailable without cgo; use RunHeadless.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	return fmt.Errorf("%w: window requires cgo, run with -headless", ErrNotImplemented)
}
