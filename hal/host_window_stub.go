//go:build !cgo

package hal

import "errors"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title      string
	Fullscreen bool
	TPS        int
}

func RunWindow(_ Options, _ WindowConfig, _ func(HAL) (App, error)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
