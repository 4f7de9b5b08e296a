//go:build !ebiten

package display

import "github.com/pkg/errors"

// ErrNoWindowSupport is returned by RunEbiten in builds without the ebiten tag
var ErrNoWindowSupport = errors.New("window driver requires building with the 'ebiten' tag")

// RunEbiten always fails in headless builds
func RunEbiten(Stepper, WindowOptions) error {
	return errors.WithStack(ErrNoWindowSupport)
}
