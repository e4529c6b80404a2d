// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrUnknownShape is returned when a waveform name is not one of the
	// supported shapes.
	ErrUnknownShape = errors.New("unknown waveform shape")

	ErrUnknownPlacement = errors.New("unknown pan placement")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid synthesis config")
)
