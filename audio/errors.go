// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrFormatMismatch is returned when a source does not match the rate
	// or channel layout a stage requires.
	ErrFormatMismatch = errors.New("source format mismatch")
)
