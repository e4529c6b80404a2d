// SPDX-License-Identifier: EPL-2.0

package score

import "errors"

var (
	// ErrLayerCycle is returned when a score includes itself through its
	// layers.
	ErrLayerCycle = errors.New("score layers form a cycle")

	// ErrNoDecoder is returned for a track whose extension has no decoder.
	ErrNoDecoder = errors.New("no decoder for track")

	// ErrMissingDuration is returned when a score without a duration holds
	// an unbounded voice.
	ErrMissingDuration = errors.New("score needs a duration")
)
