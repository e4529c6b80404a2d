// SPDX-License-Identifier: EPL-2.0

package sonification

import "errors"

var (
	// ErrInvalidDuration is returned for negative or non-finite durations.
	ErrInvalidDuration = errors.New("invalid sonification duration")

	// ErrNoName is returned by Render when neither a name nor a path is set.
	ErrNoName = errors.New("sonification has no name")
)
