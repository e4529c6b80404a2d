// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams is returned when a voice parameter is out of range.
	ErrInvalidParams = errors.New("invalid voice parameters")

	// ErrParameterLength is returned by Zip when the parameter series do
	// not line up.
	ErrParameterLength = errors.New("parameter series differ in length")
)

// ParameterError names the first series whose length disagrees with the
// first non-empty one.
type ParameterError struct {
	Field     string
	Length    int
	Reference string
	Want      int
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s series has %d values, %s has %d", e.Field, e.Length, e.Reference, e.Want)
}

func (e *ParameterError) Unwrap() error { return ErrParameterLength }
