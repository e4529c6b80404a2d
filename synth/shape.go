// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strings"
)

// Shape selects a waveform.
type Shape uint8

const (
	Sine Shape = iota
	Square
	Saw
	Heart
	Funnel

	shapeCount
)

var shapeNames = [shapeCount]string{
	Sine:   "sine",
	Square: "square",
	Saw:    "saw",
	Heart:  "heart",
	Funnel: "funnel",
}

// Shapes returns every supported shape in declaration order.
func Shapes() []Shape {
	return []Shape{Sine, Square, Saw, Heart, Funnel}
}

// ParseShape resolves a case-insensitive shape name.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for s, n := range shapeNames {
		if n == name {
			return Shape(s), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Valid reports whether s is one of the declared shapes.
func (s Shape) Valid() bool { return s < shapeCount }

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}

	return shapeNames[s]
}

// Stride is the harmonic spacing m of the partial sum that approximates s:
// only harmonics m*k+1 are present. Sine has no partial sum and returns 0.
func (s Shape) Stride() int {
	switch s {
	case Saw:
		return 1
	case Square:
		return 2
	case Heart:
		return 3
	case Funnel:
		return 4
	default:
		return 0
	}
}

func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
	}

	return []byte(shapeNames[s]), nil
}

func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
