// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strings"
)

// MaxBalance bounds the pan angle on both sides. Balance -MaxBalance is
// fully right, +MaxBalance fully left.
const MaxBalance = math.Pi / 4

// Gains is a pair of per-channel multipliers.
type Gains struct {
	Left  float64
	Right float64
}

// Pan applies the constant-power pan law to a balance angle. Angles beyond
// ±MaxBalance are clamped.
func Pan(balance float64) Gains {
	balance = max(-MaxBalance, min(MaxBalance, balance))
	c, s := math.Cos(balance), math.Sin(balance)

	return Gains{
		Left:  math.Sqrt2 / 2 * (c + s),
		Right: math.Sqrt2 / 2 * (c - s),
	}
}

// Placement is a fixed pan position that overrides the balance angle.
type Placement uint8

const (
	HardLeft Placement = iota + 1
	Center
	HardRight
)

// Gains returns the channel gains of p.
func (p Placement) Gains() Gains {
	switch p {
	case HardLeft:
		return Gains{Left: 1}
	case HardRight:
		return Gains{Right: 1}
	default:
		return Pan(0)
	}
}

func (p Placement) String() string {
	switch p {
	case HardLeft:
		return "left"
	case Center:
		return "center"
	case HardRight:
		return "right"
	default:
		return "unplaced"
	}
}

// ParsePlacement resolves "left", "center" or "right", case-insensitively.
func ParsePlacement(name string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return HardLeft, nil
	case "center", "centre":
		return Center, nil
	case "right":
		return HardRight, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPlacement, name)
}
