// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample-level helpers shared by the synthesis,
// mixing and codec packages: saturation, PCM conversion and interpolation.
//
// Saturation is lossy on purpose. Clamp never rescales, it cuts.
package utils
