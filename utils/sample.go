// SPDX-License-Identifier: EPL-2.0

package utils

const (
	// Int16Scale maps a full-scale float sample onto the positive int16 range.
	Int16Scale = 32767.0

	// int16Norm maps an int16 sample back onto [-1, 1).
	int16Norm = 32768.0
)

// Clamp saturates x to [-1, 1]. Values outside the range are cut, not
// rescaled, so loud input distorts instead of being attenuated.
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}

	return x
}

// Clamp32 is Clamp for float32 samples.
func Clamp32(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}

	return x
}

// Float32ToInt16 clamps x and scales it by 32767, truncating toward zero.
func Float32ToInt16(x float32) int16 {
	return int16(Clamp32(x) * Int16Scale)
}

// Int16ToFloat32 converts a signed 16-bit PCM sample to a float in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / int16Norm
}

// IntToFloat32 normalizes a PCM sample of the given bit depth to [-1, 1).
// Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var full float32

	switch bitDepth {
	case 8:
		full = 128.0
	case 24:
		full = 8388608.0
	case 32:
		full = 2147483648.0
	default:
		full = int16Norm
	}

	return float32(v) / full
}
