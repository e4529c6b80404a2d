// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrEncoderClosed is returned when writing to a finalized Encoder.
	ErrEncoderClosed = errors.New("wav encoder closed")
)
