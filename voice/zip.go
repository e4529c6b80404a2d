// SPDX-License-Identifier: EPL-2.0

package voice

import "github.com/ik5/sonify/synth"

// Series holds per-voice values produced by the mapping layer. Each
// non-empty series supplies one value per voice; an empty series leaves the
// template value in place.
type Series struct {
	Frequency []float64
	Offset    []float64
	Balance   []float64
	Amplitude []float64
}

type namedSeries struct {
	name   string
	values []float64
	set    func(*Params, float64)
}

func (s Series) fields() []namedSeries {
	return []namedSeries{
		{"frequency", s.Frequency, func(p *Params, v float64) { p.Frequency = v }},
		{"offset", s.Offset, func(p *Params, v float64) { p.Offset = v }},
		{"balance", s.Balance, func(p *Params, v float64) { p.Balance = v }},
		{"amplitude", s.Amplitude, func(p *Params, v float64) { p.Amplitude = v }},
	}
}

// Len returns the number of voices the series describe, or a
// *ParameterError when the non-empty series differ in length.
func (s Series) Len() (int, error) {
	var (
		ref  string
		want = -1
	)

	for _, f := range s.fields() {
		if len(f.values) == 0 {
			continue
		}
		if want < 0 {
			ref, want = f.name, len(f.values)
			continue
		}
		if len(f.values) != want {
			return 0, &ParameterError{Field: f.name, Length: len(f.values), Reference: ref, Want: want}
		}
	}

	return max(want, 0), nil
}

// Zip builds one voice per position of the series, starting each from
// template. All lengths are checked before any voice is built; a voice
// failing validation aborts the whole batch.
func Zip(cfg synth.Config, template Params, s Series) ([]Voice, error) {
	n, err := s.Len()
	if err != nil {
		return nil, err
	}

	fields := s.fields()
	voices := make([]Voice, 0, n)
	for i := range n {
		p := template
		for _, f := range fields {
			if len(f.values) > 0 {
				f.set(&p, f.values[i])
			}
		}

		v, err := New(cfg, p)
		if err != nil {
			return nil, err
		}
		voices = append(voices, v)
	}

	return voices, nil
}
