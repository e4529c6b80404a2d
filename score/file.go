// SPDX-License-Identifier: EPL-2.0

package score

// File is the YAML layout of a score.
type File struct {
	Name string `yaml:"name"`
	// Duration in seconds. When omitted it is the end of the last bounded
	// voice.
	Duration *float64     `yaml:"duration"`
	Invert   bool         `yaml:"invert"`
	Voices   []VoiceSpec  `yaml:"voices"`
	Series   []SeriesSpec `yaml:"series"`
	// Layers are other score files, relative to this one, united into it.
	Layers []string `yaml:"layers"`
}

// VoiceSpec describes one voice. Track selects a file-backed voice, in
// which case Shape and Frequency are ignored.
type VoiceSpec struct {
	Shape     string   `yaml:"shape"`
	Frequency *float64 `yaml:"frequency"`
	Amplitude *float64 `yaml:"amplitude"`
	Offset    float64  `yaml:"offset"`
	Balance   float64  `yaml:"balance"`
	Pan       string   `yaml:"pan"`
	Duration  float64  `yaml:"duration"`
	Envelope  bool     `yaml:"envelope"`
	Track     string   `yaml:"track"`
}

// SeriesSpec zips parallel value lists into voices sharing the other
// fields.
type SeriesSpec struct {
	Shape     string    `yaml:"shape"`
	Pan       string    `yaml:"pan"`
	Duration  float64   `yaml:"duration"`
	Envelope  bool      `yaml:"envelope"`
	Frequency []float64 `yaml:"frequency"`
	Offset    []float64 `yaml:"offset"`
	Balance   []float64 `yaml:"balance"`
	Amplitude []float64 `yaml:"amplitude"`
}
