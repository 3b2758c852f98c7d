package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rankreel/types"
)

// Format fixes the canvas and duration parameters for one video
// product line. Formats are explicit values threaded through the
// pipeline, never ambient globals, so multiple aspect ratios or
// durations can coexist in one process.
type Format struct {
	Name           string `yaml:"name"`
	FPS            int    `yaml:"fps"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	TotalFrames    int    `yaml:"total_frames"`
	MaxTotalFrames int    `yaml:"max_total_frames"`

	IntroFrames       int `yaml:"intro_frames"`
	ProductFrames     int `yaml:"product_frames"`
	OutroFrames       int `yaml:"outro_frames"`
	TransitionOverlap int `yaml:"transition_overlap"`
}

// Budget returns the frame budget described by the format.
func (f Format) Budget() types.TimelineBudget {
	return types.TimelineBudget{
		IntroFrames:       f.IntroFrames,
		ProductFrames:     f.ProductFrames,
		OutroFrames:       f.OutroFrames,
		TransitionOverlap: f.TransitionOverlap,
	}
}

// Meta returns the canvas parameters described by the format.
func (f Format) Meta() types.Meta {
	return types.Meta{
		FPS:            f.FPS,
		Width:          f.Width,
		Height:         f.Height,
		MaxTotalFrames: f.MaxTotalFrames,
	}
}

// DefaultFormat is the 55-second portrait countdown: 5s intro, five 9s
// product scenes, 5s outro at 30 fps = 1650 frames.
func DefaultFormat() Format {
	return Format{
		Name:              "portrait-55s",
		FPS:               30,
		Width:             1080,
		Height:            1920,
		TotalFrames:       1650,
		MaxTotalFrames:    1800,
		IntroFrames:       150,
		ProductFrames:     270,
		OutroFrames:       150,
		TransitionOverlap: 12,
	}
}

// Validate catches profile mistakes at startup rather than per job.
func (f Format) Validate() error {
	if f.FPS <= 0 {
		return fmt.Errorf("format %q: fps must be positive", f.Name)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("format %q: canvas dimensions must be positive", f.Name)
	}
	if sum := f.Budget().TotalFrames(); sum != f.TotalFrames {
		return fmt.Errorf("format %q: budget sums to %d frames, total_frames is %d",
			f.Name, sum, f.TotalFrames)
	}
	if f.TotalFrames > f.MaxTotalFrames {
		return fmt.Errorf("format %q: total_frames %d exceeds max_total_frames %d",
			f.Name, f.TotalFrames, f.MaxTotalFrames)
	}
	return nil
}

type formatFile struct {
	Formats []Format `yaml:"formats"`
}

// LoadFormats reads a YAML profile file and returns formats keyed by
// name. Every profile is validated up front.
func LoadFormats(path string) (map[string]Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read format profiles: %w", err)
	}

	var file formatFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse format profiles: %w", err)
	}

	formats := make(map[string]Format, len(file.Formats))
	for _, f := range file.Formats {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := formats[f.Name]; dup {
			return nil, fmt.Errorf("format %q defined twice", f.Name)
		}
		formats[f.Name] = f
	}

	if len(formats) == 0 {
		return nil, fmt.Errorf("format profiles %s define no formats", path)
	}

	return formats, nil
}
