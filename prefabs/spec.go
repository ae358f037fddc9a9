package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ProfMYK/game/component"
)

// HeroSpec is the yaml definition of the hero: spawn point, move speed,
// the (currently unused) collision box and the full animation set.
type HeroSpec struct {
	Name       string          `yaml:"name"`
	Speed      float64         `yaml:"speed"`
	Spawn      PointSpec       `yaml:"spawn"`
	Collision  RectSpec        `yaml:"collision"`
	Animations []AnimationSpec `yaml:"animations"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnimationSpec describes one animation cycle: which mode/direction it
// belongs to, the sheet holding its frames and the playback rate.
type AnimationSpec struct {
	Mode       string `yaml:"mode"`
	Direction  string `yaml:"direction"`
	Sheet      string `yaml:"sheet"`
	FrameCount int    `yaml:"frame_count"`
	FPS        int    `yaml:"fps"`
}

// Key resolves the spec's mode/direction strings to an animation key.
func (s AnimationSpec) Key() (component.AnimationKey, error) {
	mode, err := component.ParseMode(s.Mode)
	if err != nil {
		return component.AnimationKey{}, err
	}
	dir, err := component.ParseDirection(s.Direction)
	if err != nil {
		return component.AnimationKey{}, err
	}
	return component.AnimationKey{Mode: mode, Direction: dir}, nil
}

// LoadSpec loads and unmarshals a yaml prefab file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadHeroSpec loads and validates hero.yaml.
func LoadHeroSpec() (*HeroSpec, error) {
	spec, err := LoadSpec[HeroSpec]("hero.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: hero.yaml: %w", err)
	}
	return &spec, nil
}

func (s *HeroSpec) validate() error {
	if s.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", s.Speed)
	}
	if len(s.Animations) == 0 {
		return fmt.Errorf("no animations defined")
	}
	seen := make(map[component.AnimationKey]string, len(s.Animations))
	for _, a := range s.Animations {
		key, err := a.Key()
		if err != nil {
			return err
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("animation %s defined by both %s and %s", key, prev, a.Sheet)
		}
		seen[key] = a.Sheet
		if a.Sheet == "" {
			return fmt.Errorf("animation %s has no sheet", key)
		}
		if a.FrameCount <= 0 {
			return fmt.Errorf("animation %s has frame_count %d", key, a.FrameCount)
		}
	}
	return nil
}
