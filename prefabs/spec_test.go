package prefabs

import (
	"strings"
	"testing"

	"github.com/ProfMYK/game/component"
)

func TestLoadHeroSpec(t *testing.T) {
	spec, err := LoadHeroSpec()
	if err != nil {
		t.Fatalf("LoadHeroSpec: %v", err)
	}

	if spec.Speed != 2.0 {
		t.Fatalf("expected speed 2.0, got %g", spec.Speed)
	}
	if len(spec.Animations) != 8 {
		t.Fatalf("expected 8 animation defs, got %d", len(spec.Animations))
	}

	seen := make(map[component.AnimationKey]bool)
	for _, a := range spec.Animations {
		key, err := a.Key()
		if err != nil {
			t.Fatalf("animation key: %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate animation key %s", key)
		}
		seen[key] = true
		if a.FrameCount != 8 {
			t.Errorf("animation %s: expected frame_count 8, got %d", key, a.FrameCount)
		}
		if a.FPS != 20 {
			t.Errorf("animation %s: expected fps 20, got %d", key, a.FPS)
		}
		if !strings.HasPrefix(a.Sheet, "resources/Hero/Sprites/") {
			t.Errorf("animation %s: unexpected sheet path %s", key, a.Sheet)
		}
	}

	// every mode × direction pair present
	for _, m := range []component.Mode{component.ModeIdle, component.ModeRun} {
		for d := component.Direction(0); d < component.DirCount; d++ {
			key := component.AnimationKey{Mode: m, Direction: d}
			if !seen[key] {
				t.Errorf("missing animation %s", key)
			}
		}
	}
}

func TestAnimationSpecKeyErrors(t *testing.T) {
	cases := []struct {
		name string
		spec AnimationSpec
	}{
		{"bad_mode", AnimationSpec{Mode: "walk", Direction: "up"}},
		{"bad_direction", AnimationSpec{Mode: "idle", Direction: "sideways"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.spec.Key(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestHeroSpecValidate(t *testing.T) {
	valid := func() HeroSpec {
		return HeroSpec{
			Speed: 2,
			Animations: []AnimationSpec{
				{Mode: "idle", Direction: "down", Sheet: "a.png", FrameCount: 8, FPS: 20},
			},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*HeroSpec)
		wantErr string
	}{
		{"valid", func(s *HeroSpec) {}, ""},
		{"zero_speed", func(s *HeroSpec) { s.Speed = 0 }, "speed"},
		{"no_animations", func(s *HeroSpec) { s.Animations = nil }, "no animations"},
		{"missing_sheet", func(s *HeroSpec) { s.Animations[0].Sheet = "" }, "no sheet"},
		{"zero_frames", func(s *HeroSpec) { s.Animations[0].FrameCount = 0 }, "frame_count"},
		{"duplicate_key", func(s *HeroSpec) {
			s.Animations = append(s.Animations, s.Animations[0])
		}, "defined by both"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := valid()
			c.mutate(&spec)
			err := spec.validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid spec, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[HeroSpec]("nope.yaml"); err == nil {
		t.Fatal("expected error for missing prefab file")
	}
}
