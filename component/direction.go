package component

import "fmt"

// Direction is one of the four cardinal facings the hero can move in.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	DirCount
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection maps a prefab string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("component: unknown direction %q", s)
}

// Mode says whether the hero is standing still or moving.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRun
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRun:
		return "run"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a prefab string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "idle":
		return ModeIdle, nil
	case "run":
		return ModeRun, nil
	}
	return 0, fmt.Errorf("component: unknown mode %q", s)
}

// AnimationKey selects one of the hero's eight animation cycles.
type AnimationKey struct {
	Mode      Mode
	Direction Direction
}

// Idle returns the idle animation key for a direction.
func Idle(d Direction) AnimationKey {
	return AnimationKey{Mode: ModeIdle, Direction: d}
}

// Run returns the run animation key for a direction.
func Run(d Direction) AnimationKey {
	return AnimationKey{Mode: ModeRun, Direction: d}
}

func (k AnimationKey) String() string {
	return k.Mode.String() + "_" + k.Direction.String()
}
