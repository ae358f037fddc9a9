package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ProfMYK/game/assets"
	"github.com/ProfMYK/game/component"
	"github.com/ProfMYK/game/prefabs"
)

// inputState is what the player needs to know about the current tick's input.
type inputState interface {
	Held(component.Direction) bool
	Released(component.Direction) bool
}

// moveOrder is the fixed order directions are processed in. When several
// keys are held at once the last processed one decides the run animation.
var moveOrder = [...]component.Direction{
	component.DirLeft,
	component.DirRight,
	component.DirDown,
	component.DirUp,
}

type Player struct {
	// Collision is declared for the hero but nothing consults it yet.
	Collision Rect
	X, Y      float64
	Speed     float64

	animations map[component.AnimationKey]*component.Animation
	current    component.AnimationKey
}

// NewPlayer builds the hero from its prefab spec, loading every sprite
// sheet up front. A missing or unreadable sheet fails construction.
func NewPlayer(spec *prefabs.HeroSpec) (*Player, error) {
	p := &Player{
		X:       spec.Spawn.X,
		Y:       spec.Spawn.Y,
		current: component.Idle(component.DirDown),
	}
	if err := p.ApplySpec(spec); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplySpec rebuilds the animation set, speed and collision box from a hero
// spec while keeping position and the active animation. Used both at
// startup and when the prefab or a sheet changes on disk.
func (p *Player) ApplySpec(spec *prefabs.HeroSpec) error {
	anims := make(map[component.AnimationKey]*component.Animation, len(spec.Animations))
	for _, def := range spec.Animations {
		key, err := def.Key()
		if err != nil {
			return fmt.Errorf("player: %w", err)
		}
		sheet, err := assets.LoadImage(def.Sheet)
		if err != nil {
			return fmt.Errorf("player: animation %s: %w", key, err)
		}
		anims[key] = component.NewAnimation(sheet, def.FrameCount, def.FPS, true)
	}
	p.Speed = spec.Speed
	p.Collision = Rect{
		X:      spec.Collision.X,
		Y:      spec.Collision.Y,
		Width:  spec.Collision.Width,
		Height: spec.Collision.Height,
	}
	p.animations = anims
	return nil
}

// AddAnimation registers an animation cycle under a key.
func (p *Player) AddAnimation(key component.AnimationKey, anim *component.Animation) {
	if p.animations == nil {
		p.animations = make(map[component.AnimationKey]*component.Animation)
	}
	p.animations[key] = anim
}

// SetAnimation switches the active animation. The key is not checked here;
// Update and Draw report a missing key as an error.
func (p *Player) SetAnimation(key component.AnimationKey) {
	p.current = key
}

// Animation returns the active animation key.
func (p *Player) Animation() component.AnimationKey {
	return p.current
}

// Move shifts the hero by its speed along dir's axis and selects the run
// animation for that direction.
func (p *Player) Move(dir component.Direction) {
	switch dir {
	case component.DirUp:
		p.Y -= p.Speed
	case component.DirDown:
		p.Y += p.Speed
	case component.DirRight:
		p.X += p.Speed
	case component.DirLeft:
		p.X -= p.Speed
	}
	p.SetAnimation(component.Run(dir))
}

// HandleInput applies one tick of input: held directions move the hero,
// releases drop back to that direction's idle cycle.
func (p *Player) HandleInput(in inputState) {
	for _, dir := range moveOrder {
		if in.Held(dir) {
			p.Move(dir)
		}
	}
	for _, dir := range moveOrder {
		if in.Released(dir) {
			p.SetAnimation(component.Idle(dir))
		}
	}
}

// Update advances the active animation by one tick.
func (p *Player) Update() error {
	anim, ok := p.animations[p.current]
	if !ok {
		return fmt.Errorf("player: no %s animation registered", p.current)
	}
	anim.Update()
	return nil
}

// Draw renders the active animation's current frame at the hero's position.
func (p *Player) Draw(screen *ebiten.Image) error {
	anim, ok := p.animations[p.current]
	if !ok {
		return fmt.Errorf("player: no %s animation registered", p.current)
	}
	anim.Draw(screen, p.X, p.Y)
	return nil
}
