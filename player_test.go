package main

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ProfMYK/game/component"
	"github.com/ProfMYK/game/prefabs"
)

type fakeInput struct {
	held     map[component.Direction]bool
	released map[component.Direction]bool
}

func (f fakeInput) Held(d component.Direction) bool     { return f.held[d] }
func (f fakeInput) Released(d component.Direction) bool { return f.released[d] }

func TestPlayerMove(t *testing.T) {
	cases := []struct {
		dir    component.Direction
		dx, dy float64
	}{
		{component.DirUp, 0, -2},
		{component.DirDown, 0, 2},
		{component.DirLeft, -2, 0},
		{component.DirRight, 2, 0},
	}

	for _, c := range cases {
		t.Run(c.dir.String(), func(t *testing.T) {
			p := &Player{Speed: 2, X: 10, Y: 20}
			p.SetAnimation(component.Idle(component.DirDown))

			p.Move(c.dir)

			if p.X != 10+c.dx || p.Y != 20+c.dy {
				t.Fatalf("expected position (%g, %g), got (%g, %g)", 10+c.dx, 20+c.dy, p.X, p.Y)
			}
			if p.Animation() != component.Run(c.dir) {
				t.Fatalf("expected animation %s, got %s", component.Run(c.dir), p.Animation())
			}
		})
	}
}

func TestPlayerHandleInputHeld(t *testing.T) {
	p := &Player{Speed: 2}
	p.HandleInput(fakeInput{held: map[component.Direction]bool{component.DirRight: true}})

	if p.X != 2 || p.Y != 0 {
		t.Fatalf("expected position (2, 0), got (%g, %g)", p.X, p.Y)
	}
	if p.Animation() != component.Run(component.DirRight) {
		t.Fatalf("expected run_right, got %s", p.Animation())
	}
}

func TestPlayerHandleInputReleaseWinsOverOtherHeldKeys(t *testing.T) {
	// Releasing a direction drops to that direction's idle even while
	// another key is still held; releases are processed after moves.
	p := &Player{Speed: 2}
	p.HandleInput(fakeInput{
		held:     map[component.Direction]bool{component.DirRight: true},
		released: map[component.Direction]bool{component.DirLeft: true},
	})

	if p.X != 2 {
		t.Fatalf("held right should still move: expected X=2, got %g", p.X)
	}
	if p.Animation() != component.Idle(component.DirLeft) {
		t.Fatalf("expected idle_left after release, got %s", p.Animation())
	}
}

func TestPlayerSimultaneousHeldLastDirectionWins(t *testing.T) {
	p := &Player{Speed: 2}
	p.HandleInput(fakeInput{held: map[component.Direction]bool{
		component.DirLeft: true,
		component.DirUp:   true,
	}})

	// Fixed processing order: left, right, down, up — up is handled last.
	if p.Animation() != component.Run(component.DirUp) {
		t.Fatalf("expected run_up to win, got %s", p.Animation())
	}
	if p.X != -2 || p.Y != -2 {
		t.Fatalf("both held directions should move: got (%g, %g)", p.X, p.Y)
	}
}

func TestPlayerMissingAnimationErrors(t *testing.T) {
	p := &Player{Speed: 2}
	p.SetAnimation(component.Idle(component.DirDown))

	err := p.Update()
	if err == nil {
		t.Fatal("expected Update to fail for unregistered animation")
	}
	if !strings.Contains(err.Error(), "idle_down") {
		t.Fatalf("expected error to name the missing key, got %q", err)
	}

	screen := ebiten.NewImage(64, 64)
	if err := p.Draw(screen); err == nil {
		t.Fatal("expected Draw to fail for unregistered animation")
	}
}

func TestPlayerUpdateAdvancesActiveAnimation(t *testing.T) {
	p := &Player{Speed: 2}
	key := component.Idle(component.DirDown)
	anim := component.NewAnimation(ebiten.NewImage(128, 24), 8, 20, true)
	p.AddAnimation(key, anim)
	p.SetAnimation(key)

	for i := 0; i < 3; i++ {
		if err := p.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if anim.Frame() != 1 {
		t.Fatalf("expected active animation on frame 1 after 3 updates, got %d", anim.Frame())
	}
}

func TestNewPlayerFromHeroSpec(t *testing.T) {
	spec, err := prefabs.LoadHeroSpec()
	if err != nil {
		t.Fatalf("LoadHeroSpec: %v", err)
	}

	p, err := NewPlayer(spec)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	if len(p.animations) != 8 {
		t.Fatalf("expected 8 animations, got %d", len(p.animations))
	}
	if p.Speed != 2.0 {
		t.Fatalf("expected speed 2.0, got %g", p.Speed)
	}
	if p.Animation() != component.Idle(component.DirDown) {
		t.Fatalf("expected initial animation idle_down, got %s", p.Animation())
	}
	if p.Collision.Width != 12 || p.Collision.Height != 28 {
		t.Fatalf("expected 12x28 collision box, got %gx%g", p.Collision.Width, p.Collision.Height)
	}
	if err := p.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}
