package component

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation provides a frame-based animator for a single-row spritesheet.
// Frames are equal-width and laid out left-to-right; the frame width is
// derived from the sheet width and the frame count.
type Animation struct {
	Sheet      *ebiten.Image
	FrameW     int
	FrameH     int
	FrameCount int
	FPS        int
	Loop       bool

	current     int
	tick        int
	ticksPerFrm int
	frames      []*ebiten.Image
}

// NewAnimation creates an Animation from a horizontal strip. `frameCount` is
// how many equal-width frames the sheet holds. `fps` is frames per second for
// the animation (defaults to 12 if <= 0); it is converted to a tick interval
// against the game's fixed update rate, so an animation at 20 fps advances
// every 3rd update at the default 60 TPS. `loop` controls whether the
// animation wraps back to the first frame.
func NewAnimation(sheet *ebiten.Image, frameCount, fps int, loop bool) *Animation {
	if sheet == nil || frameCount <= 0 {
		return &Animation{}
	}
	if fps <= 0 {
		fps = 12
	}
	bounds := sheet.Bounds()
	frameW := bounds.Dx() / frameCount
	if frameW <= 0 {
		return &Animation{}
	}
	ticks := int(math.Max(1, math.Round(float64(ebiten.TPS())/float64(fps))))
	a := &Animation{
		Sheet:       sheet,
		FrameW:      frameW,
		FrameH:      bounds.Dy(),
		FrameCount:  frameCount,
		FPS:         fps,
		Loop:        loop,
		ticksPerFrm: ticks,
	}
	a.buildFrames()
	return a
}

// buildFrames slices the sheet into individual *ebiten.Image frames.
func (a *Animation) buildFrames() {
	if a == nil || a.Sheet == nil || a.FrameCount <= 0 {
		return
	}
	min := a.Sheet.Bounds().Min
	a.frames = make([]*ebiten.Image, a.FrameCount)
	for i := 0; i < a.FrameCount; i++ {
		sx := min.X + i*a.FrameW
		r := image.Rect(sx, min.Y, sx+a.FrameW, min.Y+a.FrameH)
		a.frames[i] = a.Sheet.SubImage(r).(*ebiten.Image)
	}
}

// Update advances the animation according to the configured FPS. Call once
// per game update (typically 60 times per second).
func (a *Animation) Update() {
	if a == nil || a.Sheet == nil || a.FrameCount <= 1 {
		return
	}
	a.tick++
	if a.tick >= a.ticksPerFrm {
		a.tick = 0
		a.current++
		if a.current >= a.FrameCount {
			if a.Loop {
				a.current = 0
			} else {
				a.current = a.FrameCount - 1
			}
		}
	}
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
}

// Frame returns the current frame index.
func (a *Animation) Frame() int { return a.current }

// SetFrame jumps to a specific frame index.
func (a *Animation) SetFrame(i int) {
	if a == nil || a.FrameCount == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= a.FrameCount {
		i = a.FrameCount - 1
	}
	a.current = i
	a.tick = 0
}

// Draw draws the current frame at the given position.
func (a *Animation) Draw(screen *ebiten.Image, x, y float64) {
	if a == nil || a.Sheet == nil || a.FrameCount == 0 || len(a.frames) == 0 {
		return
	}
	fi := a.current % a.FrameCount
	if fi < 0 {
		fi = 0
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(x, y)
	screen.DrawImage(a.frames[fi], op)
}

// Size returns the frame width/height.
func (a *Animation) Size() (int, int) { return a.FrameW, a.FrameH }
