package main

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ProfMYK/game/common"
	"github.com/ProfMYK/game/prefabs"
)

var backgroundColor = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}

type Game struct {
	debug  bool
	frames int

	input  *Input
	player *Player

	paused  bool
	pauseUI *ebitenui.UI

	watcher *prefabs.Watcher
	// drawErr latches a draw-time failure so the next Update can surface it;
	// ebiten's Draw has no error return.
	drawErr error
}

func NewGame(debug bool) (*Game, error) {
	spec, err := prefabs.LoadHeroSpec()
	if err != nil {
		return nil, err
	}

	player, err := NewPlayer(spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  debug,
		input:  NewInput(),
		player: player,
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		g.startWatcher()
	}
	return g, nil
}

// startWatcher begins watching loose prefab and sprite files on disk. Hot
// reload is best-effort; failure to watch just logs and the game runs on.
func (g *Game) startWatcher() {
	dirs := watchDirs()
	if len(dirs) == 0 {
		log.Printf("hot reload: no loose prefab or sprite dirs found on disk")
		return
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("hot reload: watch: %v", err)
		return
	}
	g.watcher = w
}

// watchDirs collects the on-disk directories that can shadow embedded
// content: prefabs/ and any sprite directory under the resource roots.
func watchDirs() []string {
	var dirs []string
	if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
		dirs = append(dirs, "prefabs")
	}
	for _, root := range []string{"resources", filepath.Join("assets", "resources")} {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				dirs = append(dirs, path)
			}
			return nil
		})
	}
	return dirs
}

func (g *Game) Update() error {
	g.frames++

	if g.drawErr != nil {
		return g.drawErr
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollReload()

	g.input.Update()
	g.player.HandleInput(g.input)

	return g.player.Update()
}

// pollReload drains pending watcher events and rebuilds the hero once if
// anything changed. Never blocks the update loop.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed := ""
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = path
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("hot reload: %v", err)
		default:
			if changed == "" {
				return
			}
			spec, err := prefabs.LoadHeroSpec()
			if err != nil {
				log.Printf("hot reload: %v", err)
				return
			}
			if err := g.player.ApplySpec(spec); err != nil {
				log.Printf("hot reload: %v", err)
				return
			}
			log.Printf("hot reload: rebuilt hero after change to %s", changed)
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if err := g.player.Draw(screen); err != nil && g.drawErr == nil {
		g.drawErr = err
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"TPS: %.1f  FPS: %.1f  anim: %s  pos: (%.0f, %.0f)",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			g.player.Animation(), g.player.X, g.player.Y,
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
