package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed resources
var resourcesFS embed.FS

// LoadImage loads a sprite sheet by resources-relative path, e.g.
// "resources/Hero/Sprites/IDLE/idle_down.png". Loose files on disk take
// precedence over the embedded copies so sheets can be edited without
// rebuilding.
func LoadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("assets: empty image path")
	}
	for _, p := range []string{path, filepath.Join("assets", path)} {
		if b, err := os.ReadFile(p); err == nil {
			return decodeImage(p, b)
		}
	}
	b, err := resourcesFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return decodeImage(path, b)
}

func decodeImage(path string, b []byte) (*ebiten.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
