package mask

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/led-swarm/core"
)

// ImageConfig controls image-to-mask conversion
type ImageConfig struct {
	// Width and Height clip the image; pixel (x,y) maps to LED (x,y)
	Width, Height int
	// Threshold is the minimum CIE L* lightness, in [0,1], for a pixel to become a target
	Threshold float64
	// Invert selects dark pixels instead of light ones
	Invert bool
}

// ImageProvider samples a decoded image into target pixels
type ImageProvider struct {
	img image.Image
	cfg ImageConfig
}

// LoadImage decodes a PNG, GIF or JPEG file
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mask image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode mask image %s: %w", path, err)
	}
	return img, nil
}

// NewImageProvider wraps img; nothing is sampled until TargetPixels
func NewImageProvider(img image.Image, cfg ImageConfig) *ImageProvider {
	return &ImageProvider{img: img, cfg: cfg}
}

// TargetPixels maps image pixels 1:1 onto LEDs, clipped to Width×Height
// Fully transparent pixels are never targets
func (p *ImageProvider) TargetPixels() core.PointSet {
	s := core.NewPointSet()
	if p.img == nil {
		return s
	}

	bounds := p.img.Bounds()
	w := min(bounds.Dx(), p.cfg.Width)
	h := min(bounds.Dy(), p.cfg.Height)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := p.img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if _, _, _, a := src.RGBA(); a == 0 {
				continue
			}
			c, _ := colorful.MakeColor(src)
			l, _, _ := c.Lab()
			lit := l >= p.cfg.Threshold
			if p.cfg.Invert {
				lit = !lit
			}
			if lit {
				s.Add(core.Point{X: x, Y: y})
			}
		}
	}
	return s
}
