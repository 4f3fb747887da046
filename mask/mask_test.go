package mask

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/led-swarm/core"
)

func TestThemeParkWaitsLayout(t *testing.T) {
	pixels := ThemeParkWaits().TargetPixels()

	if pixels.Len() != 507 {
		t.Errorf("Expected 507 target pixels, got %d", pixels.Len())
	}
	for p := range pixels {
		if !p.In(64, 32) {
			t.Errorf("Pixel %v outside 64x32", p)
		}
	}

	for _, p := range []core.Point{{4, 3}, {59, 10}, {58, 30}, {6, 10}, {5, 15}, {31, 22}} {
		if !pixels.Has(p) {
			t.Errorf("Expected %v in banner", p)
		}
	}
	for _, p := range []core.Point{{0, 0}, {63, 31}, {20, 12}, {9, 15}} {
		if pixels.Has(p) {
			t.Errorf("Expected %v to be dark", p)
		}
	}
}

func TestThemeParkWaitsFreshCopies(t *testing.T) {
	p := ThemeParkWaits()
	a := p.TargetPixels()
	a.Add(core.Point{0, 0})
	if p.TargetPixels().Has(core.Point{0, 0}) {
		t.Error("Mutating one result leaked into the next")
	}
}

func TestStaticIsCopied(t *testing.T) {
	src := core.NewPointSet(core.Point{1, 1})
	s := Static(src)
	got := s.TargetPixels()
	got.Add(core.Point{2, 2})
	if src.Has(core.Point{2, 2}) {
		t.Error("Static leaked mutation into source set")
	}
}

func TestTransformChain(t *testing.T) {
	src := Static(core.NewPointSet(core.Point{0, 0}, core.Point{62, 5}, core.Point{10, 10}))

	got := Transform(src).Translate(2, 1).Clip(64, 32).TargetPixels()

	want := core.NewPointSet(core.Point{2, 1}, core.Point{12, 11})
	if got.Len() != want.Len() || !got.SubsetOf(want) {
		t.Errorf("Transform result = %v, want %v", got.Sorted(), want.Sorted())
	}
}

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{0, 0, 0, 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestImageProviderThreshold(t *testing.T) {
	img := checker(4, 4)
	img.Set(1, 0, color.NRGBA{0, 0, 0, 0}) // transparent, never a target

	p := NewImageProvider(img, ImageConfig{Width: 4, Height: 4, Threshold: 0.5})
	got := p.TargetPixels()
	if got.Len() != 8 {
		t.Errorf("Expected 8 lit pixels, got %d", got.Len())
	}
	if !got.Has(core.Point{0, 0}) || got.Has(core.Point{1, 0}) {
		t.Error("Unexpected checker sampling")
	}

	inv := NewImageProvider(img, ImageConfig{Width: 4, Height: 4, Threshold: 0.5, Invert: true})
	if got := inv.TargetPixels(); got.Len() != 7 {
		t.Errorf("Expected 7 inverted pixels (transparent excluded), got %d", got.Len())
	}
}

func TestImageProviderClipsWithoutScaling(t *testing.T) {
	// 8x8 image offset at (10,20), white where x < 2, sampled onto a 6x3 matrix
	img := image.NewNRGBA(image.Rect(10, 20, 18, 28))
	for y := 20; y < 28; y++ {
		for x := 10; x < 18; x++ {
			c := color.NRGBA{0, 0, 0, 255}
			if x < 12 {
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}

	got := NewImageProvider(img, ImageConfig{Width: 6, Height: 3, Threshold: 0.5}).TargetPixels()
	want := core.NewPointSet(
		core.Point{0, 0}, core.Point{1, 0},
		core.Point{0, 1}, core.Point{1, 1},
		core.Point{0, 2}, core.Point{1, 2},
	)
	if got.Len() != want.Len() || !got.SubsetOf(want) {
		t.Errorf("Clipped = %v, want %v", got.Sorted(), want.Sorted())
	}
}

func TestImageProviderSmallImageStaysSmall(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	got := NewImageProvider(img, ImageConfig{Width: 64, Height: 32, Threshold: 0.5}).TargetPixels()
	if got.Len() != 4 || got.Has(core.Point{2, 0}) || got.Has(core.Point{63, 31}) {
		t.Errorf("Expected only the 2x2 image pixels, got %v", got.Sorted())
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create png: %v", err)
	}
	if err := png.Encode(f, checker(2, 2)); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("Unexpected width %d", img.Bounds().Dx())
	}

	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
