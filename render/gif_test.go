package render

import (
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/led-swarm/core"
)

func TestGIFRecorderStride(t *testing.T) {
	g := NewGIFRecorder(8, 4, 2, 3, 50*time.Millisecond)
	for i := 0; i < 7; i++ {
		g.Clear()
		g.SetPixel(i, 0, core.RGB{255, 0, 0})
		g.Present()
	}
	// Presents 1, 4 and 7 are kept
	if g.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", g.Frames())
	}
	// Present 7 was kept, so flush adds nothing
	g.Flush()
	if g.Frames() != 3 {
		t.Errorf("Expected 3 frames after flush of a kept present, got %d", g.Frames())
	}

	g.Present()
	g.Flush()
	g.Flush()
	if g.Frames() != 4 {
		t.Errorf("Expected 4 frames after flush of a skipped present, got %d", g.Frames())
	}
}

func TestGIFRecorderFlushKeepsFinalBlank(t *testing.T) {
	g := NewGIFRecorder(4, 4, 1, 1, 50*time.Millisecond)
	g.SetPixel(0, 0, core.RGB{255, 0, 0})
	g.Present()
	g.Clear()
	g.Present()
	g.Flush()

	if g.Frames() != 2 {
		t.Fatalf("Expected 2 frames, got %d", g.Frames())
	}
	last := g.anim.Image[1]
	if r, _, _, _ := last.At(0, 0).RGBA(); r != 0 {
		t.Errorf("Expected final frame blank, got red=%d", r>>8)
	}
}

func TestGIFRecorderSave(t *testing.T) {
	g := NewGIFRecorder(4, 4, 3, 1, 50*time.Millisecond)
	if err := g.Save(filepath.Join(t.TempDir(), "empty.gif")); err == nil {
		t.Error("Expected error saving with no frames")
	}

	g.SetPixel(1, 1, core.RGB{0, 255, 0})
	g.Present()
	g.Clear()
	g.Present()

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open gif: %v", err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("Failed to decode gif: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Errorf("Expected 2 frames, got %d", len(anim.Image))
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Errorf("Frame size = %v, want 12x12", b)
	}
	if anim.Delay[0] != 5 {
		t.Errorf("Delay = %d, want 5", anim.Delay[0])
	}

	// Lit LED covers a 3x3 block starting at (3,3)
	r, g2, b, _ := anim.Image[0].At(4, 4).RGBA()
	if r>>8 > 100 || g2>>8 < 128 || b>>8 > 100 {
		t.Errorf("Expected green at (4,4), got %d,%d,%d", r>>8, g2>>8, b>>8)
	}
}
