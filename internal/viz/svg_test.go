package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1) != "" {
		t.Error("expected empty output for nil canvas")
	}

	c := NewCanvas(1, 1)
	c.SetColor(1, 2, "#ff0000")
	c.Set(0, 0)

	out := CanvasToSVG(c, 2)
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(out, `cx="3.0" cy="5.0" r="0.8" fill="#ff0000"`) {
		t.Errorf("expected red dot at 3,5:\n%s", out)
	}
}

func TestSaveSnapshot(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)

	path := filepath.Join(t.TempDir(), "snap.svg")
	if err := SaveSnapshot(c, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.HasPrefix(string(data), "<?xml") {
		t.Errorf("expected svg at %s, got %v", path, err)
	}
}
