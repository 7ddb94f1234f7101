package stego

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestInspectSolidCarrier(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.png")
	writeSolidPNG(t, inputPath, 10, 10, color.NRGBA{R: 120, G: 130, B: 140, A: 255})

	info, err := Inspect(inputPath, 100)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Width != 10 || info.Height != 10 {
		t.Errorf("dimensions = %dx%d; want 10x10", info.Width, info.Height)
	}
	// A flat carrier normalizes to 128 everywhere.
	if info.MinImportance != 128 || info.MaxImportance != 128 || info.MeanImportance != 128 {
		t.Errorf("importance stats = (%d, %d, %f); want all 128",
			info.MinImportance, info.MaxImportance, info.MeanImportance)
	}
	if info.Candidates != 100 {
		t.Errorf("candidates = %d; want 100", info.Candidates)
	}
	if info.ThresholdCapacity != 4 {
		t.Errorf("threshold capacity = %d; want 4", info.ThresholdCapacity)
	}
	if info.UniformCapacity != 11 {
		t.Errorf("uniform capacity = %d; want 11", info.UniformCapacity)
	}
	if info.UniformCapacity3 != 36 {
		t.Errorf("three-channel uniform capacity = %d; want 36", info.UniformCapacity3)
	}
}

func TestInspectThresholdAboveEverything(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.png")
	writeSolidPNG(t, inputPath, 10, 10, color.NRGBA{R: 120, G: 130, B: 140, A: 255})

	info, err := Inspect(inputPath, 129)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Candidates != 0 {
		t.Errorf("candidates = %d; want 0", info.Candidates)
	}
	if info.ThresholdCapacity != -1 {
		t.Errorf("threshold capacity = %d; want -1", info.ThresholdCapacity)
	}
}

func TestBuildImportanceMapExported(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.png")
	writeSolidPNG(t, inputPath, 8, 6, color.NRGBA{R: 120, G: 130, B: 140, A: 255})

	m, err := BuildImportanceMap(inputPath)
	if err != nil {
		t.Fatalf("BuildImportanceMap failed: %v", err)
	}
	if m.Width != 8 || m.Height != 6 {
		t.Errorf("map dimensions = %dx%d; want 8x6", m.Width, m.Height)
	}
	gray := m.Gray()
	if gray.Bounds().Dx() != 8 || gray.Bounds().Dy() != 6 {
		t.Errorf("gray bounds = %v", gray.Bounds())
	}
}
