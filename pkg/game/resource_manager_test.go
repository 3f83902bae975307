package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// encodeTestPNG creates a w x h PNG filled with c.
func encodeTestPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// testAssets builds an in-memory asset root.
// Frame widths encode the expected natural order: frame N is N pixels wide.
func testAssets(t *testing.T) fstest.MapFS {
	blue := color.RGBA{B: 255, A: 255}
	return fstest.MapFS{
		"world/terrain/Crate.png":   {Data: encodeTestPNG(t, 64, 64, blue)},
		"world/traps/saw/1.png":     {Data: encodeTestPNG(t, 1, 4, blue)},
		"world/traps/saw/2.png":     {Data: encodeTestPNG(t, 2, 4, blue)},
		"world/traps/saw/10.png":    {Data: encodeTestPNG(t, 10, 4, blue)},
		"world/traps/saw/3.png":     {Data: encodeTestPNG(t, 3, 4, blue)},
		"world/traps/saw/notes.txt": {Data: []byte("not an image")},
		"world/traps/saw/old/1.png": {Data: encodeTestPNG(t, 99, 4, blue)},
		"world/traps/empty/.keep":   {Data: []byte{}},
		"broken/bad.png":            {Data: []byte("garbage")},
	}
}

// TestLoadImage_Success tests successful image loading.
func TestLoadImage_Success(t *testing.T) {
	rm := NewResourceManager(testAssets(t))

	img, err := rm.LoadImage("world/terrain/Crate.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Errorf("Image dimensions incorrect: got %dx%d, want 64x64", bounds.Dx(), bounds.Dy())
	}
}

// TestLoadImage_CachingMechanism tests that images are cached properly.
func TestLoadImage_CachingMechanism(t *testing.T) {
	rm := NewResourceManager(testAssets(t))

	img1, err := rm.LoadImage("world/terrain/Crate.png")
	if err != nil {
		t.Fatalf("First LoadImage failed: %v", err)
	}
	// Equivalent spellings hit the same cache entry
	img2, err := rm.LoadImage("./world/terrain/Crate.png")
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}
	if img1 != img2 {
		t.Error("Images are not the same instance - caching failed")
	}
	if rm.GetImage("world/terrain/Crate.png") != img1 {
		t.Error("GetImage did not return the cached image")
	}
	if rm.GetImage("world/terrain/Nope.png") != nil {
		t.Error("GetImage should return nil for images never loaded")
	}
}

// TestLoadImage_Errors tests missing and corrupted files.
func TestLoadImage_Errors(t *testing.T) {
	rm := NewResourceManager(testAssets(t))

	if _, err := rm.LoadImage("world/terrain/Missing.png"); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := rm.LoadImage("broken/bad.png"); err == nil {
		t.Error("Expected error for corrupted file")
	}
}

// TestLoadFrames_NaturalOrder tests that frames are sorted by natural order
// and that non-image entries are skipped.
func TestLoadFrames_NaturalOrder(t *testing.T) {
	rm := NewResourceManager(testAssets(t))

	frames, err := rm.LoadFrames("world/traps/saw")
	if err != nil {
		t.Fatalf("LoadFrames failed: %v", err)
	}

	want := []int{1, 2, 3, 10}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i, w := range want {
		if frames[i].Bounds().Dx() != w {
			t.Errorf("frame %d width = %d, want %d", i, frames[i].Bounds().Dx(), w)
		}
	}

	again, err := rm.LoadFrames("world/traps/saw/")
	if err != nil {
		t.Fatalf("second LoadFrames failed: %v", err)
	}
	if &again[0] != &frames[0] {
		t.Error("frame sequence was not cached")
	}
}

// TestLoadFrames_Errors tests empty and missing directories.
func TestLoadFrames_Errors(t *testing.T) {
	rm := NewResourceManager(testAssets(t))

	if _, err := rm.LoadFrames("world/traps/empty"); err == nil {
		t.Error("Expected error for directory without frames")
	}
	if _, err := rm.LoadFrames("world/traps/missing"); err == nil {
		t.Error("Expected error for missing directory")
	}
	if _, err := rm.LoadFrames("broken"); err == nil {
		t.Error("Expected error for corrupted frame")
	}
}

// TestSortFrameNames tests the natural ordering of frame names.
func TestSortFrameNames(t *testing.T) {
	names := []string{"frame10.png", "frame2.png", "frame1.png", "Idle (3).png", "Idle (12).png", "Idle (1).png"}
	sortFrameNames(names)

	want := []string{"Idle (1).png", "Idle (3).png", "Idle (12).png", "frame1.png", "frame2.png", "frame10.png"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: got %q, want %q (full order %v)", i, names[i], want[i], names)
		}
	}
}
