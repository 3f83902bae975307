package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/maruel/natural"
)

// ResourceManager is responsible for centralized management of scenery images.
// It provides loading and caching mechanisms for single images and frame
// sequences, ensuring that resources are loaded only once and reused by every
// tile that shares them.
//
// All paths are slash-separated and relative to the asset root passed to
// NewResourceManager (e.g. "world/decoration/Sign.png").
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("assets"))
//	img, err := rm.LoadImage("world/terrain/Crate.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	assets     fs.FS                      // Asset root
	imageCache map[string]*ebiten.Image   // Cache for loaded images: path -> Image
	frameCache map[string][]*ebiten.Image // Cache for frame sequences: dir -> ordered frames
}

// NewResourceManager creates a ResourceManager reading from the given asset root.
//
// Parameters:
//   - assets: The file system that holds the image assets (os.DirFS in the game,
//     fstest.MapFS in tests).
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(assets fs.FS) *ResourceManager {
	return &ResourceManager{
		assets:     assets,
		imageCache: make(map[string]*ebiten.Image),
		frameCache: make(map[string][]*ebiten.Image),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG and JPEG.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	p = cleanPath(p)

	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	file, err := rm.assets.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[cleanPath(p)]
}

// LoadFrames loads every image in a directory as one animation cycle.
//
// Frames are ordered by the natural order of their file names, so "2.png"
// comes before "10.png". Sub-directories and files that are not PNG/JPEG
// are skipped. The sequence is cached per directory.
//
// Returns an error if the directory cannot be read, if it contains no images,
// or if any frame fails to decode.
func (rm *ResourceManager) LoadFrames(dir string) ([]*ebiten.Image, error) {
	dir = cleanPath(dir)

	if frames, exists := rm.frameCache[dir]; exists {
		return frames, nil
	}

	entries, err := fs.ReadDir(rm.assets, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no frames found in %s", dir)
	}

	sortFrameNames(names)

	frames := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := rm.LoadImage(path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}

	rm.frameCache[dir] = frames
	log.Printf("[ResourceManager] Loaded %d frames from %s", len(frames), dir)
	return frames, nil
}

// cleanPath normalizes a resource path for fs.FS (no leading "./" or "/").
func cleanPath(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "/")
}

func isImageFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// sortFrameNames orders frame file names naturally, so "Idle (3).png"
// comes before "Idle (12).png".
func sortFrameNames(names []string) {
	sort.Sort(natural.StringSlice(names))
}
