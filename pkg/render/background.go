package render

import (
	"context"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	gocache "github.com/patrickmn/go-cache"

	"github.com/siragigame02/novel-image-generator/pkg/errors"
	"github.com/siragigame02/novel-image-generator/pkg/observability"
)

// BackgroundResolver maps a scene identifier to a background image.
type BackgroundResolver interface {
	// Resolve returns the background for a scene identifier, or an error
	// with code BACKGROUND_NOT_FOUND when no image exists for it.
	Resolve(scene string) (image.Image, error)
}

// backgroundExtensions is the lookup order for scene image files.
var backgroundExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tiff"}

// FolderBackgrounds resolves scene identifiers against <dir>/<id>.<ext>,
// trying extensions in a fixed order. Decoded images are cached per scene so
// repeated narration over one background loads it once.
type FolderBackgrounds struct {
	Dir   string
	cache *gocache.Cache
}

// NewFolderBackgrounds creates a resolver rooted at dir.
func NewFolderBackgrounds(dir string) *FolderBackgrounds {
	return &FolderBackgrounds{
		Dir:   dir,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Resolve implements BackgroundResolver.
func (f *FolderBackgrounds) Resolve(scene string) (image.Image, error) {
	if scene == "" || f.Dir == "" {
		return nil, errors.New(errors.ErrCodeBackgroundNotFound, "no background for scene %q", scene)
	}

	if cached, ok := f.cache.Get(scene); ok {
		observability.Asset().OnCacheHit(context.Background(), "background", scene)
		return cached.(image.Image), nil
	}
	observability.Asset().OnCacheMiss(context.Background(), "background", scene)

	for _, ext := range backgroundExtensions {
		path := filepath.Join(f.Dir, scene+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := imaging.Open(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeBackgroundNotFound, err, "decode %s", path)
		}
		f.cache.Set(scene, img, gocache.NoExpiration)
		return img, nil
	}

	return nil, errors.New(errors.ErrCodeBackgroundNotFound,
		"no image for scene %q under %s", scene, f.Dir)
}

// NoBackgrounds is a resolver that never finds an image. Useful for tests
// and for runs without an image folder.
type NoBackgrounds struct{}

// Resolve implements BackgroundResolver.
func (NoBackgrounds) Resolve(scene string) (image.Image, error) {
	return nil, errors.New(errors.ErrCodeBackgroundNotFound, "no background for scene %q", scene)
}
