package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/siragigame02/novel-image-generator/pkg/observability"
)

// FontResolver turns an optional font path and a size into a drawable face.
type FontResolver interface {
	// Resolve returns a face for the given path and pixel size. It never
	// fails: on a missing or unparsable path it falls back through system
	// fonts to a built-in bitmap face, which forfeits size control and
	// should be treated as a degraded terminal fallback.
	Resolve(path string, size int) font.Face
}

// fallbackFontPaths are tried in order when no usable font path is given.
// Covers the common Japanese-capable fonts on Windows, macOS, and Linux.
var fallbackFontPaths = []string{
	"C:/Windows/Fonts/meiryo.ttc",
	"C:/Windows/Fonts/yugothm.ttc",
	"C:/Windows/Fonts/msmincho.ttc",
	"C:/Windows/Fonts/meiryo.ttf",
	"C:/Windows/Fonts/yugothm.ttf",
	"C:/Windows/Fonts/msmincho.ttf",
	"/System/Library/Fonts/ヒラギノ角ゴシック W3.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.otf",
}

// fallbackFontNames are looked up through the system font directories when
// none of the absolute paths exist.
var fallbackFontNames = []string{
	"NotoSansCJK-Regular.ttc",
	"NotoSansJP-Regular.ttf",
	"DejaVuSans.ttf",
}

// SystemFonts resolves fonts from disk with a cache keyed by (path, size).
// The cache is read-mostly after first population; the whole renderer runs
// on one goroutine, and go-cache guards the map for embedding hosts that
// resolve from elsewhere.
type SystemFonts struct {
	Logger *log.Logger
	cache  *gocache.Cache
}

// NewSystemFonts creates a resolver with an empty face cache.
func NewSystemFonts(logger *log.Logger) *SystemFonts {
	if logger == nil {
		logger = log.Default()
	}
	return &SystemFonts{
		Logger: logger,
		cache:  gocache.New(gocache.NoExpiration, 0),
	}
}

// Resolve implements FontResolver.
func (f *SystemFonts) Resolve(path string, size int) font.Face {
	key := fontKey(path, size)
	if cached, ok := f.cache.Get(key); ok {
		observability.Asset().OnCacheHit(context.Background(), "font", key)
		return cached.(font.Face)
	}

	observability.Asset().OnCacheMiss(context.Background(), "font", key)
	face := f.load(path, size)
	f.cache.Set(key, face, gocache.NoExpiration)
	return face
}

func (f *SystemFonts) load(path string, size int) font.Face {
	if path != "" {
		if face, err := loadFace(path, size); err == nil {
			return face
		} else {
			f.Logger.Warnf("font %s unusable, falling back: %v", path, err)
		}
	}

	for _, p := range fallbackFontPaths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if face, err := loadFace(p, size); err == nil {
			f.Logger.Debugf("using system font %s", p)
			return face
		}
	}

	for _, name := range fallbackFontNames {
		p, err := findfont.Find(name)
		if err != nil {
			continue
		}
		if face, err := loadFace(p, size); err == nil {
			f.Logger.Debugf("using discovered font %s", p)
			return face
		}
	}

	observability.Asset().OnFallback(context.Background(), "font", path)
	f.Logger.Warn("no scalable font found, using built-in bitmap face (size control lost)")
	return basicfont.Face7x13
}

// loadFace parses a TrueType font file and builds a face at the given size.
func loadFace(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return truetype.NewFace(ft, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func fontKey(path string, size int) string {
	if path == "" {
		path = "default"
	}
	return fmt.Sprintf("%s|%d", path, size)
}
