package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/siragigame02/novel-image-generator/pkg/errors"
)

// jpegQuality is the encode quality for JPEG output.
const jpegQuality = 95

// Writer persists one finished raster under a file name.
type Writer interface {
	Write(filename string, img image.Image) error
}

// DirWriter writes images into a directory, creating it on first write.
type DirWriter struct {
	Dir string
}

// Write implements Writer. The encoding is chosen from the file extension.
func (w DirWriter) Write(filename string, img image.Image) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create output dir %s", w.Dir)
	}
	path := filepath.Join(w.Dir, filename)
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "save %s", path)
	}
	return nil
}

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	underscoreRuns       = regexp.MustCompile(`_+`)
)

// SanitizeBaseName replaces characters that are unsafe in file names,
// collapses underscore runs, and trims leading/trailing underscores and
// spaces. An empty result becomes "untitled".
func SanitizeBaseName(name string) string {
	s := invalidFilenameChars.ReplaceAllString(name, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_ ")
	if s == "" {
		return "untitled"
	}
	return s
}

// OutputFilename builds the sequenced output name: base_NNN.ext with the
// index zero-padded to three digits. Indices start at 1 and advance once per
// instruction whether or not it succeeds, so failures leave gaps rather than
// shifting later files.
func OutputFilename(base string, index int, ext string) string {
	return fmt.Sprintf("%s_%03d.%s", base, index, strings.TrimPrefix(ext, "."))
}
