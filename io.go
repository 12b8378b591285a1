package brickart

import (
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Names of the images passed to a Writer.
const (
	OriginalPreview = "small_original_colors"
	AdaptedPreview  = "small_adapted_colors"
	CanvasName      = "canvas"
)

// TileName returns the name of the pallet at column x and row y.
func TileName(x, y int) string {
	return fmt.Sprintf("pallet_%d%d", x, y)
}

// Writer persists the images produced by Build.
type Writer interface {
	WriteImage(name string, m image.Image) error
}

// DirWriter writes each image as a JPEG file in a directory.
type DirWriter struct {
	dir string
}

// NewDirWriter returns a DirWriter for dir, creating it if necessary.
func NewDirWriter(dir string) (*DirWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirWriter{
		dir: dir,
	}, nil
}

// Path returns the file that the image called name is written to.
func (w *DirWriter) Path(name string) string {
	return filepath.Join(w.dir, name+".jpg")
}

// WriteImage implements Writer.
func (w *DirWriter) WriteImage(name string, m image.Image) error {
	return imaging.Save(m, w.Path(name), imaging.JPEGQuality(95))
}

// Open decodes the image in file and returns it along with the SHA-1 of the
// file contents.
func Open(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", &ImageReadError{file, err}
	}
	defer f.Close()

	h := sha1.New()
	r := io.TeeReader(f, h)

	m, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", &ImageReadError{file, err}
	}

	// The decoder may stop short of the end of the file
	if _, err := io.Copy(ioutil.Discard, r); err != nil {
		return nil, "", &ImageReadError{file, err}
	}

	return m, fmt.Sprintf("%X", h.Sum(nil)), nil
}
