package decode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	// Registered image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/alexisbeaulieu97/stylepreview/internal/logger"
	"github.com/alexisbeaulieu97/stylepreview/internal/ports"
	apperrors "github.com/alexisbeaulieu97/stylepreview/pkg/errors"
)

// ErrEmpty is returned for zero-length image data.
var ErrEmpty = errors.New("image data is empty")

// Decoder implements ports.ImageDecoder for png, jpeg, gif, bmp, tiff and
// webp data. Decoded images are normalised to *image.RGBA.
type Decoder struct {
	logger ports.Logger
}

// New returns a Decoder that reports decode activity to log.
func New(log ports.Logger) *Decoder {
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Decoder{logger: log.With("component", "decoder")}
}

// Decode decodes in-memory image data.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	return d.decode("bytes", data)
}

// DecodeFile reads and decodes the image at path. A file that cannot be read
// is reported as a decode failure of that path.
func (d *Decoder) DecodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewDecodeError(path, err)
	}
	return d.decode(path, data)
}

func (d *Decoder) decode(source string, data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, apperrors.NewDecodeError(source, ErrEmpty)
	}

	kind, _ := filetype.Match(data)
	if kind != filetype.Unknown && !filetype.IsImage(data) {
		return nil, apperrors.NewDecodeError(source, fmt.Errorf("%s data is not an image", kind.MIME.Value))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if kind != filetype.Unknown {
			err = fmt.Errorf("%s: %w", kind.MIME.Value, err)
		}
		return nil, apperrors.NewDecodeError(source, err)
	}

	b := img.Bounds()
	d.logger.Debug(context.Background(), "decoded image", "source", source, "format", format, "width", b.Dx(), "height", b.Dy())
	return clone.AsRGBA(img), nil
}

var _ ports.ImageDecoder = (*Decoder)(nil)
