// Package imageproc normalizes uploaded photos: orientation, width limit and JPEG output.
package imageproc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

const OutputContentType = "image/jpeg"

const OutputExt = ".jpg"

var ErrUnsupportedType = errors.New("unsupported image type")

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Result struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
}

type Processor struct {
	quality int
}

func NewProcessor(quality int) *Processor {
	if quality < 1 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Detect returns the sniffed MIME type of data, or ErrUnsupportedType.
func Detect(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	if !allowedTypes[mtype.String()] {
		return mtype.String(), fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
	}
	return mtype.String(), nil
}

// Process decodes data, applies EXIF orientation, shrinks it to maxWidth when wider
// and re-encodes it as JPEG. Images are never upscaled.
func (p *Processor) Process(data []byte, maxWidth int) (*Result, error) {
	if _, err := Detect(data); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &Result{
		Data:        buf.Bytes(),
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ContentType: OutputContentType,
	}, nil
}
