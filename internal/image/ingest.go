// Package image decodes untrusted uploaded bytes into a canonical RGB pixel
// buffer. All supported encodings (jpeg, png, gif, webp) normalize to the same
// 3-channel layout so downstream consumers never see source-specific color
// models.
package image

import (
	"bytes"
	stdimage "image"
	"image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
)

// MaxImageSize is the upload cap, checked before any decode is attempted.
const MaxImageSize = 10 * 1024 * 1024

// Channels is the canonical channel count of a decoded buffer.
const Channels = 3

// Image is a decoded upload: a canonical RGB pixel buffer plus the original
// encoded bytes, which are retained for the model providers and the audit blob.
type Image struct {
	Pixels  []uint8 // interleaved RGB, row-major
	Width   int
	Height  int
	Format  string
	Encoded []byte
}

// Ingest validates and decodes uploaded image bytes. It is pure: the only
// outputs are the returned buffer or a domain error.
func Ingest(data []byte) (*Image, error) {
	if len(data) > MaxImageSize {
		return nil, domain.ErrPayloadTooLarge
	}
	if len(data) == 0 {
		return nil, domain.ErrInvalidImage
	}

	img, format, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Normalize every source color model (gray, paletted, CMYK, YCbCr...)
	// through NRGBA, then strip the alpha channel.
	nrgba, ok := img.(*stdimage.NRGBA)
	if !ok || bounds.Min != (stdimage.Point{}) {
		converted := stdimage.NewNRGBA(stdimage.Rect(0, 0, width, height))
		draw.Draw(converted, converted.Bounds(), img, bounds.Min, draw.Src)
		nrgba = converted
	}

	pixels := make([]uint8, width*height*Channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := nrgba.PixOffset(x, y)
			dst := (y*width + x) * Channels
			pixels[dst] = nrgba.Pix[src]
			pixels[dst+1] = nrgba.Pix[src+1]
			pixels[dst+2] = nrgba.Pix[src+2]
		}
	}

	return &Image{
		Pixels:  pixels,
		Width:   width,
		Height:  height,
		Format:  format,
		Encoded: data,
	}, nil
}
