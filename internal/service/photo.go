package service

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"math"
	"mime/multipart"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// PhotoSize bounds both sides of a stored employee photo.
const PhotoSize = 150

const maxPhotoBytes = 5 << 20

// maxPhotoPixels caps the decoded size of an upload. The compressed size says
// little about how much memory decoding takes.
const maxPhotoPixels = 25_000_000

var photoContentTypes = []string{
	"image/jpeg",
	"image/png",
}

func InArray[T comparable](val T, array []T) bool {
	for _, v := range array {
		if val == v {
			return true
		}
	}
	return false
}

// PhotoFromUpload reads an uploaded jpeg or png and returns it as a PNG data
// URI no larger than PhotoSize on either side.
func PhotoFromUpload(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", errors.New("photo is required")
	}

	incomeContentType := file.Header.Get("Content-Type")
	if !InArray(incomeContentType, photoContentTypes) {
		return "", errors.Errorf("invalid file type, expected: %v, got: %s", photoContentTypes, incomeContentType)
	}
	if file.Size > maxPhotoBytes {
		return "", errors.Errorf("photo is %d bytes, limit is %d", file.Size, maxPhotoBytes)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Println("photo upload src.Close() error:", closeErr)
		}
	}()

	return PhotoDataURI(src)
}

// PhotoDataURI decodes an image, scales it down to fit PhotoSize keeping its
// aspect ratio and encodes it as a PNG data URI. Images over maxPhotoBytes or
// maxPhotoPixels are refused before they are decoded.
func PhotoDataURI(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxPhotoBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "reading photo")
	}
	if len(raw) > maxPhotoBytes {
		return "", errors.Errorf("photo is larger than %d bytes", maxPhotoBytes)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", errors.Wrap(err, "decoding photo header")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPhotoPixels {
		return "", errors.Errorf("photo is %dx%d, too large to process", cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", errors.Wrap(err, "decoding photo")
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, thumbnail(img, PhotoSize)); err != nil {
		return "", errors.Wrap(err, "encoding photo")
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func thumbnail(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	scale := math.Min(float64(max)/float64(w), float64(max)/float64(h))
	nw := int(math.Max(1, math.Round(float64(w)*scale)))
	nh := int(math.Max(1, math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
