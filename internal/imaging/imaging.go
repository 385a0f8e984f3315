// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imaging validates uploaded photos and shrinks oversized ones.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// MaxDimension is the maximum width or height for stored images.
const MaxDimension = 1024

// MaxPixels caps the declared width times height accepted for decoding.
// Headers are checked before any pixel data is allocated.
const MaxPixels = 40_000_000

// JPEGQuality is the compression quality for re-encoded JPEG output.
const JPEGQuality = 85

var (
	// ErrEmptyImage is returned for zero-length uploads.
	ErrEmptyImage = errors.New("image is empty")

	// ErrImageTooLarge is returned when the upload exceeds the byte limit
	// or declares more than MaxPixels.
	ErrImageTooLarge = errors.New("image is too large")

	// ErrUnsupportedFormat is returned for anything that is not JPEG or PNG.
	ErrUnsupportedFormat = errors.New("unsupported image format (only JPEG and PNG accepted)")

	// ErrCorruptImage is returned when the bytes look like an image but
	// cannot be decoded.
	ErrCorruptImage = errors.New("image cannot be decoded")
)

// extensions maps accepted MIME types to their canonical file extension.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Result contains the processed image data.
type Result struct {
	Data []byte
	MIME string
	// Ext is the extension the photo is stored with, including the dot.
	Ext string
}

// Process sniffs data, rejects anything but JPEG and PNG up to maxBytes, and
// downscales images larger than MaxDimension on either side. The original
// format is preserved; images already within bounds are returned unchanged.
//
// fileName is the client-side name. Its extension is kept when it is a known
// extension for the sniffed format, otherwise the canonical one is used.
func Process(data []byte, fileName string, maxBytes int64) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrImageTooLarge, len(data), maxBytes)
	}

	// Sniff actual MIME type from bytes (not trusting client headers).
	detected := http.DetectContentType(data)
	canonicalExt, ok := extensions[detected]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, detected)
	}

	config, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}
	if int64(config.Width)*int64(config.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d pixels, limit is %d", ErrImageTooLarge, config.Width, config.Height, MaxPixels)
	}

	result := &Result{
		Data: data,
		MIME: detected,
		Ext:  extensionFor(fileName, detected, canonicalExt),
	}

	if config.Width <= MaxDimension && config.Height <= MaxDimension {
		return result, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	switch detected {
	case "image/png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", detected, err)
	}

	result.Data = buf.Bytes()
	return result, nil
}

func extensionFor(fileName, mimeType, canonical string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch {
	case mimeType == "image/jpeg" && (ext == ".jpg" || ext == ".jpeg"):
		return ext
	case mimeType == "image/png" && ext == ".png":
		return ext
	}
	return canonical
}

// downscale resizes the image so neither dimension exceeds maxDim.
// Uses high-quality Catmull-Rom interpolation.
// Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
