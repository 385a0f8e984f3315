// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func createTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcess_SmallImagesAreKeptAsIs(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		fileName string
		wantMIME string
		wantExt  string
	}{
		{name: "jpeg with jpeg name", data: createTestJPEG(t, 50, 50), fileName: "wallet.JPEG", wantMIME: "image/jpeg", wantExt: ".jpeg"},
		{name: "jpeg without extension", data: createTestJPEG(t, 50, 50), fileName: "wallet", wantMIME: "image/jpeg", wantExt: ".jpg"},
		{name: "png renamed to jpg", data: createTestPNG(t, 40, 20), fileName: "keys.jpg", wantMIME: "image/png", wantExt: ".png"},
		{name: "png", data: createTestPNG(t, 40, 20), fileName: "keys.png", wantMIME: "image/png", wantExt: ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Process(tt.data, tt.fileName, 5<<20)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, result.MIME)
			assert.Equal(t, tt.wantExt, result.Ext)
			assert.Equal(t, tt.data, result.Data)
		})
	}
}

func TestProcess_Downscale(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		format string
		wantW  int
		wantH  int
	}{
		{name: "square jpeg", data: createTestJPEG(t, 2048, 2048), format: "jpeg", wantW: 1024, wantH: 1024},
		{name: "wide png keeps format and aspect", data: createTestPNG(t, 2000, 1000), format: "png", wantW: 1024, wantH: 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Process(tt.data, "photo", 0)
			require.NoError(t, err)

			img, format, err := image.Decode(bytes.NewReader(result.Data))
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.wantW, img.Bounds().Dx())
			assert.Equal(t, tt.wantH, img.Bounds().Dy())
		})
	}
}

func TestProcess_Rejections(t *testing.T) {
	jpegData := createTestJPEG(t, 10, 10)

	_, err := Process(nil, "x.jpg", 100)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = Process(jpegData, "x.jpg", int64(len(jpegData)-1))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = Process([]byte("not an image"), "x.jpg", 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Process([]byte("GIF89a..."), "x.gif", 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// valid PNG signature followed by garbage
	_, err = Process(append([]byte("\x89PNG\r\n\x1a\n"), []byte("garbage")...), "x.png", 0)
	assert.ErrorIs(t, err, ErrCorruptImage)
}

// pngWithDeclaredSize encodes a 1x1 PNG and rewrites its IHDR to claim
// width x height. The pixel data stays a single pixel.
func pngWithDeclaredSize(t *testing.T, width, height uint32) []byte {
	t.Helper()
	data := createTestPNG(t, 1, 1)
	require.Equal(t, "IHDR", string(data[12:16]))

	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestProcess_RejectsHugeDeclaredDimensions(t *testing.T) {
	data := pngWithDeclaredSize(t, 12000, 12000)
	require.Less(t, len(data), 1024)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 12000, cfg.Width)

	_, err = Process(data, "bomb.png", 5<<20)
	require.ErrorIs(t, err, ErrImageTooLarge)
	assert.Contains(t, err.Error(), "12000x12000")
}

func TestProcess_DeclaredSizeUnderPixelCapReachesDecoder(t *testing.T) {
	// passes the header check, then fails on the missing pixel data
	data := pngWithDeclaredSize(t, 1100, 1100)

	_, err := Process(data, "short.png", 5<<20)
	require.ErrorIs(t, err, ErrCorruptImage)
	assert.NotErrorIs(t, err, ErrImageTooLarge)
}
