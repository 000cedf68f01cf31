package media

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberia-reservas/internal/config"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestNormalizePhotoShrinksAndEncodesWebP(t *testing.T) {
	out, err := NormalizePhoto(pngOf(t, 1024, 256), MaxPhotoSide)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestNormalizePhotoKeepsSmallImages(t *testing.T) {
	out, err := NormalizePhoto(pngOf(t, 64, 32), MaxPhotoSide)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestNormalizePhotoRejectsGarbage(t *testing.T) {
	_, err := NormalizePhoto(strings.NewReader("not an image"), MaxPhotoSide)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

// withDeclaredSize rewrites the IHDR dimensions of a png without touching
// its pixel data.
func withDeclaredSize(t *testing.T, buf *bytes.Buffer, w, h uint32) *bytes.Reader {
	t.Helper()
	b := bytes.Clone(buf.Bytes())
	require.Equal(t, "IHDR", string(b[12:16]))

	binary.BigEndian.PutUint32(b[16:20], w)
	binary.BigEndian.PutUint32(b[20:24], h)
	binary.BigEndian.PutUint32(b[29:33], crc32.ChecksumIEEE(b[12:29]))
	return bytes.NewReader(b)
}

func TestNormalizePhotoRejectsHugeDimensions(t *testing.T) {
	r := withDeclaredSize(t, pngOf(t, 8, 8), 12000, 12000)

	cfg, err := png.DecodeConfig(r)
	require.NoError(t, err)
	require.Equal(t, 12000, cfg.Width)
	_, err = r.Seek(0, 0)
	require.NoError(t, err)

	_, err = NormalizePhoto(r, MaxPhotoSide)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.Contains(t, err.Error(), "pixel limit")
}

func TestUserPhotoKey(t *testing.T) {
	key := UserPhotoKey(7)
	assert.True(t, strings.HasPrefix(key, "users/7/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))
}

func TestNewS3StoreNeedsBucket(t *testing.T) {
	_, err := NewS3Store(config.S3Config{Region: "us-east-1"})
	assert.Error(t, err)

	s, err := NewS3Store(config.S3Config{Region: "us-east-1", Bucket: "photos"})
	require.NoError(t, err)
	assert.Equal(t, "photos", s.bucket)
}
