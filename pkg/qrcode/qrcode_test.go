package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCode(t *testing.T) {
	s := NewQRService("https://snapvault.example/")
	assert.Equal(t, "https://snapvault.example/gallery/12", s.GalleryURL(12))

	data, err := s.GenerateQRCode(12, DefaultSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestGenerateQRCodeRejectsSize(t *testing.T) {
	s := NewQRService("https://snapvault.example")
	_, err := s.GenerateQRCode(1, 10)
	assert.Error(t, err)
	_, err = s.GenerateQRCode(1, 5000)
	assert.Error(t, err)
}
