package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// QRService renders guest gallery links as PNG QR codes.
type QRService struct {
	baseURL string
}

func NewQRService(publicBaseURL string) *QRService {
	return &QRService{
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// GalleryURL is the guest gallery address of an event.
func (s *QRService) GalleryURL(eventID uint) string {
	return fmt.Sprintf("%s/gallery/%d", s.baseURL, eventID)
}

// GenerateQRCode returns a PNG of size x size pixels pointing at the event
// gallery.
func (s *QRService) GenerateQRCode(eventID uint, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("size must be between %d and %d", MinSize, MaxSize)
	}

	png, err := qrcode.Encode(s.GalleryURL(eventID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}
