package imagepkg

import (
	qrcode "github.com/skip2/go-qrcode"
)

// QR edge length bounds in pixels.
const (
	QRDefaultSize = 256
	QRMinSize     = 64
	QRMaxSize     = 1024
)

// ClampQRSize maps a requested size into the supported range. Zero or
// negative selects the default.
func ClampQRSize(size int) int {
	switch {
	case size <= 0:
		return QRDefaultSize
	case size < QRMinSize:
		return QRMinSize
	case size > QRMaxSize:
		return QRMaxSize
	}
	return size
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, ClampQRSize(size))
}
