package render

import (
	"image"

	"github.com/skip2/go-qrcode"
)

// FingerprintQR encodes a configuration fingerprint as a QR code of
// sizePx square, drawn in the theme colors.
func FingerprintQR(fingerprint string, sizePx int) (image.Image, error) {
	qrCode, err := qrcode.New("lvconf:"+fingerprint, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrCode.ForegroundColor = Foreground
	qrCode.BackgroundColor = Background
	return qrCode.Image(sizePx), nil
}
