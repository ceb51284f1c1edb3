package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Generator renders share QR codes pointing participants at an event page.
type Generator struct {
	baseURL string
}

func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: baseURL}
}

// ShareURL returns the frontend URL a scanned code opens.
func (g *Generator) ShareURL(eventID int64) string {
	return fmt.Sprintf("%s/event/%d", g.baseURL, eventID)
}

// GenerateShareQR encodes the event share URL as a 256x256 PNG.
func (g *Generator) GenerateShareQR(eventID int64) ([]byte, error) {
	return qrcode.Encode(g.ShareURL(eventID), qrcode.Medium, 256)
}
