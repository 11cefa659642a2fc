package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order so staff can scan it at the
// pickup counter or on delivery.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderNumber string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/orders/%s", g.BaseURL, orderNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
