// Package pix builds PIX "copia e cola" BR Code payloads and renders
// them as QR codes. The payload follows the EMV merchant-presented QR
// layout used by the Banco Central do Brasil.
package pix

import (
	"fmt"
	"strings"
	"unicode/utf8"

	qrcode "github.com/skip2/go-qrcode"

	pkgerrors "github.com/jvboschetti/acai-storefront/pkg/errors"
	"github.com/jvboschetti/acai-storefront/pkg/money"
)

const (
	idPayloadFormat       = "00"
	idMerchantAccountInfo = "26"
	idMerchantCategory    = "52"
	idCurrency            = "53"
	idAmount              = "54"
	idCountry             = "58"
	idMerchantName        = "59"
	idMerchantCity        = "60"
	idAdditionalData      = "62"
	idCRC                 = "63"

	gui         = "br.gov.bcb.pix"
	currencyBRL = "986"

	maxMerchantName = 25
	maxMerchantCity = 15
	maxTxid         = 25

	// Two length digits cap any TLV value at 99 bytes. The merchant
	// account field wraps the key in the GUI template, so the key itself
	// gets 77 bytes, the EMAIL key ceiling.
	maxTLVValue = 99
	maxKey      = 77
)

// Merchant identifies the payment receiver on the generated payloads.
type Merchant struct {
	Key  string
	Name string
	City string
}

// Builder assembles BR Code payloads for a fixed merchant.
type Builder struct {
	merchant Merchant
}

// NewBuilder validates the merchant and returns a payload builder.
func NewBuilder(m Merchant) (*Builder, error) {
	if strings.TrimSpace(m.Key) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pix key is required")
	}
	if len(m.Key) > maxKey {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pix key exceeds 77 bytes")
	}
	if strings.TrimSpace(m.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pix merchant name is required")
	}
	if strings.TrimSpace(m.City) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pix merchant city is required")
	}
	return &Builder{merchant: m}, nil
}

// Merchant returns the configured receiver.
func (b *Builder) Merchant() Merchant {
	return b.merchant
}

// Payload builds the copyable BR Code string for an amount and
// transaction id. txid falls back to "***" when empty, which PIX
// treats as "no reconciliation id".
func (b *Builder) Payload(amount money.Cents, txid string) string {
	if txid == "" {
		txid = "***"
	}
	txid = truncate(txid, maxTxid)

	var sb strings.Builder
	sb.WriteString(tlv(idPayloadFormat, "01"))
	sb.WriteString(tlv(idMerchantAccountInfo, tlv("00", gui)+tlv("01", b.merchant.Key)))
	sb.WriteString(tlv(idMerchantCategory, "0000"))
	sb.WriteString(tlv(idCurrency, currencyBRL))
	sb.WriteString(tlv(idAmount, amount.String()))
	sb.WriteString(tlv(idCountry, "BR"))
	sb.WriteString(tlv(idMerchantName, truncate(b.merchant.Name, maxMerchantName)))
	sb.WriteString(tlv(idMerchantCity, truncate(b.merchant.City, maxMerchantCity)))
	sb.WriteString(tlv(idAdditionalData, tlv("05", txid)))

	// The CRC covers everything up to and including its own id+length.
	payload := sb.String() + idCRC + "04"
	return payload + fmt.Sprintf("%04X", crc16(payload))
}

// QRCode renders the payload as a PNG of the given edge size.
func (b *Builder) QRCode(amount money.Cents, txid string, size int) ([]byte, error) {
	png, err := qrcode.Encode(b.Payload(amount, txid), qrcode.Medium, size)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding pix qr code")
	}
	return png, nil
}

func tlv(id, value string) string {
	if len(value) > maxTLVValue {
		value = truncate(value, maxTLVValue)
	}
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// truncate cuts s to at most max bytes without splitting a rune, so
// accented merchant names stay valid UTF-8 after the cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// crc16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as required
// by the BR Code field 63.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
