// Package upi builds upi://pay deep links. The parameter order and
// encoding must match what UPI apps were tested against, so links are
// assembled by hand instead of through net/url.
package upi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is fixed, UPI settles in Indian rupees only.
const Currency = "INR"

// Link holds the parameters of a UPI payment request.
type Link struct {
	PayeeAddress string          // pa - virtual payment address
	PayeeName    string          // pn
	Amount       decimal.Decimal // am - whole rupees for catalog prices
	Note         string          // tn - transaction note, shown in the app
}

// NewLink builds a payment link for a whole-rupee amount.
func NewLink(payeeAddress, payeeName string, amount int, note string) Link {
	return Link{
		PayeeAddress: payeeAddress,
		PayeeName:    payeeName,
		Amount:       decimal.NewFromInt(int64(amount)),
		Note:         note,
	}
}

// String renders the deep link byte-for-byte:
// upi://pay?pa=<pa>&pn=<pn>&am=<am>&cu=INR&tn=<encoded note>
func (l Link) String() string {
	var b strings.Builder
	b.WriteString("upi://pay?pa=")
	b.WriteString(l.PayeeAddress)
	b.WriteString("&pn=")
	b.WriteString(l.PayeeName)
	b.WriteString("&am=")
	b.WriteString(l.Amount.String())
	b.WriteString("&cu=")
	b.WriteString(Currency)
	b.WriteString("&tn=")
	b.WriteString(EncodeNote(l.Note))
	return b.String()
}

// EncodeNote percent-encodes a transaction note the way JavaScript's
// encodeURIComponent does: spaces become %20, not +.
func EncodeNote(note string) string {
	var b strings.Builder
	for i := 0; i < len(note); i++ {
		c := note[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent leaves alphanumerics and -_.!~*'() untouched
func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
