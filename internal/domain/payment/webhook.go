package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	appErrors "Seedfund/internal/errors"
	"Seedfund/internal/logger"
)

const (
	SchemePaystack = "paystack"
	SchemeStripe   = "stripe"

	PaystackSignatureHeader = "X-Paystack-Signature"
	StripeSignatureHeader   = "Stripe-Signature"

	// DefaultStripeTolerance matches the window stripe-go accepts.
	DefaultStripeTolerance = 5 * time.Minute
)

// Verifier authenticates a raw webhook body against its request headers.
type Verifier interface {
	Verify(header http.Header, body []byte) error
}

// NewVerifier picks the verifier for scheme. Without a secret every
// delivery is accepted.
func NewVerifier(scheme, secret string) Verifier {
	if secret == "" {
		logger.Warn().Msg("PAYMENT_WEBHOOK_SECRET is empty, webhook signatures will not be verified")
		return NoopVerifier{}
	}
	if scheme == SchemeStripe {
		return &StripeVerifier{Secret: secret, Tolerance: DefaultStripeTolerance}
	}
	return &PaystackVerifier{Secret: secret}
}

type NoopVerifier struct{}

func (NoopVerifier) Verify(http.Header, []byte) error {
	return nil
}

// PaystackVerifier checks the hex HMAC-SHA512 of the body.
type PaystackVerifier struct {
	Secret string
}

func (v *PaystackVerifier) Verify(header http.Header, body []byte) error {
	got := header.Get(PaystackSignatureHeader)
	if got == "" {
		return appErrors.ErrInvalidSignature.WithError(errors.New("missing " + PaystackSignatureHeader))
	}
	if !equalHex(got, PaystackSignature(body, v.Secret)) {
		return appErrors.ErrInvalidSignature
	}
	return nil
}

func PaystackSignature(payload []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// StripeVerifier checks "t=<unix>,v1=<hex>" where the signature is
// HMAC-SHA256 over "<unix>.<body>".
type StripeVerifier struct {
	Secret    string
	Tolerance time.Duration
	Now       func() time.Time
}

func (v *StripeVerifier) Verify(header http.Header, body []byte) error {
	raw := header.Get(StripeSignatureHeader)
	if raw == "" {
		return appErrors.ErrInvalidSignature.WithError(errors.New("missing " + StripeSignatureHeader))
	}

	var timestamp int64 = -1
	var signatures []string
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return appErrors.ErrInvalidSignature.WithError(err)
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, value)
		}
	}
	if timestamp < 0 || len(signatures) == 0 {
		return appErrors.ErrInvalidSignature.WithError(errors.New("malformed " + StripeSignatureHeader))
	}

	if v.Tolerance > 0 {
		now := time.Now
		if v.Now != nil {
			now = v.Now
		}
		age := now().Sub(time.Unix(timestamp, 0))
		if age > v.Tolerance || age < -v.Tolerance {
			return appErrors.ErrInvalidSignature.WithError(errors.New("timestamp outside tolerance"))
		}
	}

	expected := StripeSignature(timestamp, body, v.Secret)
	for _, sig := range signatures {
		if equalHex(sig, expected) {
			return nil
		}
	}
	return appErrors.ErrInvalidSignature
}

func StripeSignature(timestamp int64, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func equalHex(got, want string) bool {
	a, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(got)))
	if err != nil {
		return false
	}
	b, err := hex.DecodeString(want)
	if err != nil {
		return false
	}
	return hmac.Equal(a, b)
}
