package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
)

// SignatureVerifier authenticates webhook deliveries from the commerce
// platform. The digest is computed over the exact raw request bytes, before
// any parsing: re-serializing the payload first would silently change the
// digest and break verification.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

func (v *SignatureVerifier) Verify(body []byte, signature string) error {
	if signature == "" {
		return fmt.Errorf("%w: missing signature header", entities.ErrUnauthorized)
	}
	if len(v.secret) == 0 {
		return fmt.Errorf("%w: no consumer secret configured", entities.ErrUnauthorized)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: signature mismatch", entities.ErrUnauthorized)
	}
	return nil
}
