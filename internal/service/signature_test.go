package service_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/atlasgoods/fulfillment-service/internal/entities"
	"github.com/atlasgoods/fulfillment-service/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier_Verify(t *testing.T) {
	const secret = "cs_0123456789abcdef"
	body := []byte(`{"id":4521,"total":"325.00"}`)

	v := service.NewSignatureVerifier(secret)

	t.Run("valid signature", func(t *testing.T) {
		require.NoError(t, v.Verify(body, sign(secret, body)))
	})

	t.Run("missing header", func(t *testing.T) {
		err := v.Verify(body, "")
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		err := v.Verify(body, sign("other-secret", body))
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("no secret configured", func(t *testing.T) {
		empty := service.NewSignatureVerifier("")
		err := empty.Verify(body, sign("", body))
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("any flipped byte breaks verification", func(t *testing.T) {
		signature := sign(secret, body)
		for i := range body {
			tampered := make([]byte, len(body))
			copy(tampered, body)
			tampered[i] ^= 0x01

			err := v.Verify(tampered, signature)
			if !errors.Is(err, entities.ErrUnauthorized) {
				t.Fatalf("byte %d: tampered body passed verification", i)
			}
		}
	})
}
