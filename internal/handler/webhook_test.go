package handler_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasgoods/fulfillment-service/internal/handler"
	"github.com/atlasgoods/fulfillment-service/internal/handler/mocks"
	"github.com/atlasgoods/fulfillment-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookHandler_HandleOrderEvent(t *testing.T) {
	const secret = "cs_test_secret"

	payload := []byte(`{
		"id": 4521,
		"date_created": "2025-06-02T10:30:00",
		"total": "325.00",
		"billing": {"first_name": "Amine", "last_name": "Benali", "address_1": "12 Rue des Orangers", "city": "Casablanca"},
		"line_items": [{"product_id": "SKU-1", "quantity": 2, "price": "100.00"}]
	}`)

	testCases := []struct {
		name         string
		body         []byte
		signature    string
		mockBehavior func(svc *mocks.MockOrderIngestor)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "created",
			body:      payload,
			signature: sign(secret, payload),
			mockBehavior: func(svc *mocks.MockOrderIngestor) {
				svc.EXPECT().
					Ingest(mock.Anything, mock.MatchedBy(func(ev service.OrderEvent) bool {
						return ev.Ref == "4521" && ev.Billing != nil && ev.Billing.City == "Casablanca"
					})).
					Return(service.IngestCreated, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"result":"created"`,
		},
		{
			name:      "duplicate delivery acknowledged",
			body:      payload,
			signature: sign(secret, payload),
			mockBehavior: func(svc *mocks.MockOrderIngestor) {
				svc.EXPECT().
					Ingest(mock.Anything, mock.Anything).
					Return(service.IngestDuplicate, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"result":"duplicate"`,
		},
		{
			name:         "missing signature",
			body:         payload,
			signature:    "",
			mockBehavior: func(svc *mocks.MockOrderIngestor) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
		{
			name:         "tampered body",
			body:         append(bytes.Clone(payload), ' '),
			signature:    sign(secret, payload),
			mockBehavior: func(svc *mocks.MockOrderIngestor) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
		{
			name:         "signed but unparseable payload is acknowledged",
			body:         []byte(`not json`),
			signature:    sign(secret, []byte(`not json`)),
			mockBehavior: func(svc *mocks.MockOrderIngestor) {},
			wantStatus:   http.StatusOK,
			wantBody:     `"result":"ignored"`,
		},
		{
			name:      "ingest failure",
			body:      payload,
			signature: sign(secret, payload),
			mockBehavior: func(svc *mocks.MockOrderIngestor) {
				svc.EXPECT().
					Ingest(mock.Anything, mock.Anything).
					Return(service.IngestResult(""), errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderIngestor(t)
			tc.mockBehavior(svc)

			h := handler.NewWebhookHandler(discardLogger(), service.NewSignatureVerifier(secret), svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/orders", bytes.NewReader(tc.body))
			if tc.signature != "" {
				req.Header.Set(handler.SignatureHeader, tc.signature)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
