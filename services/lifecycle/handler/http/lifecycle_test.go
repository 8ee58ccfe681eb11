package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/services/lifecycle/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		anonymous  bool
		mockSetup  func(uc *mocks.MockLifecycleUC)
		wantStatus int
		wantError  string
	}{
		{
			name: "Success",
			body: `{"type":"standard","accountSize":10000}`,
			mockSetup: func(uc *mocks.MockLifecycleUC) {
				uc.EXPECT().Purchase(gomock.Any(), "u1", &models.PurchaseRequest{
					Type: models.ChallengeTypeStandard, AccountSize: 10000,
				}).Return(&models.PurchaseResponse{ChallengeID: "c1", ClientSecret: "pi_secret"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing principal",
			body:       `{"type":"standard","accountSize":10000}`,
			anonymous:  true,
			mockSetup:  func(uc *mocks.MockLifecycleUC) {},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "Missing account size",
			body:       `{"type":"standard"}`,
			mockSetup:  func(uc *mocks.MockLifecycleUC) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Challenge type and account size are required",
		},
		{
			name: "Unknown product",
			body: `{"type":"standard","accountSize":7}`,
			mockSetup: func(uc *mocks.MockLifecycleUC) {
				uc.EXPECT().Purchase(gomock.Any(), "u1", gomock.Any()).Return(nil, apperror.ErrInvalidProduct)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  apperror.ErrInvalidProduct.Error(),
		},
		{
			name: "Processor unavailable",
			body: `{"type":"swing","accountSize":5000}`,
			mockSetup: func(uc *mocks.MockLifecycleUC) {
				uc.EXPECT().Purchase(gomock.Any(), "u1", gomock.Any()).Return(nil, apperror.ErrUpstream)
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockLifecycleUC(ctrl)
			tt.mockSetup(uc)
			h := NewLifecycleHandler(uc)

			c, rec := newContext(http.MethodPost, "/api/challenges/purchase", tt.body)
			if !tt.anonymous {
				middleware.SetPrincipal(c, &models.Principal{UserID: "u1"})
			}

			require.NoError(t, h.Purchase(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			response := decode(t, rec)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, response["error"])
				return
			}
			if tt.wantStatus == http.StatusCreated {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "c1", data["challengeId"])
				assert.Equal(t, "pi_secret", data["clientSecret"])
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		mockSetup  func(uc *mocks.MockLifecycleUC)
		wantStatus int
	}{
		{
			name: "Success",
			id:   "c1",
			body: `{"status":"completed","metrics":{"totalProfit":800}}`,
			mockSetup: func(uc *mocks.MockLifecycleUC) {
				uc.EXPECT().UpdateStatus(gomock.Any(), "c1", &models.StatusUpdateRequest{
					Status:  models.ChallengeStatusCompleted,
					Metrics: &models.ChallengeMetrics{TotalProfit: 800},
				}).Return(&models.Challenge{ID: "c1", Status: models.ChallengeStatusCompleted}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Missing status",
			id:         "c1",
			body:       `{}`,
			mockSetup:  func(uc *mocks.MockLifecycleUC) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Terminal challenge",
			id:   "c1",
			body: `{"status":"active"}`,
			mockSetup: func(uc *mocks.MockLifecycleUC) {
				uc.EXPECT().UpdateStatus(gomock.Any(), "c1", gomock.Any()).Return(nil, apperror.ErrInvalidTransition)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "Unknown challenge",
			id:   "missing",
			body: `{"status":"failed"}`,
			mockSetup: func(uc *mocks.MockLifecycleUC) {
				uc.EXPECT().UpdateStatus(gomock.Any(), "missing", gomock.Any()).Return(nil, apperror.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockLifecycleUC(ctrl)
			tt.mockSetup(uc)
			h := NewLifecycleHandler(uc)

			c, rec := newContext(http.MethodPut, "/api/challenges/"+tt.id+"/status", tt.body)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, h.UpdateStatus(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("Forwards the idempotency header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockLifecycleUC(ctrl)
		uc.EXPECT().CreatePaymentIntent(gomock.Any(), "u1", "c1", "retry-1").
			Return(&models.CreatePaymentIntentResponse{ClientSecret: "pi_secret"}, nil)
		h := NewLifecycleHandler(uc)

		c, rec := newContext(http.MethodPost, "/api/payments/create-payment-intent", `{"challengeId":"c1"}`)
		c.Request().Header.Set("Idempotency-Key", "retry-1")
		middleware.SetPrincipal(c, &models.Principal{UserID: "u1"})

		require.NoError(t, h.CreatePaymentIntent(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		data := decode(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "pi_secret", data["clientSecret"])
	})

	t.Run("Missing challenge id", func(t *testing.T) {
		h := NewLifecycleHandler(mocks.NewMockLifecycleUC(gomock.NewController(t)))

		c, rec := newContext(http.MethodPost, "/api/payments/create-payment-intent", `{}`)
		middleware.SetPrincipal(c, &models.Principal{UserID: "u1"})

		require.NoError(t, h.CreatePaymentIntent(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Challenge not awaiting payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockLifecycleUC(ctrl)
		uc.EXPECT().CreatePaymentIntent(gomock.Any(), "u1", "c1", "").Return(nil, apperror.ErrConflict)
		h := NewLifecycleHandler(uc)

		c, rec := newContext(http.MethodPost, "/api/payments/create-payment-intent", `{"challengeId":"c1"}`)
		middleware.SetPrincipal(c, &models.Principal{UserID: "u1"})

		require.NoError(t, h.CreatePaymentIntent(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestWebhook(t *testing.T) {
	const body = `{"id":"evt_1","type":"payment_intent.succeeded"}`

	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantAck    bool
	}{
		{name: "Acknowledged", wantStatus: http.StatusOK, wantAck: true},
		{name: "Bad signature", ucErr: apperror.ErrInvalidSignature, wantStatus: http.StatusBadRequest},
		{name: "Malformed event", ucErr: apperror.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "Store failure asks for redelivery", ucErr: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockLifecycleUC(ctrl)
			uc.EXPECT().HandlePaymentEvent(gomock.Any(), []byte(body), "t=1,v1=abc").Return(tt.ucErr)
			h := NewLifecycleHandler(uc)

			c, rec := newContext(http.MethodPost, "/api/payments/webhook", body)
			c.Request().Header.Set("Stripe-Signature", "t=1,v1=abc")

			require.NoError(t, h.Webhook(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantAck {
				assert.JSONEq(t, `{"received":true}`, rec.Body.String())
			}
		})
	}
}
