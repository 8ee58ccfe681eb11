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
	"github.com/pioneer-funding/server/services/auth/mocks"
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

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(uc *mocks.MockAuthUC)
		wantStatus int
		wantError  string
	}{
		{
			name: "Success",
			body: `{"email":"ada@example.com","password":"secret1","firstName":"Ada","lastName":"Lovelace"}`,
			mockSetup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().Register(gomock.Any(), &models.RegisterRequest{
					Email: "ada@example.com", Password: "secret1", FirstName: "Ada", LastName: "Lovelace",
				}).Return(&models.AuthResponse{Token: "tok", User: &models.User{ID: "u1"}}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Invalid payload",
			body:       `{invalid_json}`,
			mockSetup:  func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request payload",
		},
		{
			name:       "Missing password",
			body:       `{"email":"ada@example.com"}`,
			mockSetup:  func(uc *mocks.MockAuthUC) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name: "Email taken",
			body: `{"email":"ada@example.com","password":"secret1"}`,
			mockSetup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrConflict)
			},
			wantStatus: http.StatusConflict,
			wantError:  "conflict",
		},
		{
			name: "Store failure is not leaked",
			body: `{"email":"ada@example.com","password":"secret1"}`,
			mockSetup: func(uc *mocks.MockAuthUC) {
				uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: relation users does not exist"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockAuthUC(ctrl)
			tt.mockSetup(mockUC)
			h := NewAuthHandler(mockUC)

			c, rec := newContext(http.MethodPost, "/api/auth/register", tt.body)
			err := h.Register(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			response := decode(t, rec)
			if tt.wantError != "" {
				assert.Equal(t, false, response["success"])
				assert.Equal(t, tt.wantError, response["error"])
				return
			}
			assert.Equal(t, true, response["success"])
			data := response["data"].(map[string]interface{})
			assert.Equal(t, "tok", data["token"])
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)
	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnauthorized)

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"nope"}`)
	assert.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])
}

func TestVerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)
	mockUC.EXPECT().VerifyEmail(gomock.Any(), "ada@example.com").
		Return(&models.LinkResponse{Link: "https://app.example.com/verify-email?token=x"}, nil)

	c, rec := newContext(http.MethodPost, "/api/auth/verify-email", `{"email":"ada@example.com"}`)
	assert.NoError(t, h.VerifyEmail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, "Verification email sent", response["message"])
	assert.Equal(t, "https://app.example.com/verify-email?token=x", response["data"].(map[string]interface{})["link"])
}

func TestConfirmPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/api/auth/reset-password/confirm", `{"token":"x"}`)
	assert.NoError(t, h.ConfirmPasswordReset(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mockUC.EXPECT().ConfirmPasswordReset(gomock.Any(), "x", "n3w-secret").Return(apperror.ErrInvalidInput)
	c, rec = newContext(http.MethodPost, "/api/auth/reset-password/confirm", `{"token":"x","newPassword":"n3w-secret"}`)
	assert.NoError(t, h.ConfirmPasswordReset(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC)

	t.Run("Without principal", func(t *testing.T) {
		c, rec := newContext(http.MethodPut, "/api/auth/profile", `{"firstName":"Grace"}`)
		assert.NoError(t, h.UpdateProfile(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		first := "Grace"
		mockUC.EXPECT().UpdateProfile(gomock.Any(), "u1", models.UserProfileUpdate{FirstName: &first}).
			Return(&models.User{ID: "u1", FirstName: "Grace"}, nil)

		c, rec := newContext(http.MethodPut, "/api/auth/profile", `{"firstName":"Grace"}`)
		middleware.SetPrincipal(c, &models.Principal{UserID: "u1"})
		assert.NoError(t, h.UpdateProfile(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Profile updated successfully", decode(t, rec)["message"])
	})
}
