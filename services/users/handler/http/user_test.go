package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetPrincipal(c, &models.Principal{UserID: "u1"})
	return c, rec
}

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUserUC(ctrl)
	uc.EXPECT().GetProfile(gomock.Any(), "u1").Return(nil, apperror.ErrNotFound)
	h := NewUserHandler(uc)

	c, rec := newContext(http.MethodGet, "/api/users/profile", "")
	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUserUC(ctrl)
	first := "Grace"
	uc.EXPECT().UpdateProfile(gomock.Any(), "u1", models.UserProfileUpdate{FirstName: &first}).
		Return(&models.User{ID: "u1", FirstName: "Grace"}, nil)
	h := NewUserHandler(uc)

	c, rec := newContext(http.MethodPut, "/api/users/profile", `{"firstName":"Grace"}`)
	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Grace"`)
}

func TestUpdateSettings(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(uc *mocks.MockUserUC)
		wantStatus int
	}{
		{
			name: "Success",
			body: `{"settings":{"emailNotifications":true,"theme":"dark"}}`,
			mockSetup: func(uc *mocks.MockUserUC) {
				settings := models.UserSettings{EmailNotifications: true, Theme: "dark"}
				uc.EXPECT().UpdateSettings(gomock.Any(), "u1", settings).Return(&settings, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Missing settings object",
			body:       `{"theme":"dark"}`,
			mockSetup:  func(uc *mocks.MockUserUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockUserUC(ctrl)
			tt.mockSetup(uc)
			h := NewUserHandler(uc)

			c, rec := newContext(http.MethodPut, "/api/users/settings", tt.body)
			require.NoError(t, h.UpdateSettings(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDashboards(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUserUC(ctrl)
	uc.EXPECT().Dashboard(gomock.Any(), "u1").Return(&models.Dashboard{
		Stats:              models.DashboardStats{TotalChallenges: 1, ActiveChallenges: 1},
		Challenges:         []models.Challenge{{ID: "c1"}},
		RecentTransactions: []models.Transaction{},
	}, nil)
	uc.EXPECT().AdminDashboard(gomock.Any()).Return(&models.AdminDashboard{
		Stats: models.AdminStats{TotalUsers: 2, TotalRevenue: 99},
	}, nil)
	h := NewUserHandler(uc)

	c, rec := newContext(http.MethodGet, "/api/users/dashboard", "")
	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"activeChallenges":1`)

	c, rec = newContext(http.MethodGet, "/api/users/admin/dashboard", "")
	require.NoError(t, h.AdminDashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalRevenue":99`)
}
