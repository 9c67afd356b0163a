package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museum/internal/api/user"
	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, id int64, role string) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("debug")
}

func TestListHandler_ExposesRoles(t *testing.T) {
	svc := new(MockUserService)
	rec := &web.RecordingRenderer{}
	h := user.NewHandler(svc, rec, newTestLogger())
	svc.On("FindAll", mock.Anything).Return([]domain.User{{ID: 1, Email: "root@museu.com", Role: domain.RoleSuperAdmin}}, nil)

	w := httptest.NewRecorder()
	h.ListHandler(w, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "users", rec.View)
	assert.Equal(t, domain.AllRoles, rec.Model["roles"])
}

func TestUpdateRoleHandler_PassesRoleFromForm(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, &web.RecordingRenderer{}, newTestLogger())
	svc.On("UpdateRole", mock.Anything, int64(4), "GUIDE").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/users/4/role", strings.NewReader(url.Values{"role": {"GUIDE"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", "4")
	w := httptest.NewRecorder()
	h.UpdateRoleHandler(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestUpdateRoleHandler_UnknownRole_RedirectsWithError(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, &web.RecordingRenderer{}, newTestLogger())
	svc.On("UpdateRole", mock.Anything, int64(4), "KING").Return(apperror.NewValidationError("Papel desconhecido: KING."))

	req := httptest.NewRequest(http.MethodPost, "/users/4/role", strings.NewReader("role=KING"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", "4")
	w := httptest.NewRecorder()
	h.UpdateRoleHandler(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/users?error="))
}

func TestDeleteHandler_ProtectedTargetLooksLikeSuccess(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, &web.RecordingRenderer{}, newTestLogger())
	// O service trata SUPER_ADMIN como no-op e devolve nil.
	svc.On("DeleteByID", mock.Anything, int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/users/1/delete", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.DeleteHandler(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))
}
