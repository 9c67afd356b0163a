package exhibition_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museum/internal/api/exhibition"
	"museum/internal/api/web"
	"museum/internal/domain"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/middleware"
)

type MockExhibitionService struct {
	mock.Mock
}

func (m *MockExhibitionService) FindAll(ctx context.Context) ([]domain.Exhibition, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Exhibition), args.Error(1)
}

func (m *MockExhibitionService) FindByID(ctx context.Context, id int64) (*domain.Exhibition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exhibition), args.Error(1)
}

func (m *MockExhibitionService) FindByCuratorEmail(ctx context.Context, email string) ([]domain.Exhibition, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Exhibition), args.Error(1)
}

func (m *MockExhibitionService) Save(ctx context.Context, e domain.Exhibition) (domain.Exhibition, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(domain.Exhibition), args.Error(1)
}

func (m *MockExhibitionService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCuratorDirectory struct {
	mock.Mock
}

func (m *MockCuratorDirectory) Exists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCuratorDirectory) FindGuides(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("debug")
}

func setup() (*exhibition.Handler, *MockExhibitionService, *MockCuratorDirectory, *web.RecordingRenderer) {
	svc := new(MockExhibitionService)
	curators := new(MockCuratorDirectory)
	rec := &web.RecordingRenderer{}
	return exhibition.NewHandler(svc, curators, rec, newTestLogger()), svc, curators, rec
}

func post(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func TestAddHandler_Success(t *testing.T) {
	h, svc, curators, _ := setup()
	curators.On("Exists", mock.Anything, "guia@museu.com").Return(true, nil)
	expected := domain.Exhibition{
		Title:        "Impressionismo",
		StartDate:    date("2024-01-10"),
		EndDate:      date("2024-03-10"),
		CuratorEmail: "guia@museu.com",
	}
	svc.On("Save", mock.Anything, expected).Return(domain.Exhibition{ID: 1}, nil)

	w := httptest.NewRecorder()
	h.AddHandler(w, post("/exhibitions/add", url.Values{
		"title": {"Impressionismo"}, "startDate": {"2024-01-10"}, "endDate": {"2024-03-10"},
		"curatorEmail": {"Guia@Museu.com"},
	}))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/exhibitions", w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestAddHandler_EndBeforeStart_NeverSaves(t *testing.T) {
	h, svc, curators, rec := setup()
	prior := []domain.Exhibition{{ID: 4, Title: "Antiga"}}
	svc.On("FindAll", mock.Anything).Return(prior, nil)
	curators.On("FindGuides", mock.Anything).Return([]domain.User{}, nil)

	w := httptest.NewRecorder()
	h.AddHandler(w, post("/exhibitions/add", url.Values{
		"title": {"Invertida"}, "startDate": {"2024-05-01"}, "endDate": {"2024-04-01"},
		"curatorEmail": {"guia@museu.com"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "exhibitions", rec.View)
	assert.Equal(t, prior, rec.Model["exhibitions"])
	assert.Contains(t, rec.Model["error"], "término")
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	curators.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestSaveHandler_UnknownCurator_NeverSaves(t *testing.T) {
	h, svc, curators, rec := setup()
	curators.On("Exists", mock.Anything, "ninguem@museu.com").Return(false, nil)
	curators.On("FindGuides", mock.Anything).Return([]domain.User{}, nil)
	svc.On("FindAll", mock.Anything).Return([]domain.Exhibition{}, nil)

	w := httptest.NewRecorder()
	h.SaveHandler(w, post("/exhibitions/save", url.Values{
		"id": {"3"}, "title": {"Barroco"}, "startDate": {"2024-01-01"}, "endDate": {"2024-02-01"},
		"curatorEmail": {"ninguem@museu.com"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "O curador informado não existe.", rec.Model["error"])
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddHandler_EmptyCurator_NeverSaves(t *testing.T) {
	h, svc, curators, rec := setup()
	prior := []domain.Exhibition{{ID: 4, Title: "Antiga", CuratorEmail: "guia@museu.com"}}
	svc.On("FindAll", mock.Anything).Return(prior, nil)
	curators.On("FindGuides", mock.Anything).Return([]domain.User{}, nil)

	w := httptest.NewRecorder()
	h.AddHandler(w, post("/exhibitions/add", url.Values{
		"title": {"Sem curador"}, "startDate": {"2024-01-01"}, "endDate": {"2024-02-01"},
		"curatorEmail": {""},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "exhibitions", rec.View)
	assert.Equal(t, prior, rec.Model["exhibitions"])
	assert.Contains(t, rec.Model["error"], "curatorEmail")
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSaveHandler_EmptyCurator_NeverSaves(t *testing.T) {
	h, svc, curators, rec := setup()
	svc.On("FindAll", mock.Anything).Return([]domain.Exhibition{}, nil)
	curators.On("FindGuides", mock.Anything).Return([]domain.User{}, nil)

	w := httptest.NewRecorder()
	h.SaveHandler(w, post("/exhibitions/save", url.Values{
		"id": {"3"}, "title": {"Barroco"}, "startDate": {"2024-01-01"}, "endDate": {"2024-02-01"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, rec.Model["error"], "obrigatório")
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEditHandler_UnknownID_RedirectsToList(t *testing.T) {
	h, svc, _, _ := setup()
	svc.On("FindByID", mock.Anything, int64(12)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/exhibitions/edit/12", nil)
	req.SetPathValue("id", "12")
	w := httptest.NewRecorder()
	h.EditHandler(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/exhibitions", w.Header().Get("Location"))
}

func TestMyExhibitionsHandler_UsesPrincipalEmail(t *testing.T) {
	h, svc, _, rec := setup()
	mine := []domain.Exhibition{{ID: 2, Title: "Modernismo", CuratorEmail: "guia@museu.com"}}
	svc.On("FindByCuratorEmail", mock.Anything, "guia@museu.com").Return(mine, nil)

	req := httptest.NewRequest(http.MethodGet, "/my-exhibitions", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), domain.Principal{UserID: 5, Email: "guia@museu.com", Role: domain.RoleGuide}))
	w := httptest.NewRecorder()
	h.MyExhibitionsHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "my-exhibitions", rec.View)
	assert.Equal(t, mine, rec.Model["exhibitions"])
}
