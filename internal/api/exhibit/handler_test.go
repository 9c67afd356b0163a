package exhibit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museum/internal/api/exhibit"
	"museum/internal/api/web"
	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

type MockExhibitService struct {
	mock.Mock
}

func (m *MockExhibitService) FindAll(ctx context.Context) ([]domain.Exhibit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Exhibit), args.Error(1)
}

func (m *MockExhibitService) FindByID(ctx context.Context, id int64) (*domain.Exhibit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exhibit), args.Error(1)
}

func (m *MockExhibitService) Save(ctx context.Context, e domain.Exhibit) (domain.Exhibit, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(domain.Exhibit), args.Error(1)
}

func (m *MockExhibitService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExhibitService) SearchByAuthorAndEra(ctx context.Context, author, era string) ([]domain.Exhibit, error) {
	args := m.Called(ctx, author, era)
	return args.Get(0).([]domain.Exhibit), args.Error(1)
}

type MockHallLister struct {
	mock.Mock
}

func (m *MockHallLister) FindAll(ctx context.Context) ([]domain.Hall, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hall), args.Error(1)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("debug")
}

func setup() (*exhibit.Handler, *MockExhibitService, *MockHallLister, *web.RecordingRenderer) {
	svc := new(MockExhibitService)
	halls := new(MockHallLister)
	rec := &web.RecordingRenderer{}
	return exhibit.NewHandler(svc, halls, rec, newTestLogger()), svc, halls, rec
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestListHandler_PassesFiltersToSearch(t *testing.T) {
	h, svc, halls, rec := setup()
	found := []domain.Exhibit{{ID: 1, Name: "Noite Estrelada", Author: "Van Gogh"}}
	svc.On("SearchByAuthorAndEra", mock.Anything, "gogh", "").Return(found, nil)
	halls.On("FindAll", mock.Anything).Return([]domain.Hall{{ID: 1, Name: "Salão A"}}, nil)

	w := httptest.NewRecorder()
	h.ListHandler(w, httptest.NewRequest(http.MethodGet, "/exhibits?author=gogh", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "exhibits", rec.View)
	assert.Equal(t, found, rec.Model["exhibits"])
	assert.Equal(t, "gogh", rec.Model["author"])
	svc.AssertExpectations(t)
}

func TestAddHandler_Success_Redirects(t *testing.T) {
	h, svc, _, _ := setup()
	expected := domain.Exhibit{Name: "Vaso", Author: "Desconhecido", CreationYear: 1500, Era: "Renascimento", HallID: 2}
	svc.On("Save", mock.Anything, expected).Return(domain.Exhibit{ID: 9}, nil)

	form := url.Values{
		"id": {"77"}, "name": {"Vaso"}, "author": {"Desconhecido"},
		"creationYear": {"1500"}, "era": {"Renascimento"}, "hallId": {"2"},
	}
	w := httptest.NewRecorder()
	h.AddHandler(w, postForm("/exhibits/add", form))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/exhibits", w.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestAddHandler_MissingFields_RerendersWithoutSaving(t *testing.T) {
	h, svc, halls, rec := setup()
	svc.On("FindAll", mock.Anything).Return([]domain.Exhibit{}, nil)
	halls.On("FindAll", mock.Anything).Return([]domain.Hall{}, nil)

	w := httptest.NewRecorder()
	h.AddHandler(w, postForm("/exhibits/add", url.Values{"name": {"Vaso"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "exhibits", rec.View)
	assert.NotEmpty(t, rec.Model["error"])
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEditHandler_UnknownID_RedirectsToList(t *testing.T) {
	h, svc, _, _ := setup()
	svc.On("FindByID", mock.Anything, int64(5)).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/exhibits/edit/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()
	h.EditHandler(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/exhibits", w.Header().Get("Location"))
}

func TestEditHandler_Found_RendersForm(t *testing.T) {
	h, svc, halls, rec := setup()
	e := &domain.Exhibit{ID: 5, Name: "Busto", HallID: 1}
	svc.On("FindByID", mock.Anything, int64(5)).Return(e, nil)
	halls.On("FindAll", mock.Anything).Return([]domain.Hall{{ID: 1}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/exhibits/edit/5", nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()
	h.EditHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "exhibit-edit", rec.View)
	assert.Equal(t, *e, rec.Model["form"])
}

func TestSaveHandler_NotFound_RedirectsToList(t *testing.T) {
	h, svc, _, _ := setup()
	svc.On("Save", mock.Anything, mock.AnythingOfType("domain.Exhibit")).
		Return(domain.Exhibit{}, apperror.NewNotFoundError("Exponato não encontrado."))

	form := url.Values{"id": {"404"}, "name": {"X"}, "author": {"Y"}, "era": {"Z"}, "hallId": {"1"}}
	w := httptest.NewRecorder()
	h.SaveHandler(w, postForm("/exhibits/save", form))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/exhibits", w.Header().Get("Location"))
}

func TestDeleteHandler_DeletesAndRedirects(t *testing.T) {
	h, svc, _, _ := setup()
	svc.On("DeleteByID", mock.Anything, int64(3)).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/exhibits/delete/3", nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()
	h.DeleteHandler(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	svc.AssertExpectations(t)
}
