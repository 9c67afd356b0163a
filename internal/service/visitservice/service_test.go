package visitservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
	"museum/internal/service/visitservice"
)

// MockVisitRepository é uma implementação mock da interface VisitRepository
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) FindAll(ctx context.Context) ([]domain.Visit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) FindAllSorted(ctx context.Context, dir domain.SortDirection) ([]domain.Visit, error) {
	args := m.Called(ctx, dir)
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) FindByVisitorEmail(ctx context.Context, email string, dir domain.SortDirection) ([]domain.Visit, error) {
	args := m.Called(ctx, email, dir)
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) FindByID(ctx context.Context, id int64) (domain.Visit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) Save(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	args := m.Called(ctx, visit)
	return args.Get(0).(domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.NewLogger("debug")
}

func TestSave_DefaultsVisitDate(t *testing.T) {
	mockRepo := new(MockVisitRepository)
	svc := visitservice.NewService(mockRepo, newTestLogger())
	before := time.Now()

	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(v domain.Visit) bool {
		return v.VisitorEmail == "visitor@museum.com" && v.ExhibitionID == 3 && !v.VisitDate.Before(before)
	})).Return(domain.Visit{ID: 10}, nil)

	saved, err := svc.Save(context.Background(), domain.Visit{VisitorEmail: "visitor@museum.com", ExhibitionID: 3})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)
	mockRepo.AssertExpectations(t)
}

func TestSave_KeepsExplicitDate(t *testing.T) {
	mockRepo := new(MockVisitRepository)
	svc := visitservice.NewService(mockRepo, newTestLogger())
	when := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mockRepo.On("Save", mock.Anything, domain.Visit{VisitorEmail: "v@museum.com", ExhibitionID: 1, VisitDate: when}).
		Return(domain.Visit{ID: 1}, nil)

	_, err := svc.Save(context.Background(), domain.Visit{VisitorEmail: "v@museum.com", ExhibitionID: 1, VisitDate: when})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSave_RequiresExhibition(t *testing.T) {
	mockRepo := new(MockVisitRepository)
	svc := visitservice.NewService(mockRepo, newTestLogger())

	_, err := svc.Save(context.Background(), domain.Visit{VisitorEmail: "v@museum.com"})

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFindByVisitorEmail_PassesDirection(t *testing.T) {
	mockRepo := new(MockVisitRepository)
	svc := visitservice.NewService(mockRepo, newTestLogger())
	own := []domain.Visit{{ID: 1, VisitorEmail: "v@museum.com"}}

	mockRepo.On("FindByVisitorEmail", mock.Anything, "v@museum.com", domain.SortDesc).Return(own, nil)

	got, err := svc.FindByVisitorEmail(context.Background(), "v@museum.com", domain.SortDesc)

	assert.NoError(t, err)
	assert.Equal(t, own, got)
	mockRepo.AssertExpectations(t)
}

func TestFindAllSorted(t *testing.T) {
	mockRepo := new(MockVisitRepository)
	svc := visitservice.NewService(mockRepo, newTestLogger())

	asc := []domain.Visit{{ExhibitionTitle: "A"}, {ExhibitionTitle: "B"}}
	desc := []domain.Visit{{ExhibitionTitle: "B"}, {ExhibitionTitle: "A"}}
	mockRepo.On("FindAllSorted", mock.Anything, domain.SortAsc).Return(asc, nil)
	mockRepo.On("FindAllSorted", mock.Anything, domain.SortDesc).Return(desc, nil)

	gotAsc, _ := svc.FindAllSorted(context.Background(), domain.SortAsc)
	gotDesc, _ := svc.FindAllSorted(context.Background(), domain.SortDesc)

	assert.Equal(t, gotAsc[0].ExhibitionTitle, gotDesc[len(gotDesc)-1].ExhibitionTitle)
	mockRepo.AssertExpectations(t)
}

func TestFindByID_Miss(t *testing.T) {
	mockRepo := new(MockVisitRepository)
	svc := visitservice.NewService(mockRepo, newTestLogger())

	mockRepo.On("FindByID", mock.Anything, int64(5)).Return(domain.Visit{}, apperror.NewNotFoundError("x"))

	got, err := svc.FindByID(context.Background(), 5)

	assert.NoError(t, err)
	assert.Nil(t, got)
}
