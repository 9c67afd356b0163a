package exhibitrepo_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
	"museum/internal/repository/exhibitrepo"
)

func newRepo(t *testing.T) (*exhibitrepo.ExhibitRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return exhibitrepo.NewExhibitRepository(db, time.Second, logger.NewLogger("debug")), mock
}

var exhibitColumns = []string{"id", "name", "description", "author", "creation_year", "era", "hall_id", "hall_name"}

func TestFindByAuthorAndEraContaining(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`e.author ILIKE $1 AND e.era ILIKE $2`)).
		WithArgs("%gogh%", "%impress%").
		WillReturnRows(sqlmock.NewRows(exhibitColumns).
			AddRow(1, "Girassóis", "", "Van Gogh", 1888, "Pós-impressionismo", 2, "Salão Azul"))

	exhibits, err := repo.FindByAuthorAndEraContaining(context.Background(), "gogh", "impress")

	require.NoError(t, err)
	require.Len(t, exhibits, 1)
	assert.Equal(t, "Salão Azul", exhibits[0].HallName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByExhibitionID_JoinsAssociation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN exhibition_exhibits ee ON ee.exhibit_id = e.id WHERE ee.exhibition_id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(exhibitColumns))

	exhibits, err := repo.FindByExhibitionID(context.Background(), 4)

	assert.NoError(t, err)
	assert.Empty(t, exhibits)
}

func TestSave_UpdateMissingIsNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE exhibits`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Save(context.Background(), domain.Exhibit{ID: 40, Name: "X", Author: "Y", Era: "Z", HallID: 1})

	assert.True(t, apperror.IsNotFound(err))
}

func TestSave_UnknownHallIsValidation(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO exhibits`)).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Save(context.Background(), domain.Exhibit{Name: "X", Author: "Y", Era: "Z", HallID: 77})

	assert.IsType(t, &apperror.ValidationError{}, err)
}
