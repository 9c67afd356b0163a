package exhibitrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"museum/internal/domain"
	"museum/internal/errors"
	"museum/internal/pkg/database"
	"museum/internal/pkg/logger"
)

// ExhibitRepository implementa o acesso à tabela exhibits.
// As leituras trazem o nome do salão por JOIN explícito.
type ExhibitRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewExhibitRepository cria e retorna uma nova instância do Repositório de Exponatos.
func NewExhibitRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ExhibitRepository {
	return &ExhibitRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const selectExhibit = `
	SELECT e.id, e.name, COALESCE(e.description, ''), e.author, e.creation_year, e.era, e.hall_id, h.name
	FROM exhibits e
	JOIN halls h ON h.id = e.hall_id`

func scanExhibit(s interface{ Scan(...interface{}) error }, e *domain.Exhibit) error {
	return s.Scan(&e.ID, &e.Name, &e.Description, &e.Author, &e.CreationYear, &e.Era, &e.HallID, &e.HallName)
}

func (r *ExhibitRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]domain.Exhibit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s de exponatos.", op), err)
		return nil, errors.NewDBError("Falha ao buscar exponatos", err)
	}
	defer rows.Close()

	exhibits := []domain.Exhibit{}
	for rows.Next() {
		var e domain.Exhibit
		if err := scanExhibit(rows, &e); err != nil {
			r.logger.Error("Falha ao escanear exponato.", err)
			return nil, errors.NewDBError("Falha ao ler exponatos", err)
		}
		exhibits = append(exhibits, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar exponatos", err)
	}

	r.logger.Debug("Exponatos listados.", map[string]interface{}{"op": op, "count": len(exhibits)})
	return exhibits, nil
}

// FindAll retorna todos os exponatos ordenados por id.
func (r *ExhibitRepository) FindAll(ctx context.Context) ([]domain.Exhibit, error) {
	return r.list(ctx, "FindAll", selectExhibit+` ORDER BY e.id`)
}

// FindByAuthorContaining busca por autor (substring, sem diferenciar maiúsculas).
func (r *ExhibitRepository) FindByAuthorContaining(ctx context.Context, author string) ([]domain.Exhibit, error) {
	return r.list(ctx, "FindByAuthorContaining", selectExhibit+` WHERE e.author ILIKE $1 ORDER BY e.id`, database.ContainsPattern(author))
}

// FindByEraContaining busca por época (substring, sem diferenciar maiúsculas).
func (r *ExhibitRepository) FindByEraContaining(ctx context.Context, era string) ([]domain.Exhibit, error) {
	return r.list(ctx, "FindByEraContaining", selectExhibit+` WHERE e.era ILIKE $1 ORDER BY e.id`, database.ContainsPattern(era))
}

// FindByAuthorAndEraContaining exige as duas correspondências.
func (r *ExhibitRepository) FindByAuthorAndEraContaining(ctx context.Context, author, era string) ([]domain.Exhibit, error) {
	return r.list(ctx, "FindByAuthorAndEraContaining",
		selectExhibit+` WHERE e.author ILIKE $1 AND e.era ILIKE $2 ORDER BY e.id`,
		database.ContainsPattern(author), database.ContainsPattern(era))
}

// FindByExhibitionID lista os exponatos associados a uma exposição.
func (r *ExhibitRepository) FindByExhibitionID(ctx context.Context, exhibitionID int64) ([]domain.Exhibit, error) {
	return r.list(ctx, "FindByExhibitionID",
		selectExhibit+` JOIN exhibition_exhibits ee ON ee.exhibit_id = e.id WHERE ee.exhibition_id = $1 ORDER BY e.name`,
		exhibitionID)
}

// FindByID busca um exponato. Retorna NotFoundError se não existir.
func (r *ExhibitRepository) FindByID(ctx context.Context, id int64) (domain.Exhibit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var e domain.Exhibit
	err := scanExhibit(r.DB.QueryRowContext(ctxTimeout, selectExhibit+` WHERE e.id = $1`, id), &e)
	if err == sql.ErrNoRows {
		r.logger.Debug("Exponato não encontrado.", map[string]interface{}{"exhibit_id": id})
		return domain.Exhibit{}, errors.NewNotFoundError(fmt.Sprintf("Exponato com ID %d não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar exponato no DB.", err)
		return domain.Exhibit{}, errors.NewDBError("Falha ao buscar exponato", err)
	}
	return e, nil
}

// Save insere (ID == 0) ou substitui por completo um exponato existente.
func (r *ExhibitRepository) Save(ctx context.Context, exhibit domain.Exhibit) (domain.Exhibit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if exhibit.ID == 0 {
		const insertSQL = `
			INSERT INTO exhibits (name, description, author, creation_year, era, hall_id)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		err := r.DB.QueryRowContext(ctxTimeout, insertSQL,
			exhibit.Name, exhibit.Description, exhibit.Author, exhibit.CreationYear, exhibit.Era, exhibit.HallID,
		).Scan(&exhibit.ID)
		if err != nil {
			return domain.Exhibit{}, r.writeError("inserir", err)
		}
		r.logger.Info("Exponato criado.", map[string]interface{}{"exhibit_id": exhibit.ID, "hall_id": exhibit.HallID})
		return exhibit, nil
	}

	const updateSQL = `
		UPDATE exhibits
		SET name = $1, description = $2, author = $3, creation_year = $4, era = $5, hall_id = $6
		WHERE id = $7`
	res, err := r.DB.ExecContext(ctxTimeout, updateSQL,
		exhibit.Name, exhibit.Description, exhibit.Author, exhibit.CreationYear, exhibit.Era, exhibit.HallID, exhibit.ID)
	if err != nil {
		return domain.Exhibit{}, r.writeError("atualizar", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Exhibit{}, errors.NewNotFoundError(fmt.Sprintf("Exponato com ID %d não encontrado.", exhibit.ID))
	}

	r.logger.Info("Exponato atualizado.", map[string]interface{}{"exhibit_id": exhibit.ID})
	return exhibit, nil
}

// DeleteByID remove o exponato (e, por cascata, suas associações). Id inexistente não é erro.
func (r *ExhibitRepository) DeleteByID(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM exhibits WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover exponato.", err)
		return errors.NewDBError("Falha ao remover exponato", err)
	}

	n, _ := res.RowsAffected()
	r.logger.Info("Remoção de exponato processada.", map[string]interface{}{"exhibit_id": id, "rows": n})
	return nil
}

func (r *ExhibitRepository) writeError(op string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return errors.NewValidationError("O salão informado não existe.")
	}
	r.logger.Error(fmt.Sprintf("Falha ao %s exponato.", op), err)
	return errors.NewDBError(fmt.Sprintf("Falha ao %s exponato", op), err)
}
