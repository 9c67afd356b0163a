package visitrepo

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

// VisitRepository implementa o acesso à tabela visits.
type VisitRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewVisitRepository cria e retorna uma nova instância do Repositório de Visitas.
func NewVisitRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *VisitRepository {
	return &VisitRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const selectVisit = `
	SELECT v.id, v.visitor_email, v.visit_date, v.exhibition_id, ex.title
	FROM visits v
	JOIN exhibitions ex ON ex.id = v.exhibition_id`

// orderBy devolve a cláusula de ordenação pelo título da exposição.
// Apenas os dois valores conhecidos chegam ao SQL.
func orderBy(dir domain.SortDirection) string {
	if dir == domain.SortDesc {
		return ` ORDER BY ex.title DESC, v.id`
	}
	return ` ORDER BY ex.title ASC, v.id`
}

func (r *VisitRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]domain.Visit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s de visitas.", op), err)
		return nil, errors.NewDBError("Falha ao buscar visitas", err)
	}
	defer rows.Close()

	visits := []domain.Visit{}
	for rows.Next() {
		var v domain.Visit
		if err := rows.Scan(&v.ID, &v.VisitorEmail, &v.VisitDate, &v.ExhibitionID, &v.ExhibitionTitle); err != nil {
			r.logger.Error("Falha ao escanear visita.", err)
			return nil, errors.NewDBError("Falha ao ler visitas", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar visitas", err)
	}

	r.logger.Debug("Visitas listadas.", map[string]interface{}{"op": op, "count": len(visits)})
	return visits, nil
}

// FindAll retorna o registro completo de visitas na ordem de inserção.
func (r *VisitRepository) FindAll(ctx context.Context) ([]domain.Visit, error) {
	return r.list(ctx, "FindAll", selectVisit+` ORDER BY v.id`)
}

// FindAllSorted retorna todas as visitas ordenadas pelo título da exposição.
func (r *VisitRepository) FindAllSorted(ctx context.Context, dir domain.SortDirection) ([]domain.Visit, error) {
	return r.list(ctx, "FindAllSorted", selectVisit+orderBy(dir))
}

// FindByVisitorEmail retorna as visitas de um visitante, ordenadas pelo título da exposição.
func (r *VisitRepository) FindByVisitorEmail(ctx context.Context, email string, dir domain.SortDirection) ([]domain.Visit, error) {
	return r.list(ctx, "FindByVisitorEmail", selectVisit+` WHERE v.visitor_email = $1`+orderBy(dir), email)
}

// FindByID busca uma visita. Retorna NotFoundError se não existir.
func (r *VisitRepository) FindByID(ctx context.Context, id int64) (domain.Visit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var v domain.Visit
	err := r.DB.QueryRowContext(ctxTimeout, selectVisit+` WHERE v.id = $1`, id).
		Scan(&v.ID, &v.VisitorEmail, &v.VisitDate, &v.ExhibitionID, &v.ExhibitionTitle)
	if err == sql.ErrNoRows {
		return domain.Visit{}, errors.NewNotFoundError(fmt.Sprintf("Visita com ID %d não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar visita no DB.", err)
		return domain.Visit{}, errors.NewDBError("Falha ao buscar visita", err)
	}
	return v, nil
}

// Save insere (ID == 0) ou substitui uma visita.
func (r *VisitRepository) Save(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if visit.ID == 0 {
		const insertSQL = `INSERT INTO visits (visitor_email, visit_date, exhibition_id) VALUES ($1, $2, $3) RETURNING id`
		err := r.DB.QueryRowContext(ctxTimeout, insertSQL, visit.VisitorEmail, visit.VisitDate, visit.ExhibitionID).Scan(&visit.ID)
		if err != nil {
			return domain.Visit{}, r.writeError("inserir", err)
		}
		r.logger.Info("Visita registrada.", map[string]interface{}{"visit_id": visit.ID, "exhibition_id": visit.ExhibitionID, "visitor": visit.VisitorEmail})
		return visit, nil
	}

	const updateSQL = `UPDATE visits SET visitor_email = $1, visit_date = $2, exhibition_id = $3 WHERE id = $4`
	res, err := r.DB.ExecContext(ctxTimeout, updateSQL, visit.VisitorEmail, visit.VisitDate, visit.ExhibitionID, visit.ID)
	if err != nil {
		return domain.Visit{}, r.writeError("atualizar", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Visit{}, errors.NewNotFoundError(fmt.Sprintf("Visita com ID %d não encontrada.", visit.ID))
	}
	return visit, nil
}

// DeleteByID remove a visita. Id inexistente não é erro.
func (r *VisitRepository) DeleteByID(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if _, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM visits WHERE id = $1`, id); err != nil {
		r.logger.Error("Falha ao remover visita.", err)
		return errors.NewDBError("Falha ao remover visita", err)
	}
	r.logger.Info("Remoção de visita processada.", map[string]interface{}{"visit_id": id})
	return nil
}

func (r *VisitRepository) writeError(op string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return errors.NewValidationError("A exposição informada não existe.")
	}
	r.logger.Error(fmt.Sprintf("Falha ao %s visita.", op), err)
	return errors.NewDBError(fmt.Sprintf("Falha ao %s visita", op), err)
}
