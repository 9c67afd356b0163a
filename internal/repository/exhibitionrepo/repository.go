package exhibitionrepo

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

// ExhibitionRepository implementa o acesso às tabelas exhibitions e exhibition_exhibits.
type ExhibitionRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewExhibitionRepository cria e retorna uma nova instância do Repositório de Exposições.
func NewExhibitionRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ExhibitionRepository {
	return &ExhibitionRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const selectExhibition = `
	SELECT id, title, start_date, end_date, COALESCE(description, ''), curator_email
	FROM exhibitions`

func scanExhibition(s interface{ Scan(...interface{}) error }, e *domain.Exhibition) error {
	return s.Scan(&e.ID, &e.Title, &e.StartDate, &e.EndDate, &e.Description, &e.CuratorEmail)
}

func (r *ExhibitionRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]domain.Exhibition, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s de exposições.", op), err)
		return nil, errors.NewDBError("Falha ao buscar exposições", err)
	}
	defer rows.Close()

	exhibitions := []domain.Exhibition{}
	for rows.Next() {
		var e domain.Exhibition
		if err := scanExhibition(rows, &e); err != nil {
			r.logger.Error("Falha ao escanear exposição.", err)
			return nil, errors.NewDBError("Falha ao ler exposições", err)
		}
		exhibitions = append(exhibitions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar exposições", err)
	}

	r.logger.Debug("Exposições listadas.", map[string]interface{}{"op": op, "count": len(exhibitions)})
	return exhibitions, nil
}

// FindAll retorna todas as exposições ordenadas por data de início.
func (r *ExhibitionRepository) FindAll(ctx context.Context) ([]domain.Exhibition, error) {
	return r.list(ctx, "FindAll", selectExhibition+` ORDER BY start_date, id`)
}

// FindByCuratorEmail retorna as exposições de um curador.
func (r *ExhibitionRepository) FindByCuratorEmail(ctx context.Context, email string) ([]domain.Exhibition, error) {
	return r.list(ctx, "FindByCuratorEmail", selectExhibition+` WHERE curator_email = $1 ORDER BY start_date, id`, email)
}

// FindByTitle busca uma exposição pelo título exato (usado pela carga inicial).
func (r *ExhibitionRepository) FindByTitle(ctx context.Context, title string) (domain.Exhibition, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var e domain.Exhibition
	err := scanExhibition(r.DB.QueryRowContext(ctxTimeout, selectExhibition+` WHERE title = $1 ORDER BY id LIMIT 1`, title), &e)
	if err == sql.ErrNoRows {
		return domain.Exhibition{}, errors.NewNotFoundError(fmt.Sprintf("Exposição '%s' não encontrada.", title))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar exposição por título.", err)
		return domain.Exhibition{}, errors.NewDBError("Falha ao buscar exposição", err)
	}
	return e, nil
}

// FindByID busca uma exposição. Retorna NotFoundError se não existir.
func (r *ExhibitionRepository) FindByID(ctx context.Context, id int64) (domain.Exhibition, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var e domain.Exhibition
	err := scanExhibition(r.DB.QueryRowContext(ctxTimeout, selectExhibition+` WHERE id = $1`, id), &e)
	if err == sql.ErrNoRows {
		r.logger.Debug("Exposição não encontrada.", map[string]interface{}{"exhibition_id": id})
		return domain.Exhibition{}, errors.NewNotFoundError(fmt.Sprintf("Exposição com ID %d não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar exposição no DB.", err)
		return domain.Exhibition{}, errors.NewDBError("Falha ao buscar exposição", err)
	}
	return e, nil
}

// Save insere (ID == 0) ou substitui por completo uma exposição existente.
func (r *ExhibitionRepository) Save(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	start := exhibition.StartDate.Format(domain.DateLayout)
	end := exhibition.EndDate.Format(domain.DateLayout)

	if exhibition.ID == 0 {
		const insertSQL = `
			INSERT INTO exhibitions (title, start_date, end_date, description, curator_email)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`
		err := r.DB.QueryRowContext(ctxTimeout, insertSQL,
			exhibition.Title, start, end, exhibition.Description, exhibition.CuratorEmail,
		).Scan(&exhibition.ID)
		if err != nil {
			return domain.Exhibition{}, r.writeError("inserir", err)
		}
		r.logger.Info("Exposição criada.", map[string]interface{}{"exhibition_id": exhibition.ID, "curator": exhibition.CuratorEmail})
		return exhibition, nil
	}

	const updateSQL = `
		UPDATE exhibitions
		SET title = $1, start_date = $2, end_date = $3, description = $4, curator_email = $5
		WHERE id = $6`
	res, err := r.DB.ExecContext(ctxTimeout, updateSQL,
		exhibition.Title, start, end, exhibition.Description, exhibition.CuratorEmail, exhibition.ID)
	if err != nil {
		return domain.Exhibition{}, r.writeError("atualizar", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Exhibition{}, errors.NewNotFoundError(fmt.Sprintf("Exposição com ID %d não encontrada.", exhibition.ID))
	}

	r.logger.Info("Exposição atualizada.", map[string]interface{}{"exhibition_id": exhibition.ID})
	return exhibition, nil
}

// DeleteByID remove a exposição. Id inexistente não é erro; exposição com visitas gera ConflictError.
func (r *ExhibitionRepository) DeleteByID(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM exhibitions WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			r.logger.Info("Remoção de exposição bloqueada por visitas.", map[string]interface{}{"exhibition_id": id})
			return errors.NewConflictErrorWrap("A exposição possui visitas registradas e não pode ser removida.", err)
		}
		r.logger.Error("Falha ao remover exposição.", err)
		return errors.NewDBError("Falha ao remover exposição", err)
	}

	n, _ := res.RowsAffected()
	r.logger.Info("Remoção de exposição processada.", map[string]interface{}{"exhibition_id": id, "rows": n})
	return nil
}

// LinkExhibit associa um exponato a uma exposição numa única transação.
// As duas linhas-pai são travadas (FOR SHARE) antes do INSERT; associação repetida é ignorada.
func (r *ExhibitionRepository) LinkExhibit(ctx context.Context, link domain.ExhibitionExhibit) (err error) {
	r.logger.Debug("Associando exponato à exposição.", map[string]interface{}{"exhibition_id": link.ExhibitionID, "exhibit_id": link.ExhibitID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação de associação.", err)
		return errors.NewDBError("Falha ao iniciar transação", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("Falha ao reverter transação de associação.", rbErr)
			}
		}
	}()

	var id int64
	err = tx.QueryRowContext(ctxTimeout, `SELECT id FROM exhibitions WHERE id = $1 FOR SHARE`, link.ExhibitionID).Scan(&id)
	if err == sql.ErrNoRows {
		err = errors.NewNotFoundError(fmt.Sprintf("Exposição com ID %d não encontrada.", link.ExhibitionID))
		return err
	}
	if err != nil {
		err = errors.NewDBError("Falha ao travar exposição", err)
		return err
	}

	err = tx.QueryRowContext(ctxTimeout, `SELECT id FROM exhibits WHERE id = $1 FOR SHARE`, link.ExhibitID).Scan(&id)
	if err == sql.ErrNoRows {
		err = errors.NewNotFoundError(fmt.Sprintf("Exponato com ID %d não encontrado.", link.ExhibitID))
		return err
	}
	if err != nil {
		err = errors.NewDBError("Falha ao travar exponato", err)
		return err
	}

	const insertSQL = `
		INSERT INTO exhibition_exhibits (exhibition_id, exhibit_id)
		VALUES ($1, $2)
		ON CONFLICT (exhibition_id, exhibit_id) DO NOTHING`
	if _, err = tx.ExecContext(ctxTimeout, insertSQL, link.ExhibitionID, link.ExhibitID); err != nil {
		r.logger.Error("Falha ao inserir associação.", err)
		err = errors.NewDBError("Falha ao inserir associação", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		r.logger.Error("Falha ao confirmar transação de associação.", err)
		err = errors.NewDBError("Falha ao confirmar associação", err)
		return err
	}

	r.logger.Info("Exponato associado à exposição.", map[string]interface{}{"exhibition_id": link.ExhibitionID, "exhibit_id": link.ExhibitID})
	return nil
}

// UnlinkExhibit desfaz a associação. Par inexistente não é erro.
func (r *ExhibitionRepository) UnlinkExhibit(ctx context.Context, link domain.ExhibitionExhibit) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	_, err := r.DB.ExecContext(ctxTimeout,
		`DELETE FROM exhibition_exhibits WHERE exhibition_id = $1 AND exhibit_id = $2`,
		link.ExhibitionID, link.ExhibitID)
	if err != nil {
		r.logger.Error("Falha ao remover associação.", err)
		return errors.NewDBError("Falha ao remover associação", err)
	}

	r.logger.Info("Associação removida.", map[string]interface{}{"exhibition_id": link.ExhibitionID, "exhibit_id": link.ExhibitID})
	return nil
}

func (r *ExhibitionRepository) writeError(op string, err error) error {
	switch {
	case database.IsCheckViolation(err):
		return errors.NewValidationError("A data de término não pode ser anterior à data de início.")
	case database.IsForeignKeyViolation(err):
		return errors.NewValidationError("O curador informado não existe.")
	}
	r.logger.Error(fmt.Sprintf("Falha ao %s exposição.", op), err)
	return errors.NewDBError(fmt.Sprintf("Falha ao %s exposição", op), err)
}
