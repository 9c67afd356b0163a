package hallrepo

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

// HallRepository implementa o acesso à tabela halls.
type HallRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewHallRepository cria e retorna uma nova instância do Repositório de Salões.
func NewHallRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *HallRepository {
	return &HallRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const selectHall = `SELECT id, name, floor, capacity, COALESCE(description, '') FROM halls`

func scanHalls(rows *sql.Rows) ([]domain.Hall, error) {
	halls := []domain.Hall{}
	for rows.Next() {
		var h domain.Hall
		if err := rows.Scan(&h.ID, &h.Name, &h.Floor, &h.Capacity, &h.Description); err != nil {
			return nil, err
		}
		halls = append(halls, h)
	}
	return halls, rows.Err()
}

func (r *HallRepository) query(ctx context.Context, op string, query string, args ...interface{}) ([]domain.Hall, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s de salões.", op), err)
		return nil, errors.NewDBError("Falha ao buscar salões", err)
	}
	defer rows.Close()

	halls, err := scanHalls(rows)
	if err != nil {
		r.logger.Error("Falha ao escanear salões.", err)
		return nil, errors.NewDBError("Falha ao ler salões", err)
	}

	r.logger.Debug("Salões listados.", map[string]interface{}{"op": op, "count": len(halls)})
	return halls, nil
}

// FindAll retorna todos os salões ordenados por id.
func (r *HallRepository) FindAll(ctx context.Context) ([]domain.Hall, error) {
	return r.query(ctx, "FindAll", selectHall+` ORDER BY id`)
}

// FindByNameContaining busca salões cujo nome contém o texto, sem diferenciar maiúsculas.
func (r *HallRepository) FindByNameContaining(ctx context.Context, name string) ([]domain.Hall, error) {
	return r.query(ctx, "FindByNameContaining", selectHall+` WHERE name ILIKE $1 ORDER BY id`, database.ContainsPattern(name))
}

// FindByFloor busca salões de um andar (igualdade exata).
func (r *HallRepository) FindByFloor(ctx context.Context, floor int) ([]domain.Hall, error) {
	return r.query(ctx, "FindByFloor", selectHall+` WHERE floor = $1 ORDER BY id`, floor)
}

// FindByNameContainingAndFloor combina os dois filtros.
func (r *HallRepository) FindByNameContainingAndFloor(ctx context.Context, name string, floor int) ([]domain.Hall, error) {
	return r.query(ctx, "FindByNameContainingAndFloor",
		selectHall+` WHERE name ILIKE $1 AND floor = $2 ORDER BY id`, database.ContainsPattern(name), floor)
}

// FindByID busca um salão. Retorna NotFoundError se não existir.
func (r *HallRepository) FindByID(ctx context.Context, id int64) (domain.Hall, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var h domain.Hall
	err := r.DB.QueryRowContext(ctxTimeout, selectHall+` WHERE id = $1`, id).
		Scan(&h.ID, &h.Name, &h.Floor, &h.Capacity, &h.Description)
	if err == sql.ErrNoRows {
		r.logger.Debug("Salão não encontrado.", map[string]interface{}{"hall_id": id})
		return domain.Hall{}, errors.NewNotFoundError(fmt.Sprintf("Salão com ID %d não encontrado.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar salão no DB.", err)
		return domain.Hall{}, errors.NewDBError("Falha ao buscar salão", err)
	}
	return h, nil
}

// Save insere (ID == 0) ou substitui por completo um salão existente.
func (r *HallRepository) Save(ctx context.Context, hall domain.Hall) (domain.Hall, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if hall.ID == 0 {
		const insertSQL = `INSERT INTO halls (name, floor, capacity, description) VALUES ($1, $2, $3, $4) RETURNING id`
		err := r.DB.QueryRowContext(ctxTimeout, insertSQL, hall.Name, hall.Floor, hall.Capacity, hall.Description).Scan(&hall.ID)
		if err != nil {
			return domain.Hall{}, r.writeError("inserir", err)
		}
		r.logger.Info("Salão criado.", map[string]interface{}{"hall_id": hall.ID, "name": hall.Name})
		return hall, nil
	}

	const updateSQL = `UPDATE halls SET name = $1, floor = $2, capacity = $3, description = $4 WHERE id = $5`
	res, err := r.DB.ExecContext(ctxTimeout, updateSQL, hall.Name, hall.Floor, hall.Capacity, hall.Description, hall.ID)
	if err != nil {
		return domain.Hall{}, r.writeError("atualizar", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Hall{}, errors.NewNotFoundError(fmt.Sprintf("Salão com ID %d não encontrado.", hall.ID))
	}

	r.logger.Info("Salão atualizado.", map[string]interface{}{"hall_id": hall.ID})
	return hall, nil
}

// DeleteByID remove o salão. Id inexistente não é erro; salão com exponatos gera ConflictError.
func (r *HallRepository) DeleteByID(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM halls WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			r.logger.Info("Remoção de salão bloqueada por exponatos.", map[string]interface{}{"hall_id": id})
			return errors.NewConflictErrorWrap("O salão possui exponatos e não pode ser removido.", err)
		}
		r.logger.Error("Falha ao remover salão.", err)
		return errors.NewDBError("Falha ao remover salão", err)
	}

	n, _ := res.RowsAffected()
	r.logger.Info("Remoção de salão processada.", map[string]interface{}{"hall_id": id, "rows": n})
	return nil
}

func (r *HallRepository) writeError(op string, err error) error {
	if database.IsCheckViolation(err) {
		return errors.NewValidationError("A capacidade do salão deve ser maior que zero.")
	}
	r.logger.Error(fmt.Sprintf("Falha ao %s salão.", op), err)
	return errors.NewDBError(fmt.Sprintf("Falha ao %s salão", op), err)
}
