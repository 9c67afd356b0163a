package userrepo

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

// UserRepository implementa o acesso à tabela users.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria e retorna uma nova instância do Repositório de Usuários.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const selectUser = `SELECT id, email, password, role, full_name, created_at FROM users`

func scanUser(s interface{ Scan(...interface{}) error }, u *domain.User) error {
	var role string
	if err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.FullName, &u.CreatedAt); err != nil {
		return err
	}
	u.Role = domain.Role(role)
	return nil
}

func (r *UserRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s de usuários.", op), err)
		return nil, errors.NewDBError("Falha ao buscar usuários", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			r.logger.Error("Falha ao escanear usuário.", err)
			return nil, errors.NewDBError("Falha ao ler usuários", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar usuários", err)
	}
	return users, nil
}

// FindAll retorna todos os usuários ordenados por id.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, "FindAll", selectUser+` ORDER BY id`)
}

// FindByRole retorna os usuários de um papel, ordenados pelo nome.
func (r *UserRepository) FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return r.list(ctx, "FindByRole", selectUser+` WHERE role = $1 ORDER BY full_name, id`, string(role))
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg interface{}, notFound string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var u domain.User
	err := scanUser(r.DB.QueryRowContext(ctxTimeout, selectUser+where, arg), &u)
	if err == sql.ErrNoRows {
		r.logger.Debug("Usuário não encontrado.", map[string]interface{}{"key": arg})
		return domain.User{}, errors.NewNotFoundError(notFound)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar usuário no DB.", err)
		return domain.User{}, errors.NewDBError("Falha ao buscar usuário", err)
	}
	return u, nil
}

// FindByID busca um usuário pelo id.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	return r.findOne(ctx, ` WHERE id = $1`, id, fmt.Sprintf("Usuário com ID %d não encontrado.", id))
}

// FindByEmail busca um usuário pelo email (comparação exata).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, ` WHERE email = $1`, email, fmt.Sprintf("Usuário com email %s não encontrado.", email))
}

// Save insere um novo usuário. Email já cadastrado gera ConflictError.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `
		INSERT INTO users (email, password, role, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctxTimeout, insertSQL, user.Email, user.PasswordHash, string(user.Role), user.FullName).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			r.logger.Info("Tentativa de cadastro com email duplicado.", map[string]interface{}{"email": user.Email})
			return domain.User{}, errors.NewConflictErrorWrap("Já existe um usuário com este email.", err)
		}
		r.logger.Error("Falha ao inserir usuário.", err)
		return domain.User{}, errors.NewDBError("Falha ao inserir usuário", err)
	}

	r.logger.Info("Usuário criado.", map[string]interface{}{"user_id": user.ID, "email": user.Email, "role": user.Role})
	return user, nil
}

// UpdateRole altera o papel. Contas SUPER_ADMIN nunca são alteradas: o
// retorno informa se alguma linha mudou.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE users SET role = $1 WHERE id = $2 AND role <> 'SUPER_ADMIN'`, string(role), id)
	if err != nil {
		r.logger.Error("Falha ao atualizar papel do usuário.", err)
		return false, errors.NewDBError("Falha ao atualizar papel", err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}

// DeleteByID remove o usuário, exceto contas SUPER_ADMIN. Um curador com
// exposições atribuídas gera ConflictError.
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM users WHERE id = $1 AND role <> 'SUPER_ADMIN'`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, errors.NewConflictErrorWrap("O usuário é curador de exposições e não pode ser removido.", err)
		}
		r.logger.Error("Falha ao remover usuário.", err)
		return false, errors.NewDBError("Falha ao remover usuário", err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}
