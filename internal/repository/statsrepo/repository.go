package statsrepo

import (
	"context"
	"database/sql"
	"time"

	"museum/internal/domain"
	"museum/internal/errors"
	"museum/internal/pkg/logger"
)

// StatsRepository executa as agregações de leitura do painel de estatísticas.
type StatsRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewStatsRepository cria e retorna uma nova instância do Repositório de Estatísticas.
func NewStatsRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *StatsRepository {
	return &StatsRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// VisitsPerExhibition conta as visitas de cada exposição. O LEFT JOIN mantém
// exposições sem visitas (contagem zero).
func (r *StatsRepository) VisitsPerExhibition(ctx context.Context) ([]domain.ExhibitionVisits, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT ex.id, ex.title, COUNT(v.id)
		FROM exhibitions ex
		LEFT JOIN visits v ON v.exhibition_id = ex.id
		GROUP BY ex.id, ex.title
		ORDER BY ex.title, ex.id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao agregar visitas por exposição.", err)
		return nil, errors.NewDBError("Falha ao agregar visitas", err)
	}
	defer rows.Close()

	out := []domain.ExhibitionVisits{}
	for rows.Next() {
		var ev domain.ExhibitionVisits
		if err := rows.Scan(&ev.ExhibitionID, &ev.Title, &ev.Visits); err != nil {
			return nil, errors.NewDBError("Falha ao ler agregação de visitas", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar agregação de visitas", err)
	}
	return out, nil
}

// ExhibitionsPerCurator conta as exposições de cada curador.
// DisplayName não é preenchido aqui.
func (r *StatsRepository) ExhibitionsPerCurator(ctx context.Context) ([]domain.CuratorLoad, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT curator_email, COUNT(*)
		FROM exhibitions
		GROUP BY curator_email
		ORDER BY curator_email`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao agregar exposições por curador.", err)
		return nil, errors.NewDBError("Falha ao agregar exposições por curador", err)
	}
	defer rows.Close()

	out := []domain.CuratorLoad{}
	for rows.Next() {
		var cl domain.CuratorLoad
		if err := rows.Scan(&cl.CuratorEmail, &cl.Exhibitions); err != nil {
			return nil, errors.NewDBError("Falha ao ler agregação por curador", err)
		}
		out = append(out, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar agregação por curador", err)
	}
	return out, nil
}
