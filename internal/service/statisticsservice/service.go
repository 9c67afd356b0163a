package statisticsservice

import (
	"context"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

// StatsRepository define as agregações necessárias ao painel.
type StatsRepository interface {
	VisitsPerExhibition(ctx context.Context) ([]domain.ExhibitionVisits, error)
	ExhibitionsPerCurator(ctx context.Context) ([]domain.CuratorLoad, error)
}

// UserLookup resolve o email do curador para o nome exibido.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// Service monta as estatísticas. Sem cache: cada chamada consulta o banco.
type Service struct {
	stats  StatsRepository
	users  UserLookup
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estatísticas.
func NewService(stats StatsRepository, users UserLookup, logger logger.Logger) *Service {
	return &Service{stats: stats, users: users, logger: logger}
}

// Compute devolve visitas por exposição (inclusive as com zero visitas) e
// exposições por curador, com o nome do curador resolvido. Curador sem
// cadastro aparece pelo próprio email.
func (s *Service) Compute(ctx context.Context) (domain.Statistics, error) {
	byExhibition, err := s.stats.VisitsPerExhibition(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}

	byCurator, err := s.stats.ExhibitionsPerCurator(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}

	for i := range byCurator {
		byCurator[i].DisplayName = byCurator[i].CuratorEmail

		user, err := s.users.FindByEmail(ctx, byCurator[i].CuratorEmail)
		if err != nil {
			if apperror.IsNotFound(err) {
				continue
			}
			return domain.Statistics{}, err
		}
		byCurator[i].DisplayName = user.DisplayName()
	}

	s.logger.Debug("Estatísticas calculadas.", map[string]interface{}{"exhibitions": len(byExhibition), "curators": len(byCurator)})
	return domain.Statistics{ByExhibition: byExhibition, ByCurator: byCurator}, nil
}
