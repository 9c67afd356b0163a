package exhibitionservice

import (
	"context"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
)

// ExhibitionRepository define o contrato que o Serviço de Exposições espera da camada de Persistência.
type ExhibitionRepository interface {
	FindAll(ctx context.Context) ([]domain.Exhibition, error)
	FindByID(ctx context.Context, id int64) (domain.Exhibition, error)
	FindByCuratorEmail(ctx context.Context, email string) ([]domain.Exhibition, error)
	Save(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error)
	DeleteByID(ctx context.Context, id int64) error
	LinkExhibit(ctx context.Context, link domain.ExhibitionExhibit) error
	UnlinkExhibit(ctx context.Context, link domain.ExhibitionExhibit) error
}

// ExhibitLister lista os exponatos associados a uma exposição.
type ExhibitLister interface {
	FindByExhibitionID(ctx context.Context, exhibitionID int64) ([]domain.Exhibit, error)
}

// Service implementa as operações de exposições. A validação de datas e do
// curador é feita por quem chama (handler), antes de Save.
type Service struct {
	repo     ExhibitionRepository
	exhibits ExhibitLister
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Exposições.
func NewService(repo ExhibitionRepository, exhibits ExhibitLister, logger logger.Logger) *Service {
	return &Service{repo: repo, exhibits: exhibits, logger: logger}
}

func (s *Service) FindAll(ctx context.Context) ([]domain.Exhibition, error) {
	return s.repo.FindAll(ctx)
}

// FindByID devolve nil (sem erro) quando a exposição não existe.
func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Exhibition, error) {
	exhibition, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &exhibition, nil
}

// FindByCuratorEmail lista as exposições sob responsabilidade do curador.
func (s *Service) FindByCuratorEmail(ctx context.Context, email string) ([]domain.Exhibition, error) {
	return s.repo.FindByCuratorEmail(ctx, email)
}

func (s *Service) Save(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error) {
	s.logger.Debug("Salvando exposição.", map[string]interface{}{"exhibition_id": exhibition.ID, "title": exhibition.Title})
	return s.repo.Save(ctx, exhibition)
}

// DeleteByID remove a exposição; id inexistente não é erro.
func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// ListExhibits devolve os exponatos associados à exposição.
func (s *Service) ListExhibits(ctx context.Context, exhibitionID int64) ([]domain.Exhibit, error) {
	return s.exhibits.FindByExhibitionID(ctx, exhibitionID)
}

// LinkExhibit associa o exponato à exposição. Associação repetida não é erro.
func (s *Service) LinkExhibit(ctx context.Context, exhibitionID, exhibitID int64) error {
	if exhibitionID <= 0 || exhibitID <= 0 {
		return apperror.NewValidationError("Selecione uma exposição e um exponato válidos.")
	}
	return s.repo.LinkExhibit(ctx, domain.ExhibitionExhibit{ExhibitionID: exhibitionID, ExhibitID: exhibitID})
}

// UnlinkExhibit desfaz a associação.
func (s *Service) UnlinkExhibit(ctx context.Context, exhibitionID, exhibitID int64) error {
	return s.repo.UnlinkExhibit(ctx, domain.ExhibitionExhibit{ExhibitionID: exhibitionID, ExhibitID: exhibitID})
}
