// Package bootstrap grava os dados padrão do museu na primeira inicialização.
package bootstrap

import (
	"context"
	"time"

	"museum/internal/domain"
	apperror "museum/internal/errors"
	"museum/internal/pkg/logger"
	"museum/internal/pkg/password"
)

// UserStore é o subconjunto do repositório de usuários usado pela carga inicial.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
}

// ExhibitionStore é o subconjunto do repositório de exposições usado pela carga inicial.
type ExhibitionStore interface {
	FindByTitle(ctx context.Context, title string) (domain.Exhibition, error)
	Save(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error)
}

type account struct {
	Email    string
	Password string
	Role     domain.Role
	FullName string
}

type permanent struct {
	Title       string
	Description string
	Curator     string
}

var accounts = []account{
	{"guide1@museum.com", "guidepass", domain.RoleGuide, "André Semenov Krijanov"},
	{"guide2@museum.com", "guidepass", domain.RoleGuide, "Tatiana Ivanovna Kim"},
	{"guide3@museum.com", "guidepass", domain.RoleGuide, "Semion Mikhailovich Grigoriev"},
	{"guide4@museum.com", "guidepass", domain.RoleGuide, "Igor Maksimovich Ivanov"},
	{"guide5@museum.com", "guidepass", domain.RoleGuide, "Oleg Vadimovich Samborski"},
	{"guide6@museum.com", "guidepass", domain.RoleGuide, "Ekaterina Vitalievna Krasnova"},
	{"superadmin@museum.com", "superpass", domain.RoleSuperAdmin, "Super Administrador"},
	{"admin@museum.com", "adminpass", domain.RoleAdmin, "Administrador"},
	{"visitor@museum.com", "visitorpass", domain.RoleVisitor, "Visitante"},
}

var permanents = []permanent{
	{"Permanente: Botânica através dos séculos", "Coleção de herbários dos séculos XVIII a XX", "guide1@museum.com"},
	{"Permanente: Estufa tropical", "Plantas vivas de todo o mundo", "guide2@museum.com"},
	{"Permanente: Evolução das plantas", "Das samambaias às plantas com flores", "guide3@museum.com"},
	{"Permanente: Plantas medicinais", "Da fitoterapia à farmacologia moderna", "guide4@museum.com"},
	{"Permanente: Árvores centenárias", "História e ecologia das plantas longevas", "guide5@museum.com"},
	{"Permanente: Plantas na cultura e na arte", "O verde lado a lado com a cultura", "guide6@museum.com"},
}

var (
	permanentStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	permanentEnd   = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Seeder cria as contas padrão e as exposições permanentes. Pode ser
// executado a cada inicialização: emails e títulos existentes são ignorados.
type Seeder struct {
	users       UserStore
	exhibitions ExhibitionStore
	hasher      password.Hasher
	logger      logger.Logger
}

func NewSeeder(users UserStore, exhibitions ExhibitionStore, hasher password.Hasher, log logger.Logger) *Seeder {
	return &Seeder{users: users, exhibitions: exhibitions, hasher: hasher, logger: log}
}

// Run grava o que falta. Retorna quantos usuários e exposições foram criados.
func (s *Seeder) Run(ctx context.Context) (int, int, error) {
	users := 0
	for _, a := range accounts {
		created, err := s.ensureUser(ctx, a)
		if err != nil {
			return users, 0, err
		}
		if created {
			users++
		}
	}

	exhibitions := 0
	for _, p := range permanents {
		created, err := s.ensureExhibition(ctx, p)
		if err != nil {
			return users, exhibitions, err
		}
		if created {
			exhibitions++
		}
	}

	s.logger.Info("Carga inicial concluída.", map[string]interface{}{"users_created": users, "exhibitions_created": exhibitions})
	return users, exhibitions, nil
}

func (s *Seeder) ensureUser(ctx context.Context, a account) (bool, error) {
	_, err := s.users.FindByEmail(ctx, a.Email)
	if err == nil {
		return false, nil
	}
	if !apperror.IsNotFound(err) {
		return false, err
	}

	hash, err := s.hasher.Hash(a.Password)
	if err != nil {
		return false, apperror.NewInternalError("Falha ao gerar hash da senha padrão.", err)
	}
	if _, err := s.users.Save(ctx, domain.User{Email: a.Email, PasswordHash: hash, Role: a.Role, FullName: a.FullName}); err != nil {
		// Outra instância pode ter criado a conta no intervalo.
		if apperror.IsConflict(err) {
			return false, nil
		}
		return false, err
	}
	s.logger.Debug("Conta padrão criada.", map[string]interface{}{"email": a.Email, "role": a.Role})
	return true, nil
}

func (s *Seeder) ensureExhibition(ctx context.Context, p permanent) (bool, error) {
	_, err := s.exhibitions.FindByTitle(ctx, p.Title)
	if err == nil {
		return false, nil
	}
	if !apperror.IsNotFound(err) {
		return false, err
	}

	_, err = s.exhibitions.Save(ctx, domain.Exhibition{
		Title:        p.Title,
		Description:  p.Description,
		CuratorEmail: p.Curator,
		StartDate:    permanentStart,
		EndDate:      permanentEnd,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
