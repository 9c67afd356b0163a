package domain

import (
	"strings"
	"time"
)

// Visit registra a ida de um visitante a uma exposição.
// VisitorEmail é texto livre: não há chave estrangeira para users.
type Visit struct {
	ID           int64     `json:"id"`
	VisitorEmail string    `json:"visitor_email"`
	VisitDate    time.Time `json:"visit_date"`
	ExhibitionID int64     `json:"exhibition_id"`

	// ExhibitionTitle vem do JOIN com exhibitions nas listagens.
	ExhibitionTitle string `json:"exhibition_title,omitempty"`
}

// SortDirection é a ordenação por título da exposição.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection aceita apenas "asc" e "desc". ok=false para qualquer outro valor.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	}
	return SortAsc, false
}
