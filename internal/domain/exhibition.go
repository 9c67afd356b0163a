package domain

import "time"

// DateLayout é o formato das datas de exposição nos formulários (input type=date).
const DateLayout = "2006-01-02"

// Exhibition é uma exposição com período e curador.
// O curador é referenciado pelo email (users.email), não pelo id.
type Exhibition struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Description  string    `json:"description"`
	CuratorEmail string    `json:"curator_email"`
}

// EndsBeforeStart é a única regra de datas: o fim não pode anteceder o início.
func (e Exhibition) EndsBeforeStart() bool {
	return e.EndDate.Before(e.StartDate)
}

// ExhibitionExhibit é a linha da tabela associativa exhibition_exhibits.
// A chave é o par (ExhibitionID, ExhibitID).
type ExhibitionExhibit struct {
	ExhibitionID int64 `json:"exhibition_id"`
	ExhibitID    int64 `json:"exhibit_id"`
}
