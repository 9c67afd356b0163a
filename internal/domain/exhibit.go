package domain

// Exhibit é uma peça do acervo. Todo exponato pertence a exatamente um salão.
type Exhibit struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	CreationYear int    `json:"creation_year"`
	Era          string `json:"era"`
	HallID       int64  `json:"hall_id"`

	// HallName é preenchido apenas nas leituras (JOIN explícito com halls).
	HallName string `json:"hall_name,omitempty"`
}
