package domain

// ExhibitionVisits é o total de visitas de uma exposição.
type ExhibitionVisits struct {
	ExhibitionID int64  `json:"exhibition_id"`
	Title        string `json:"title"`
	Visits       int64  `json:"visits"`
}

// CuratorLoad é a quantidade de exposições sob responsabilidade de um curador.
type CuratorLoad struct {
	CuratorEmail string `json:"curator_email"`
	DisplayName  string `json:"display_name"`
	Exhibitions  int64  `json:"exhibitions"`
}

// Statistics agrega os dois relatórios exibidos em /statistics.
type Statistics struct {
	ByExhibition []ExhibitionVisits `json:"by_exhibition"`
	ByCurator    []CuratorLoad      `json:"by_curator"`
}
