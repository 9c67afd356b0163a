package domain

// Hall é um salão físico do museu.
type Hall struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Floor       int    `json:"floor"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}
