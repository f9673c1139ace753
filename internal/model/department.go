package model

// Department groups doctors administratively. A user may belong to at most
// one department, or none.
type Department struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
