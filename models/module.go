package models

// Module is one security module (navigation entry) record.
type Module struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    int    `json:"position"`
	State       bool   `json:"state"`
}
