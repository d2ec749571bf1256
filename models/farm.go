package models

import "fmt"

// Farm is a single finca record. Field spellings ("addres",
// "num_hectareas") follow the API contract, not English orthography.
type Farm struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CityID    int64   `json:"cityId"`
	UserID    int64   `json:"userId"`
	Addres    string  `json:"addres"`
	Dimension float64 `json:"dimension"`
	State     bool    `json:"state"`
	Lots      []Lot   `json:"lots"`

	// LotString is the derived summary of Lots, computed after each load.
	// Display-only, never sent to the server.
	LotString string `json:"-"`
}

// Lot is one planted lot inside a farm.
type Lot struct {
	CropID       int64   `json:"cropId"`
	NumHectareas float64 `json:"num_hectareas"`
}

// LotSummary renders the nested lot list as a human-readable line, resolving
// crop ids through cropName. Farms without lots read "Ninguno".
func (f Farm) LotSummary(cropName func(int64) string) string {
	if len(f.Lots) == 0 {
		return "Ninguno"
	}

	out := ""
	for i, lot := range f.Lots {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s - %g ha", cropName(lot.CropID), lot.NumHectareas)
	}
	return out
}
