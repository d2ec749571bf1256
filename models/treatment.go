package models

// Treatment is one phytosanitary treatment applied to a set of lots with a
// set of supplies.
type Treatment struct {
	ID            int64             `json:"id"`
	DateTreatment Date              `json:"dateTreatment"`
	TypeTreatment string            `json:"typeTreatment"`
	QuantityMix   string            `json:"quantityMix"`
	State         bool              `json:"state"`
	LotList       []TreatmentLot    `json:"lotList"`
	SupplieList   []TreatmentSupply `json:"supplieList"`
}

// TreatmentLot references one treated lot.
type TreatmentLot struct {
	LotID int64 `json:"lotId"`
}

// TreatmentSupply references one supply and its dose. The API exchanges the
// dose as a string.
type TreatmentSupply struct {
	SuppliesID int64  `json:"suppliesId"`
	Dose       string `json:"dose"`
}
