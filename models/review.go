package models

// TechnicalReview is one revisión técnica: a field visit with a
// qualification checklist.
type TechnicalReview struct {
	ID           int64      `json:"id"`
	DateReview   Date       `json:"date_review"`
	Technician   string     `json:"technician"`
	State        bool       `json:"state"`
	Farm         string     `json:"farm"`
	CropCode     string     `json:"crop_code"`
	Producer     string     `json:"producer"`
	Observations string     `json:"observations"`
	Checklists   Checklists `json:"checklists"`
}

type Checklists struct {
	Qualifications []ChecklistItem `json:"qualifications"`
}

// ChecklistItem is one row of the review checklist.
type ChecklistItem struct {
	Observation           string `json:"observation"`
	QualificationCriteria int    `json:"qualification_criteria"`
	Calification          int    `json:"calification"`
	Observations          string `json:"observations"`
}

// DefaultChecklist is the checklist shape every new review starts from.
func DefaultChecklist() Checklists {
	return Checklists{
		Qualifications: []ChecklistItem{
			{Observation: "Tiene desinfección de calzado activa"},
			{Observation: "Cultivos libres de plantas muertas"},
		},
	}
}
