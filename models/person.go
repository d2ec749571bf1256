package models

// Person is one persona record from the security module.
type Person struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	TypeDocument string `json:"type_document"`
	Document     string `json:"document"`
	Addres       string `json:"addres"`
	Phone        int64  `json:"phone"`
	BirthOfDate  Date   `json:"birth_of_date"`
	CityID       int64  `json:"cityId"`
	State        bool   `json:"state"`

	// CityName is resolved from CityID after each load. Display-only.
	CityName string `json:"-"`
}

func (p Person) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
