package models

// Reference collections are read-only: fetched once per session and used for
// display-name resolution and typeahead suggestion only.

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Crop struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Supply struct {
	ID   int64  `json:"suppliesId"`
	Name string `json:"name"`
}

// LotRef is the lot lookup row used by the treatment form. The display name
// comes from the lot's crop when the backend embeds it.
type LotRef struct {
	ID   int64 `json:"id"`
	Crop *Crop `json:"crop,omitempty"`
}

// DisplayName resolves the lot's label, falling back to the unknown sentinel
// when the crop is not embedded.
func (l LotRef) DisplayName() string {
	if l.Crop == nil {
		return "Desconocido"
	}
	return l.Crop.Name
}
