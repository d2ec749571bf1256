package controller

// Messages holds the user-facing outcome texts for one resource. Zero fields
// fall back to generic wording in New.
type Messages struct {
	// Title heads every notification for this resource, e.g. "Fincas".
	Title string

	Created      string
	Updated      string
	Deleted      string
	BulkDeleted  string
	SaveFailed   string
	DeleteFailed string
	LoadFailed   string
}

// Config parametrizes a [Controller] for one concrete resource. ID and
// Defaults are mandatory; the remaining hooks are optional.
type Config[T any] struct {
	// ID extracts the server-assigned identity. Zero means not yet
	// persisted: a draft with ID 0 creates, any other updates.
	ID func(T) int64

	// Defaults returns the draft's default shape: scalar fields empty,
	// state defaulted, nested collections empty.
	Defaults func() T

	// Validate checks the draft before submit. Return an error built with
	// [Validation] to abort with a user-facing message; no request is sent.
	Validate func(T) error

	// Normalize flattens the draft into the server payload (e.g. replacing
	// a typeahead-selected object with its plain id). Identity when nil.
	Normalize func(T) T

	// Decorate derives computed display fields after every successful load,
	// typically by resolving relation ids through lookup caches.
	Decorate func(items []T)

	// DisplayName names one entity in confirmations and copy output.
	DisplayName func(T) string

	Messages Messages
}

func (cfg *Config[T]) applyDefaults() {
	if cfg.Normalize == nil {
		cfg.Normalize = func(item T) T { return item }
	}
	if cfg.DisplayName == nil {
		cfg.DisplayName = func(T) string { return "" }
	}

	m := &cfg.Messages
	if m.Title == "" {
		m.Title = "Registros"
	}
	if m.Created == "" {
		m.Created = "¡Registro creado exitosamente!"
	}
	if m.Updated == "" {
		m.Updated = "¡Registro actualizado exitosamente!"
	}
	if m.Deleted == "" {
		m.Deleted = "El registro ha sido eliminado."
	}
	if m.BulkDeleted == "" {
		m.BulkDeleted = "Los registros seleccionados han sido eliminados."
	}
	if m.SaveFailed == "" {
		m.SaveFailed = "Hubo un problema al guardar el registro."
	}
	if m.DeleteFailed == "" {
		m.DeleteFailed = "Hubo un problema al eliminar el registro."
	}
	if m.LoadFailed == "" {
		m.LoadFailed = "Hubo un problema al obtener los registros."
	}
}
