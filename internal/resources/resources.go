// Package resources binds the generic resource controller to the concrete
// farm-management entities. Each resource is a gateway [gateway.Spec] plus a
// [controller.Config] value; there is no per-resource class hierarchy.
package resources

import (
	"github.com/fincaudita/agroconsole/internal/controller"
	"github.com/fincaudita/agroconsole/internal/gateway"
	"github.com/fincaudita/agroconsole/models"
)

// Collection endpoints of the fincaudita API. Treatment is the one resource
// whose backend expects the id in the update path.
var (
	FarmSpec      = gateway.Spec{Path: "/api/Farm"}
	PersonSpec    = gateway.Spec{Path: "/api/Person"}
	ModuleSpec    = gateway.Spec{Path: "/api/Modulo"}
	TreatmentSpec = gateway.Spec{Path: "/api/Treatment", UpdateWithID: true}
	ReviewSpec    = gateway.Spec{Path: "/api/ReviewTechnical"}

	CitySpec   = gateway.Spec{Path: "/api/City"}
	UserSpec   = gateway.Spec{Path: "/api/User"}
	CropSpec   = gateway.Spec{Path: "/api/Crop"}
	LotSpec    = gateway.Spec{Path: "/api/Lot"}
	SupplySpec = gateway.Spec{Path: "/api/Supplies"}
)

// FarmConfig parametrizes the finca controller. lots summaries resolve crop
// names through crops.
func FarmConfig(crops interface{ Resolve(int64) string }) controller.Config[models.Farm] {
	return controller.Config[models.Farm]{
		ID:       func(f models.Farm) int64 { return f.ID },
		Defaults: func() models.Farm { return models.Farm{Lots: []models.Lot{}} },
		Validate: func(f models.Farm) error {
			if f.CityID == 0 || f.UserID == 0 {
				return controller.Validation("Debe seleccionar una ciudad y un usuario válidos.")
			}
			if len(f.Lots) == 0 {
				return controller.Validation("Debe agregar al menos un lote válido.")
			}
			return nil
		},
		Decorate: func(farms []models.Farm) {
			for i := range farms {
				farms[i].LotString = farms[i].LotSummary(crops.Resolve)
			}
		},
		DisplayName: func(f models.Farm) string { return f.Name },
		Messages: controller.Messages{
			Title:        "Fincas",
			Created:      "¡Finca creada exitosamente!",
			Updated:      "¡Finca actualizada correctamente!",
			Deleted:      "La finca ha sido eliminada.",
			BulkDeleted:  "Las fincas seleccionadas han sido eliminadas.",
			SaveFailed:   "Hubo un problema al guardar la finca.",
			DeleteFailed: "Hubo un problema al eliminar la finca.",
			LoadFailed:   "Hubo un problema al obtener las fincas.",
		},
	}
}

// AddFarmLots validates the lot subform and appends one lot per selected
// crop to the draft. On a validation failure the draft is left untouched.
func AddFarmLots(c *controller.Controller[models.Farm], cropIDs []int64, hectares float64) error {
	return c.AddNested(func(f *models.Farm) error {
		if len(cropIDs) == 0 || hectares <= 0 {
			return controller.Validation("Debe seleccionar al menos un cultivo y un número de hectáreas válidos.")
		}
		for _, cropID := range cropIDs {
			f.Lots = append(f.Lots, models.Lot{CropID: cropID, NumHectareas: hectares})
		}
		return nil
	})
}

// PersonConfig parametrizes the persona controller.
func PersonConfig(cities interface{ Resolve(int64) string }) controller.Config[models.Person] {
	return controller.Config[models.Person]{
		ID: func(p models.Person) int64 { return p.ID },
		Defaults: func() models.Person {
			return models.Person{BirthOfDate: models.Today()}
		},
		Validate: func(p models.Person) error {
			if p.CityID == 0 {
				return controller.Validation("Debe seleccionar una ciudad válida.")
			}
			return nil
		},
		Decorate: func(persons []models.Person) {
			for i := range persons {
				persons[i].CityName = cities.Resolve(persons[i].CityID)
			}
		},
		DisplayName: func(p models.Person) string { return p.FullName() },
		Messages: controller.Messages{
			Title:        "Personas",
			Created:      "Persona creada exitosamente.",
			Updated:      "Persona actualizada exitosamente.",
			Deleted:      "La persona ha sido eliminada.",
			BulkDeleted:  "Las personas seleccionadas han sido eliminadas.",
			SaveFailed:   "Hubo un problema al guardar la persona.",
			DeleteFailed: "Hubo un problema al eliminar la persona.",
			LoadFailed:   "Hubo un problema al obtener las personas.",
		},
	}
}

// ModuleConfig parametrizes the security-module controller.
func ModuleConfig() controller.Config[models.Module] {
	return controller.Config[models.Module]{
		ID:       func(m models.Module) int64 { return m.ID },
		Defaults: func() models.Module { return models.Module{State: true} },
		Validate: func(m models.Module) error {
			if m.Name == "" {
				return controller.Validation("El nombre del módulo es obligatorio.")
			}
			return nil
		},
		DisplayName: func(m models.Module) string { return m.Name },
		Messages: controller.Messages{
			Title:        "Módulos",
			Created:      "¡Módulo creado exitosamente!",
			Updated:      "¡Módulo actualizado exitosamente!",
			Deleted:      "Tu módulo ha sido eliminado.",
			BulkDeleted:  "Los módulos seleccionados han sido eliminados.",
			SaveFailed:   "Hubo un problema al guardar el módulo.",
			DeleteFailed: "Hubo un problema al eliminar el módulo.",
			LoadFailed:   "Hubo un problema al obtener los módulos.",
		},
	}
}

// TreatmentConfig parametrizes the tratamiento controller.
func TreatmentConfig() controller.Config[models.Treatment] {
	return controller.Config[models.Treatment]{
		ID: func(t models.Treatment) int64 { return t.ID },
		Defaults: func() models.Treatment {
			return models.Treatment{
				DateTreatment: models.Today(),
				State:         true,
				LotList:       []models.TreatmentLot{},
				SupplieList:   []models.TreatmentSupply{},
			}
		},
		Validate: func(t models.Treatment) error {
			if t.TypeTreatment == "" || len(t.LotList) == 0 || len(t.SupplieList) == 0 {
				return controller.Validation("Por favor completa todos los campos y selecciona lotes y suministros.")
			}
			return nil
		},
		DisplayName: func(t models.Treatment) string { return t.TypeTreatment },
		Messages: controller.Messages{
			Title:        "Tratamientos",
			Created:      "¡Tratamiento creado exitosamente!",
			Updated:      "¡Tratamiento actualizado exitosamente!",
			Deleted:      "El tratamiento ha sido eliminado.",
			BulkDeleted:  "Los tratamientos seleccionados han sido eliminados.",
			SaveFailed:   "Hubo un problema al guardar el tratamiento.",
			DeleteFailed: "Hubo un problema al eliminar el tratamiento.",
			LoadFailed:   "Hubo un problema al obtener los tratamientos.",
		},
	}
}

// AddTreatmentLots appends one entry per selected lot to the draft.
func AddTreatmentLots(c *controller.Controller[models.Treatment], lotIDs []int64) error {
	return c.AddNested(func(t *models.Treatment) error {
		if len(lotIDs) == 0 {
			return controller.Validation("Debe seleccionar al menos un lote.")
		}
		for _, lotID := range lotIDs {
			t.LotList = append(t.LotList, models.TreatmentLot{LotID: lotID})
		}
		return nil
	})
}

// AddTreatmentSupplies appends the selected supplies with their doses.
func AddTreatmentSupplies(c *controller.Controller[models.Treatment], supplies []models.TreatmentSupply) error {
	return c.AddNested(func(t *models.Treatment) error {
		if len(supplies) == 0 {
			return controller.Validation("Debe seleccionar al menos un suministro y una dosis válida.")
		}
		t.SupplieList = append(t.SupplieList, supplies...)
		return nil
	})
}

// ReviewConfig parametrizes the revisión técnica controller. Every new
// review starts from the default qualification checklist.
func ReviewConfig() controller.Config[models.TechnicalReview] {
	return controller.Config[models.TechnicalReview]{
		ID: func(r models.TechnicalReview) int64 { return r.ID },
		Defaults: func() models.TechnicalReview {
			return models.TechnicalReview{
				DateReview: models.Today(),
				Checklists: models.DefaultChecklist(),
			}
		},
		Validate: func(r models.TechnicalReview) error {
			if r.Technician == "" || r.Farm == "" {
				return controller.Validation("Por favor completa todos los campos de la revisión.")
			}
			return nil
		},
		DisplayName: func(r models.TechnicalReview) string { return r.Farm + " - " + r.Technician },
		Messages: controller.Messages{
			Title:        "Revisiones",
			Created:      "¡Revisión creada exitosamente!",
			Updated:      "¡Revisión actualizada exitosamente!",
			Deleted:      "La revisión ha sido eliminada.",
			BulkDeleted:  "Las revisiones seleccionadas han sido eliminadas.",
			SaveFailed:   "Hubo un problema al guardar la revisión.",
			DeleteFailed: "Hubo un problema al eliminar la revisión.",
			LoadFailed:   "Hubo un problema al obtener las revisiones.",
		},
	}
}
