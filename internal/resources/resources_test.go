package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fincaudita/agroconsole/internal/controller"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/mock"
	"github.com/fincaudita/agroconsole/models"
)

// stubResolver resolves every id to a fixed name.
type stubResolver string

func (s stubResolver) Resolve(int64) string { return string(s) }

func newFarmController(t *testing.T) (*controller.Controller[models.Farm], *mock.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockResourceGateway[models.Farm](ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	c := controller.New(FarmConfig(stubResolver("Café")), gw, mock.NewMockConfirmer(ctrl), notifier, logger.Nop())
	return c, notifier
}

func newTreatmentController(t *testing.T) (*controller.Controller[models.Treatment], *mock.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockResourceGateway[models.Treatment](ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	c := controller.New(TreatmentConfig(), gw, mock.NewMockConfirmer(ctrl), notifier, logger.Nop())
	return c, notifier
}

func TestFarmConfigValidation(t *testing.T) {
	cfg := FarmConfig(stubResolver("Café"))

	err := cfg.Validate(models.Farm{Name: "Sin referencias"})
	require.Error(t, err)
	assert.Equal(t, "Debe seleccionar una ciudad y un usuario válidos.", err.Error())

	err = cfg.Validate(models.Farm{Name: "Sin lotes", CityID: 1, UserID: 2})
	require.Error(t, err)
	assert.Equal(t, "Debe agregar al menos un lote válido.", err.Error())

	err = cfg.Validate(models.Farm{
		Name: "Completa", CityID: 1, UserID: 2,
		Lots: []models.Lot{{CropID: 3, NumHectareas: 1.5}},
	})
	assert.NoError(t, err)
}

func TestFarmConfigDecorateBuildsLotSummaries(t *testing.T) {
	cfg := FarmConfig(stubResolver("Café"))

	farms := []models.Farm{
		{Lots: []models.Lot{{CropID: 3, NumHectareas: 1.5}}},
		{Lots: []models.Lot{}},
	}
	cfg.Decorate(farms)

	assert.Equal(t, "Café - 1.5 ha", farms[0].LotString)
	assert.Equal(t, "Ninguno", farms[1].LotString)
}

func TestAddFarmLots(t *testing.T) {
	c, _ := newFarmController(t)
	c.OpenCreate()

	require.NoError(t, AddFarmLots(c, []int64{3, 4}, 2.5))

	draft := c.Draft()
	require.Len(t, draft.Lots, 2)
	assert.Equal(t, int64(3), draft.Lots[0].CropID)
	assert.Equal(t, 2.5, draft.Lots[0].NumHectareas)
	assert.Equal(t, int64(4), draft.Lots[1].CropID)
}

func TestAddFarmLotsValidation(t *testing.T) {
	tests := []struct {
		name     string
		cropIDs  []int64
		hectares float64
	}{
		{name: "no crops", cropIDs: nil, hectares: 2.5},
		{name: "zero hectares", cropIDs: []int64{3}, hectares: 0},
		{name: "negative hectares", cropIDs: []int64{3}, hectares: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, notifier := newFarmController(t)
			c.OpenCreate()
			notifier.EXPECT().Notify(controller.KindError, "Error", "Debe seleccionar al menos un cultivo y un número de hectáreas válidos.")

			err := AddFarmLots(c, tt.cropIDs, tt.hectares)
			require.Error(t, err)
			assert.Empty(t, c.Draft().Lots, "el borrador no debe cambiar tras una validación fallida")
		})
	}
}

func TestPersonConfigValidation(t *testing.T) {
	cfg := PersonConfig(stubResolver("Medellín"))

	err := cfg.Validate(models.Person{FirstName: "Ana"})
	require.Error(t, err)
	assert.Equal(t, "Debe seleccionar una ciudad válida.", err.Error())

	assert.NoError(t, cfg.Validate(models.Person{FirstName: "Ana", CityID: 1}))
}

func TestPersonConfigDecorateResolvesCity(t *testing.T) {
	cfg := PersonConfig(stubResolver("Medellín"))

	persons := []models.Person{{CityID: 1}}
	cfg.Decorate(persons)

	assert.Equal(t, "Medellín", persons[0].CityName)
}

func TestModuleConfigValidation(t *testing.T) {
	cfg := ModuleConfig()

	err := cfg.Validate(models.Module{})
	require.Error(t, err)
	assert.Equal(t, "El nombre del módulo es obligatorio.", err.Error())

	assert.NoError(t, cfg.Validate(models.Module{Name: "Usuarios"}))
	assert.True(t, cfg.Defaults().State)
}

func TestTreatmentConfigValidation(t *testing.T) {
	cfg := TreatmentConfig()

	complete := models.Treatment{
		TypeTreatment: "Fumigación",
		LotList:       []models.TreatmentLot{{LotID: 1}},
		SupplieList:   []models.TreatmentSupply{{SuppliesID: 2, Dose: "5ml"}},
	}
	assert.NoError(t, cfg.Validate(complete))

	incomplete := complete
	incomplete.SupplieList = nil
	assert.Error(t, cfg.Validate(incomplete))
}

func TestAddTreatmentLots(t *testing.T) {
	c, _ := newTreatmentController(t)
	c.OpenCreate()

	require.NoError(t, AddTreatmentLots(c, []int64{1, 2}))
	require.Len(t, c.Draft().LotList, 2)
	assert.Equal(t, int64(2), c.Draft().LotList[1].LotID)
}

func TestAddTreatmentLotsEmptySelection(t *testing.T) {
	c, notifier := newTreatmentController(t)
	c.OpenCreate()
	notifier.EXPECT().Notify(controller.KindError, "Error", "Debe seleccionar al menos un lote.")

	err := AddTreatmentLots(c, nil)
	require.Error(t, err)
	assert.Empty(t, c.Draft().LotList)
}

func TestAddTreatmentSupplies(t *testing.T) {
	c, _ := newTreatmentController(t)
	c.OpenCreate()

	supplies := []models.TreatmentSupply{{SuppliesID: 2, Dose: "5ml"}}
	require.NoError(t, AddTreatmentSupplies(c, supplies))
	require.Len(t, c.Draft().SupplieList, 1)
	assert.Equal(t, "5ml", c.Draft().SupplieList[0].Dose)
}

func TestAddTreatmentSuppliesEmptySelection(t *testing.T) {
	c, notifier := newTreatmentController(t)
	c.OpenCreate()
	notifier.EXPECT().Notify(controller.KindError, "Error", "Debe seleccionar al menos un suministro y una dosis válida.")

	err := AddTreatmentSupplies(c, nil)
	require.Error(t, err)
	assert.Empty(t, c.Draft().SupplieList)
}

func TestReviewConfigDefaultsCarryChecklist(t *testing.T) {
	cfg := ReviewConfig()

	draft := cfg.Defaults()
	assert.NotEmpty(t, draft.Checklists)
	assert.Equal(t, models.Today(), draft.DateReview)
}

func TestReviewConfigValidation(t *testing.T) {
	cfg := ReviewConfig()

	assert.Error(t, cfg.Validate(models.TechnicalReview{Technician: "Ana"}))
	assert.Error(t, cfg.Validate(models.TechnicalReview{Farm: "La Esperanza"}))
	assert.NoError(t, cfg.Validate(models.TechnicalReview{Technician: "Ana", Farm: "La Esperanza"}))
}

func TestTreatmentSpecUpdatesWithIDInPath(t *testing.T) {
	assert.True(t, TreatmentSpec.UpdateWithID)
	assert.False(t, FarmSpec.UpdateWithID)
}
