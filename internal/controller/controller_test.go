package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fincaudita/agroconsole/internal/controller"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/mock"
)

type note struct {
	ID    int64
	Name  string
	Tags  []int64
	Label string
	State bool
}

func noteConfig() controller.Config[note] {
	return controller.Config[note]{
		ID:       func(n note) int64 { return n.ID },
		Defaults: func() note { return note{State: true} },
	}
}

type fixture struct {
	gateway   *mock.MockResourceGateway[note]
	confirmer *mock.MockConfirmer
	notifier  *mock.MockNotifier
}

func newTestController(t *testing.T, cfg controller.Config[note]) (*controller.Controller[note], *fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		gateway:   mock.NewMockResourceGateway[note](ctrl),
		confirmer: mock.NewMockConfirmer(ctrl),
		notifier:  mock.NewMockNotifier(ctrl),
	}
	c := controller.New(cfg, f.gateway, f.confirmer, f.notifier, logger.Nop())
	return c, f
}

func loadRows(t *testing.T, c *controller.Controller[note], f *fixture, items []note) {
	t.Helper()
	f.gateway.EXPECT().List(gomock.Any()).Return(items, nil)
	require.NoError(t, c.Load(context.Background()))
}

func TestLoadReplacesRowsAndClearsSelection(t *testing.T) {
	c, f := newTestController(t, noteConfig())

	loadRows(t, c, f, []note{{ID: 1, Name: "uno"}, {ID: 2, Name: "dos"}})
	c.SetSelected(1, true)

	loadRows(t, c, f, []note{{ID: 2, Name: "dos"}, {ID: 3, Name: "tres"}})

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].Value.ID)
	assert.Equal(t, int64(3), rows[1].Value.ID)
	for _, row := range rows {
		assert.False(t, row.Selected)
	}
}

func TestLoadFailureKeepsPreviousRows(t *testing.T) {
	c, f := newTestController(t, noteConfig())

	loadRows(t, c, f, []note{{ID: 1, Name: "uno"}})

	f.gateway.EXPECT().List(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
	f.notifier.EXPECT().Notify(controller.KindError, "Error", "Hubo un problema al obtener los registros.")

	err := c.Load(context.Background())
	require.Error(t, err)

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "uno", rows[0].Value.Name)
}

func TestLoadRunsDecorate(t *testing.T) {
	cfg := noteConfig()
	cfg.Decorate = func(items []note) {
		for i := range items {
			items[i].Label = "etiqueta: " + items[i].Name
		}
	}
	c, f := newTestController(t, cfg)

	loadRows(t, c, f, []note{{ID: 1, Name: "uno"}})

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "etiqueta: uno", rows[0].Value.Label)
}

func TestLoadDiscardsStaleResponse(t *testing.T) {
	c, f := newTestController(t, noteConfig())

	entered := make(chan struct{})
	release := make(chan struct{})

	// The first load stalls inside the gateway while a second load issues,
	// returns, and lands. The late response must not overwrite the fresh one.
	f.gateway.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]note, error) {
		close(entered)
		<-release
		return []note{{ID: 1, Name: "viejo"}}, nil
	})
	f.gateway.EXPECT().List(gomock.Any()).Return([]note{{ID: 2, Name: "nuevo"}}, nil)

	done := make(chan error, 1)
	go func() {
		done <- c.Load(context.Background())
	}()

	<-entered
	require.NoError(t, c.Load(context.Background()))

	close(release)
	require.NoError(t, <-done)

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "nuevo", rows[0].Value.Name)
}

func TestOpenCreateResetsDraftToDefaults(t *testing.T) {
	c, _ := newTestController(t, noteConfig())

	c.OpenEdit(note{ID: 7, Name: "editada", State: false})
	c.Close()
	c.OpenCreate()

	draft := c.Draft()
	assert.Equal(t, int64(0), draft.ID)
	assert.Empty(t, draft.Name)
	assert.True(t, draft.State)
	assert.True(t, c.ModalOpen())
}

func TestOpenEditCopiesWithoutTouchingRow(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 5, Name: "original"}})

	c.OpenEdit(c.Rows()[0].Value)
	require.NoError(t, c.UpdateDraft(func(n *note) { n.Name = "cambiada" }))

	assert.Equal(t, "cambiada", c.Draft().Name)
	assert.Equal(t, "original", c.Rows()[0].Value.Name)
}

func TestUpdateDraftWithoutModal(t *testing.T) {
	c, _ := newTestController(t, noteConfig())

	err := c.UpdateDraft(func(n *note) { n.Name = "x" })
	assert.ErrorIs(t, err, controller.ErrNoDraft)
}

func TestSubmitDispatchesCreateForZeroID(t *testing.T) {
	c, f := newTestController(t, noteConfig())

	c.OpenCreate()
	require.NoError(t, c.UpdateDraft(func(n *note) { n.Name = "nueva" }))

	f.gateway.EXPECT().Create(gomock.Any(), note{Name: "nueva", State: true}).
		Return(note{ID: 10, Name: "nueva", State: true}, nil)
	f.gateway.EXPECT().List(gomock.Any()).Return([]note{{ID: 10, Name: "nueva", State: true}}, nil)
	f.notifier.EXPECT().Notify(controller.KindSuccess, "Éxito", "¡Registro creado exitosamente!")

	require.NoError(t, c.Submit(context.Background()))
	assert.False(t, c.ModalOpen())
	assert.Len(t, c.Rows(), 1)
}

func TestSubmitDispatchesUpdateForExistingID(t *testing.T) {
	c, f := newTestController(t, noteConfig())

	c.OpenEdit(note{ID: 4, Name: "vieja", State: true})
	require.NoError(t, c.UpdateDraft(func(n *note) { n.Name = "renombrada" }))

	f.gateway.EXPECT().Update(gomock.Any(), int64(4), note{ID: 4, Name: "renombrada", State: true}).Return(nil)
	f.gateway.EXPECT().List(gomock.Any()).Return([]note{{ID: 4, Name: "renombrada", State: true}}, nil)
	f.notifier.EXPECT().Notify(controller.KindSuccess, "Éxito", "¡Registro actualizado exitosamente!")

	require.NoError(t, c.Submit(context.Background()))
	assert.False(t, c.ModalOpen())
}

func TestSubmitAppliesNormalize(t *testing.T) {
	cfg := noteConfig()
	cfg.Normalize = func(n note) note {
		n.Label = ""
		return n
	}
	c, f := newTestController(t, cfg)

	c.OpenCreate()
	require.NoError(t, c.UpdateDraft(func(n *note) {
		n.Name = "plana"
		n.Label = "solo pantalla"
	}))

	f.gateway.EXPECT().Create(gomock.Any(), note{Name: "plana", State: true}).
		Return(note{ID: 1, Name: "plana", State: true}, nil)
	f.gateway.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.notifier.EXPECT().Notify(controller.KindSuccess, "Éxito", gomock.Any())

	require.NoError(t, c.Submit(context.Background()))
}

func TestSubmitValidationFailureSendsNothing(t *testing.T) {
	cfg := noteConfig()
	cfg.Validate = func(n note) error {
		if n.Name == "" {
			return controller.Validation("Escriba el nombre.")
		}
		return nil
	}
	c, f := newTestController(t, cfg)

	c.OpenCreate()

	f.notifier.EXPECT().Notify(controller.KindError, "Error", "Escriba el nombre.")

	err := c.Submit(context.Background())
	require.Error(t, err)

	var verr *controller.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.True(t, c.ModalOpen(), "el modal debe quedar abierto tras una validación fallida")
}

func TestSubmitFailureKeepsDraftAndModal(t *testing.T) {
	c, f := newTestController(t, noteConfig())

	c.OpenCreate()
	require.NoError(t, c.UpdateDraft(func(n *note) { n.Name = "persistente" }))

	f.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(note{}, errors.New("500"))
	f.notifier.EXPECT().Notify(controller.KindError, "Error", "Hubo un problema al guardar el registro.")

	err := c.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, c.ModalOpen())
	assert.Equal(t, "persistente", c.Draft().Name)
	assert.Equal(t, controller.PhaseEditing, c.Phase())
}

func TestAddNestedAppendsOnSuccess(t *testing.T) {
	c, _ := newTestController(t, noteConfig())

	c.OpenCreate()
	err := c.AddNested(func(n *note) error {
		n.Tags = append(n.Tags, 3, 8)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 8}, c.Draft().Tags)
}

func TestAddNestedValidationLeavesDraftUntouched(t *testing.T) {
	c, f := newTestController(t, noteConfig())

	c.OpenCreate()
	require.NoError(t, c.AddNested(func(n *note) error {
		n.Tags = append(n.Tags, 1)
		return nil
	}))

	f.notifier.EXPECT().Notify(controller.KindError, "Error", "Seleccione al menos un cultivo.")

	err := c.AddNested(func(n *note) error {
		return controller.Validation("Seleccione al menos un cultivo.")
	})
	require.Error(t, err)
	assert.Equal(t, []int64{1}, c.Draft().Tags)
}

func TestAddNestedWithoutModal(t *testing.T) {
	c, _ := newTestController(t, noteConfig())

	err := c.AddNested(func(n *note) error { return nil })
	assert.ErrorIs(t, err, controller.ErrNoDraft)
}

func TestDeleteDeclinedSendsNothing(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}, {ID: 2}})

	f.confirmer.EXPECT().Confirm("¿Estás seguro?", "¡No podrás revertir esto!").Return(false)

	err := c.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, controller.ErrDeclined)
	assert.True(t, controller.IsDeclined(err))
	assert.Len(t, c.Rows(), 2)
}

func TestDeleteRemovesRowLocally(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}, {ID: 2}})

	f.confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true)
	f.gateway.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil)
	f.notifier.EXPECT().Notify(controller.KindSuccess, "¡Eliminado!", "El registro ha sido eliminado.")

	require.NoError(t, c.Delete(context.Background(), 1))

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].Value.ID)
}

func TestDeleteFailureKeepsRow(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}})

	f.confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true)
	f.gateway.EXPECT().Remove(gomock.Any(), int64(1)).Return(errors.New("409"))
	f.notifier.EXPECT().Notify(controller.KindError, "Error", "Hubo un problema al eliminar el registro.")

	err := c.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Len(t, c.Rows(), 1)
}

func TestDeleteSelectedWithEmptySelection(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}})

	_, err := c.DeleteSelected(context.Background())
	assert.ErrorIs(t, err, controller.ErrNoSelection)
}

func TestDeleteSelectedConfirmsOnceForBatch(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}, {ID: 2}})
	c.ToggleSelectAll(true)

	f.confirmer.EXPECT().Confirm("¿Estás seguro?", "¡No podrás revertir esto!").Return(true).Times(1)
	f.gateway.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil)
	f.gateway.EXPECT().Remove(gomock.Any(), int64(2)).Return(nil)
	f.gateway.EXPECT().List(gomock.Any()).Return(nil, nil)
	f.notifier.EXPECT().Notify(controller.KindSuccess, "¡Eliminado!", "Los registros seleccionados han sido eliminados.")

	outcomes, err := c.DeleteSelected(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Empty(t, c.Rows())
}

func TestDeleteSelectedPartialFailure(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}, {ID: 2}, {ID: 3}})
	c.SetSelected(1, true)
	c.SetSelected(3, true)

	f.confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true)
	f.gateway.EXPECT().Remove(gomock.Any(), int64(1)).Return(nil)
	f.gateway.EXPECT().Remove(gomock.Any(), int64(3)).Return(errors.New("referenced"))
	f.gateway.EXPECT().List(gomock.Any()).Return([]note{{ID: 2}, {ID: 3}}, nil)
	f.notifier.EXPECT().Notify(controller.KindWarning, "Advertencia", "1 de 2 registros no se pudieron eliminar.")

	outcomes, err := c.DeleteSelected(context.Background())
	require.Error(t, err)
	require.Len(t, outcomes, 2)

	byID := map[int64]error{}
	for _, o := range outcomes {
		byID[o.ID] = o.Err
	}
	assert.NoError(t, byID[1])
	assert.Error(t, byID[3])

	// The re-fetch reconciled the collection with what the server kept.
	require.Len(t, c.Rows(), 2)
}

func TestDeleteSelectedDeclined(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}})
	c.SetSelected(1, true)

	f.confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false)

	outcomes, err := c.DeleteSelected(context.Background())
	assert.ErrorIs(t, err, controller.ErrDeclined)
	assert.Nil(t, outcomes)
	assert.Len(t, c.Rows(), 1)
}

func TestSelectionFlags(t *testing.T) {
	c, f := newTestController(t, noteConfig())
	loadRows(t, c, f, []note{{ID: 1}, {ID: 2}, {ID: 3}})

	assert.False(t, c.AnySelected())
	assert.False(t, c.AllSelected())

	c.SetSelected(2, true)
	assert.True(t, c.AnySelected())
	assert.False(t, c.AllSelected())

	c.ToggleSelectAll(true)
	assert.True(t, c.AllSelected())

	c.ToggleSelectAll(false)
	assert.False(t, c.AnySelected())
}

func TestAllSelectedOnEmptyCollection(t *testing.T) {
	c, _ := newTestController(t, noteConfig())

	assert.False(t, c.AllSelected())
}
