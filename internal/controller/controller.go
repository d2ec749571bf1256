package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fincaudita/agroconsole/internal/logger"
)

// Phase is the draft life-cycle state. The modal-open flag is exactly the
// complement of PhaseClosed.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseEditing
	PhaseSubmitting
)

// Row pairs one fetched entity with its transient selection flag. The flag
// is derived client state and is never sent to the server.
type Row[T any] struct {
	Value    T
	Selected bool
}

// Outcome is the per-id result of a bulk delete.
type Outcome struct {
	ID  int64
	Err error
}

// Controller owns the collection, the edit draft, and the selection state of
// one resource type. All methods are safe for concurrent use; the draft is
// single-writer by construction (one modal at a time).
type Controller[T any] struct {
	cfg       Config[T]
	gateway   ResourceGateway[T]
	confirmer Confirmer
	notifier  Notifier
	logger    *logger.Logger

	mu      sync.Mutex
	rows    []Row[T]
	draft   T
	phase   Phase
	loadSeq uint64 // stamp of the latest issued load
	seenSeq uint64 // stamp of the latest applied response
}

// New constructs a controller. ID and Defaults must be set on cfg.
func New[T any](cfg Config[T], gw ResourceGateway[T], confirmer Confirmer, notifier Notifier, log *logger.Logger) *Controller[T] {
	if cfg.ID == nil || cfg.Defaults == nil {
		panic("controller: Config.ID and Config.Defaults are required")
	}
	cfg.applyDefaults()

	c := &Controller[T]{
		cfg:       cfg,
		gateway:   gw,
		confirmer: confirmer,
		notifier:  notifier,
		logger:    log,
	}
	c.draft = cfg.Defaults()
	return c
}

// Load fetches the full collection and replaces the held rows, each with its
// selection flag cleared, then derives computed display fields. On failure
// the previous rows are kept untouched and the failure is reported.
//
// Loads are sequence-stamped: when two loads overlap, a response older than
// the one already applied is discarded instead of overwriting newer data.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	items, err := c.gateway.List(ctx)
	if err != nil {
		c.logger.Err(err).Str("resource", c.cfg.Messages.Title).Msg("load collection failed")
		c.notifier.Notify(KindError, "Error", c.cfg.Messages.LoadFailed)
		return fmt.Errorf("load collection: %w", err)
	}

	if c.cfg.Decorate != nil {
		c.cfg.Decorate(items)
	}

	rows := make([]Row[T], len(items))
	for i, item := range items {
		rows[i] = Row[T]{Value: item}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.seenSeq {
		// A newer load already landed; this response is stale.
		return nil
	}
	c.seenSeq = seq
	c.rows = rows
	return nil
}

// Rows returns a snapshot of the held collection.
func (c *Controller[T]) Rows() []Row[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Row[T], len(c.rows))
	copy(out, c.rows)
	return out
}

// Phase returns the current draft life-cycle state.
func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ModalOpen reports whether an edit session is active.
func (c *Controller[T]) ModalOpen() bool {
	return c.Phase() != PhaseClosed
}

// Draft returns a copy of the in-flight entity.
func (c *Controller[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// OpenCreate resets the draft to its default shape and opens the modal.
func (c *Controller[T]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.cfg.Defaults()
	c.phase = PhaseEditing
}

// OpenEdit copies item into the draft and opens the modal. The list entry
// itself is never mutated in place: edits flow through the draft only.
func (c *Controller[T]) OpenEdit(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = item
	c.phase = PhaseEditing
}

// Close abandons the edit session and resets the draft.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseClosed
	c.draft = c.cfg.Defaults()
}

// UpdateDraft applies mutate to the draft under the controller's lock.
// Returns ErrNoDraft when no edit session is active.
func (c *Controller[T]) UpdateDraft(mutate func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseEditing {
		return ErrNoDraft
	}
	mutate(&c.draft)
	return nil
}

// AddNested appends entries to one of the draft's nested collections via
// add, which must validate its subform first and leave the draft untouched
// when it fails. A validation failure is reported and the draft keeps its
// previous value.
func (c *Controller[T]) AddNested(add func(*T) error) error {
	c.mu.Lock()
	if c.phase != PhaseEditing {
		c.mu.Unlock()
		return ErrNoDraft
	}
	err := add(&c.draft)
	c.mu.Unlock()

	if err != nil {
		c.notifier.Notify(KindError, "Error", err.Error())
		return err
	}
	return nil
}

// Submit validates the draft, then dispatches a create (id 0) or update
// (any other id) through the gateway. On success the collection is
// reloaded, the modal closes, and the draft resets. On failure the modal
// stays open with the draft intact so the user can retry.
func (c *Controller[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != PhaseEditing {
		c.mu.Unlock()
		return ErrNoDraft
	}
	draft := c.draft
	c.phase = PhaseSubmitting
	c.mu.Unlock()

	if c.cfg.Validate != nil {
		if err := c.cfg.Validate(draft); err != nil {
			c.reopen()
			c.notifier.Notify(KindError, "Error", err.Error())
			return err
		}
	}

	payload := c.cfg.Normalize(draft)

	var err error
	creating := c.cfg.ID(payload) == 0
	if creating {
		_, err = c.gateway.Create(ctx, payload)
	} else {
		err = c.gateway.Update(ctx, c.cfg.ID(payload), payload)
	}
	if err != nil {
		c.reopen()
		c.logger.Err(err).Str("resource", c.cfg.Messages.Title).Bool("create", creating).Msg("submit failed")
		c.notifier.Notify(KindError, "Error", c.cfg.Messages.SaveFailed)
		return fmt.Errorf("submit draft: %w", err)
	}

	if err = c.Load(ctx); err != nil {
		// The write went through; only the refresh failed and was reported.
		c.logger.Err(err).Msg("reload after submit failed")
	}

	c.Close()
	if creating {
		c.notifier.Notify(KindSuccess, "Éxito", c.cfg.Messages.Created)
	} else {
		c.notifier.Notify(KindSuccess, "Éxito", c.cfg.Messages.Updated)
	}
	return nil
}

// reopen returns a failed submit to the editing phase, draft intact.
func (c *Controller[T]) reopen() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitting {
		c.phase = PhaseEditing
	}
}

// Delete asks for confirmation and, only on an explicit yes, issues the
// delete and removes the item from the local collection. A declined
// confirmation performs no network call and no state change.
func (c *Controller[T]) Delete(ctx context.Context, id int64) error {
	if !c.confirmer.Confirm("¿Estás seguro?", "¡No podrás revertir esto!") {
		return ErrDeclined
	}

	if err := c.gateway.Remove(ctx, id); err != nil {
		c.logger.Err(err).Int64("id", id).Msg("delete failed")
		c.notifier.Notify(KindError, "Error", c.cfg.Messages.DeleteFailed)
		return fmt.Errorf("delete %d: %w", id, err)
	}

	c.removeLocal(id)
	c.notifier.Notify(KindSuccess, "¡Eliminado!", c.cfg.Messages.Deleted)
	return nil
}

// DeleteSelected confirms once for the whole batch, then fans out one
// delete per selected id and joins all results.
//
// Semantics are best-effort: each id succeeds or fails on its own, the
// per-id outcomes are returned, failures are reported distinctly, and a
// re-fetch reconciles the local collection with whatever the server now
// holds. See DESIGN.md for the policy decision.
func (c *Controller[T]) DeleteSelected(ctx context.Context) ([]Outcome, error) {
	ids := c.selectedIDs()
	if len(ids) == 0 {
		return nil, ErrNoSelection
	}

	if !c.confirmer.Confirm("¿Estás seguro?", "¡No podrás revertir esto!") {
		return nil, ErrDeclined
	}

	outcomes := make([]Outcome, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			outcomes[i] = Outcome{ID: id, Err: c.gateway.Remove(ctx, id)}
		}(i, id)
	}
	wg.Wait()

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			c.logger.Err(o.Err).Int64("id", o.ID).Msg("bulk delete item failed")
		}
	}

	if err := c.Load(ctx); err != nil {
		c.logger.Err(err).Msg("reload after bulk delete failed")
	}

	if failed > 0 {
		c.notifier.Notify(KindWarning, "Advertencia",
			fmt.Sprintf("%d de %d registros no se pudieron eliminar.", failed, len(ids)))
		return outcomes, fmt.Errorf("bulk delete: %d of %d failed", failed, len(ids))
	}

	c.notifier.Notify(KindSuccess, "¡Eliminado!", c.cfg.Messages.BulkDeleted)
	return outcomes, nil
}

// SetSelected sets the selection flag of the row with the given id.
func (c *Controller[T]) SetSelected(id int64, selected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		if c.cfg.ID(c.rows[i].Value) == id {
			c.rows[i].Selected = selected
			return
		}
	}
}

// ToggleSelectAll sets every row's selection flag to checked.
func (c *Controller[T]) ToggleSelectAll(checked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		c.rows[i].Selected = checked
	}
}

// AllSelected reports whether the collection is non-empty and every row is
// selected.
func (c *Controller[T]) AllSelected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.rows) == 0 {
		return false
	}
	for _, row := range c.rows {
		if !row.Selected {
			return false
		}
	}
	return true
}

// AnySelected reports whether at least one row is selected.
func (c *Controller[T]) AnySelected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, row := range c.rows {
		if row.Selected {
			return true
		}
	}
	return false
}

func (c *Controller[T]) selectedIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var ids []int64
	for _, row := range c.rows {
		if row.Selected {
			ids = append(ids, c.cfg.ID(row.Value))
		}
	}
	return ids
}

func (c *Controller[T]) removeLocal(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.rows {
		if c.cfg.ID(c.rows[i].Value) == id {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			return
		}
	}
}

// IsDeclined reports whether err is the declined-confirmation branch.
func IsDeclined(err error) bool {
	return errors.Is(err, ErrDeclined)
}
