package tui

import (
	"context"

	"github.com/fincaudita/agroconsole/internal/controller"
)

// paneRow is one rendered list line: the entity id, its selection flag, and
// the pre-formatted cell values.
type paneRow struct {
	id       int64
	selected bool
	cells    []string
}

// resourcePane erases the controller's type parameter so the main model can
// hold all five resources behind one field. Each method forwards to the
// underlying controller; no state lives in the pane itself.
type resourcePane interface {
	Title() string
	Headers() []string
	Load(ctx context.Context) error
	Rows() []paneRow
	CopyText(id int64) (string, bool)
	OpenCreate()
	OpenEdit(id int64) bool
	Close()
	Delete(ctx context.Context, id int64) error
	DeleteSelected(ctx context.Context) error
	SetSelected(id int64, selected bool)
	ToggleAll(checked bool)
	AllSelected() bool
	AnySelected() bool
}

type pane[T any] struct {
	ctrl    *controller.Controller[T]
	title   string
	headers []string
	id      func(T) int64
	cells   func(T) []string
	name    func(T) string
}

func newPane[T any](
	ctrl *controller.Controller[T],
	title string,
	headers []string,
	id func(T) int64,
	cells func(T) []string,
	name func(T) string,
) *pane[T] {
	return &pane[T]{ctrl: ctrl, title: title, headers: headers, id: id, cells: cells, name: name}
}

func (p *pane[T]) Title() string     { return p.title }
func (p *pane[T]) Headers() []string { return p.headers }

func (p *pane[T]) Load(ctx context.Context) error {
	return p.ctrl.Load(ctx)
}

func (p *pane[T]) Rows() []paneRow {
	rows := p.ctrl.Rows()
	out := make([]paneRow, len(rows))
	for i, row := range rows {
		out[i] = paneRow{
			id:       p.id(row.Value),
			selected: row.Selected,
			cells:    p.cells(row.Value),
		}
	}
	return out
}

func (p *pane[T]) CopyText(id int64) (string, bool) {
	for _, row := range p.ctrl.Rows() {
		if p.id(row.Value) == id {
			return p.name(row.Value), true
		}
	}
	return "", false
}

func (p *pane[T]) OpenCreate() {
	p.ctrl.OpenCreate()
}

func (p *pane[T]) OpenEdit(id int64) bool {
	for _, row := range p.ctrl.Rows() {
		if p.id(row.Value) == id {
			p.ctrl.OpenEdit(row.Value)
			return true
		}
	}
	return false
}

func (p *pane[T]) Close() {
	p.ctrl.Close()
}

func (p *pane[T]) Delete(ctx context.Context, id int64) error {
	return p.ctrl.Delete(ctx, id)
}

func (p *pane[T]) DeleteSelected(ctx context.Context) error {
	_, err := p.ctrl.DeleteSelected(ctx)
	return err
}

func (p *pane[T]) SetSelected(id int64, selected bool) {
	p.ctrl.SetSelected(id, selected)
}

func (p *pane[T]) ToggleAll(checked bool) {
	p.ctrl.ToggleSelectAll(checked)
}

func (p *pane[T]) AllSelected() bool { return p.ctrl.AllSelected() }
func (p *pane[T]) AnySelected() bool { return p.ctrl.AnySelected() }
