// Package controller implements the resource list controller: the single
// authority over one resource type's collection, its edit draft, and its
// selection state.
//
// The six CRUD screens share one interaction pattern (fetch, table, modal
// form, submit, confirm-delete), so the pattern exists once: [Controller] is
// generic over the entity type and each concrete resource is a [Config]
// value.
//
// A controller talks to three collaborators, all injected: a
// [ResourceGateway] for HTTP CRUD, a [Confirmer] for yes/no questions before
// destructive actions, and a [Notifier] for outcome toasts. None of them is
// a UI type, so the whole life cycle is testable without a terminal.
package controller
