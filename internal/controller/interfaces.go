package controller

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/controller_mock.go -package=mock

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// Confirmer asks the user a yes/no question and blocks until answered.
// Returning false means the destructive action must not happen.
type Confirmer interface {
	Confirm(title, message string) bool
}

// Notifier surfaces an operation outcome to the user. Fire-and-forget:
// implementations must not block the caller.
type Notifier interface {
	Notify(kind Kind, title, message string)
}

// ResourceGateway is the HTTP CRUD contract the controller drives. Each call
// is a single request/response; retry policy, if any, belongs to the caller.
type ResourceGateway[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, item T) error
	Remove(ctx context.Context, id int64) error
}
