package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Spec describes one REST collection endpoint.
type Spec struct {
	// Path is the collection path, e.g. "/api/Farm".
	Path string

	// UpdateWithID selects PUT /<Path>/{id} instead of a bare PUT /<Path>.
	// The API is inconsistent between resources, so each Spec records which
	// form its backend expects.
	UpdateWithID bool
}

// Resource is a CRUD gateway for one entity type against one collection
// endpoint. Each call is a single request/response: no retry, no batching.
type Resource[T any] struct {
	client *Client
	spec   Spec
}

// NewResource constructs a resource gateway from the shared client.
func NewResource[T any](client *Client, spec Spec) *Resource[T] {
	spec.Path = "/" + strings.Trim(spec.Path, "/")
	return &Resource[T]{client: client, spec: spec}
}

// List GETs the full collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	resp, err := r.client.authedRequest(ctx).Get(r.spec.Path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.spec.Path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list %s: %w", r.spec.Path, err)
	}
	return items, nil
}

// Get GETs a single item by id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T

	resp, err := r.client.authedRequest(ctx).Get(r.itemPath(id))
	if err != nil {
		return item, fmt.Errorf("get %s: %w", r.spec.Path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return item, err
	}

	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return item, fmt.Errorf("decode get %s: %w", r.spec.Path, err)
	}
	return item, nil
}

// Create POSTs item to the collection. When the server echoes the created
// entity it is decoded and returned; an empty body returns item unchanged.
func (r *Resource[T]) Create(ctx context.Context, item T) (T, error) {
	resp, err := r.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post(r.spec.Path)
	if err != nil {
		return item, fmt.Errorf("create %s: %w", r.spec.Path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return item, err
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		var created T
		if err = json.Unmarshal(resp.Body(), &created); err != nil {
			return item, fmt.Errorf("decode create %s: %w", r.spec.Path, err)
		}
		return created, nil
	}
	return item, nil
}

// Update PUTs the full entity. The id lands in the path only when the Spec
// asks for it.
func (r *Resource[T]) Update(ctx context.Context, id int64, item T) error {
	path := r.spec.Path
	if r.spec.UpdateWithID {
		path = r.itemPath(id)
	}

	resp, err := r.client.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put(path)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.spec.Path, err)
	}

	return mapHTTPError(resp)
}

// Remove DELETEs a single item by id.
func (r *Resource[T]) Remove(ctx context.Context, id int64) error {
	resp, err := r.client.authedRequest(ctx).Delete(r.itemPath(id))
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.spec.Path, err)
	}

	return mapHTTPError(resp)
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.spec.Path + "/" + strconv.FormatInt(id, 10)
}
