package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/store"
	"github.com/fincaudita/agroconsole/internal/utils"
	"github.com/fincaudita/agroconsole/models"
)

// The resource endpoints share one shape: list returns the full collection,
// create inserts and echoes the stored record, update rewrites a record
// whose id travels in the body (treatments carry it in the path instead),
// delete takes the id from the path. The generic helpers below hold that
// shape; the per-resource methods only bind repositories to routes.

func listResource[T any](w http.ResponseWriter, r *http.Request, list func(context.Context) ([]T, error)) {
	log := logger.FromRequest(r)

	items, err := list(r.Context())
	if err != nil {
		log.Err(err).Msg("listing resource failed")
		writeStoreError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func createResource[T any](w http.ResponseWriter, r *http.Request, create func(context.Context, T) (T, error)) {
	log := logger.FromRequest(r)

	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := create(r.Context(), item)
	if err != nil {
		log.Err(err).Msg("creating resource failed")
		writeStoreError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func updateResource[T any](w http.ResponseWriter, r *http.Request, update func(context.Context, T) error) {
	log := logger.FromRequest(r)

	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := update(r.Context(), item); err != nil {
		log.Err(err).Msg("updating resource failed")
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func deleteResource(w http.ResponseWriter, r *http.Request, remove func(context.Context, int64) error) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid id in path")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err = remove(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("deleting resource failed")
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicate):
		http.Error(w, "record already exists", http.StatusConflict)
	case errors.Is(err, store.ErrReferenced):
		http.Error(w, "record is referenced by other records", http.StatusConflict)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// ── reference collections ──

func (h *Handler) listCities(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.References.ListCities)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.Users.List)
}

func (h *Handler) listCrops(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.References.ListCrops)
}

func (h *Handler) listSupplies(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.References.ListSupplies)
}

func (h *Handler) listLots(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.References.ListLots)
}

// ── farms ──

func (h *Handler) listFarms(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.Farms.List)
}

func (h *Handler) createFarm(w http.ResponseWriter, r *http.Request) {
	createResource(w, r, h.services.Farms.Create)
}

func (h *Handler) updateFarm(w http.ResponseWriter, r *http.Request) {
	updateResource(w, r, h.services.Farms.Update)
}

func (h *Handler) deleteFarm(w http.ResponseWriter, r *http.Request) {
	deleteResource(w, r, h.services.Farms.Delete)
}

// ── persons ──

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.Persons.List)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	createResource(w, r, h.services.Persons.Create)
}

func (h *Handler) updatePerson(w http.ResponseWriter, r *http.Request) {
	updateResource(w, r, h.services.Persons.Update)
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	deleteResource(w, r, h.services.Persons.Delete)
}

// ── modules ──

func (h *Handler) listModules(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.Modules.List)
}

func (h *Handler) createModule(w http.ResponseWriter, r *http.Request) {
	createResource(w, r, h.services.Modules.Create)
}

func (h *Handler) updateModule(w http.ResponseWriter, r *http.Request) {
	updateResource(w, r, h.services.Modules.Update)
}

func (h *Handler) deleteModule(w http.ResponseWriter, r *http.Request) {
	deleteResource(w, r, h.services.Modules.Delete)
}

// ── treatments ──

func (h *Handler) listTreatments(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.Treatments.List)
}

func (h *Handler) createTreatment(w http.ResponseWriter, r *http.Request) {
	createResource(w, r, h.services.Treatments.Create)
}

// updateTreatment is the one update whose id travels in the path; it wins
// over whatever id the body carries.
func (h *Handler) updateTreatment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid treatment id in path")
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	updateResource(w, r, func(ctx context.Context, treatment models.Treatment) error {
		treatment.ID = id
		return h.services.Treatments.Update(ctx, treatment)
	})
}

func (h *Handler) deleteTreatment(w http.ResponseWriter, r *http.Request) {
	deleteResource(w, r, h.services.Treatments.Delete)
}

// ── technical reviews ──

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	listResource(w, r, h.services.Reviews.List)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	createResource(w, r, h.services.Reviews.Create)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	updateResource(w, r, h.services.Reviews.Update)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	deleteResource(w, r, h.services.Reviews.Delete)
}
