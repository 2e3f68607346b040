package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkline/restaurants-core/internal/restaurant"
)

// handleCreateRestaurant persists a new restaurant record.
//
// The five business fields are validated in fixed order and the first
// missing one is reported as a 400 before the store is touched. On success
// the store assigns the identifier and the full record is returned with 201.
func (s *Server) handleCreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var rec restaurant.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	// The store assigns the identifier at creation; a client-sent id is
	// discarded so it can never become the document _id.
	rec.ID = primitive.NilObjectID

	if verr := restaurant.Validate(&rec); verr != nil {
		writeValidationError(w, verr.Message)
		return
	}

	if err := s.repo.Insert(r.Context(), &rec); err != nil {
		s.logger.Error("failed to create restaurant", "error", err)
		writeInternalError(w, "failed to create restaurant")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// handleListRestaurants returns one page of records matching the query
// filters, sorted by rating descending.
//
// Filters are exact-match on address, phoneNumber, emailAddress, and rating;
// page is 1-indexed and defaults to 1. A malformed rating or page value is
// surfaced as a server error, matching the store's behaviour for an
// uncastable query value.
func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := restaurant.Filter{
		Address:      q.Get("address"),
		PhoneNumber:  q.Get("phoneNumber"),
		EmailAddress: q.Get("emailAddress"),
	}
	if v := q.Get("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.logger.Error("failed to list restaurants", "error", err, "rating", v)
			writeInternalError(w, "failed to list restaurants")
			return
		}
		filter.Rating = &rating
	}

	page := 1
	if v := q.Get("page"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			s.logger.Error("failed to list restaurants", "error", err, "page", v)
			writeInternalError(w, "failed to list restaurants")
			return
		}
		page = parsed
	}

	restaurants, err := s.repo.List(r.Context(), filter, page)
	if err != nil {
		s.logger.Error("failed to list restaurants", "error", err)
		writeInternalError(w, "failed to list restaurants")
		return
	}

	writeJSON(w, http.StatusOK, restaurants)
}

// handleGetRestaurant returns a single record by identifier.
//
// A well-formed identifier that matches no record is a 404; a malformed
// identifier or store failure is a 500 carrying the underlying message.
// This is the only operation that catches store errors per-call.
func (s *Server) handleGetRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, restaurant.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// handleUpdateRestaurant replaces all five business fields of a record.
//
// Validation is identical to create: same order, same short-circuit, same
// messages. When the identifier matches no record the operation still
// reports success with a null body — deliberately asymmetric with the by-id
// lookup.
func (s *Server) handleUpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var rec restaurant.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if verr := restaurant.Validate(&rec); verr != nil {
		writeValidationError(w, verr.Message)
		return
	}

	updated, err := s.repo.Replace(r.Context(), id, &rec)
	if err != nil {
		s.logger.Error("failed to update restaurant", "error", err, "id", id)
		writeInternalError(w, "failed to update restaurant")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteRestaurant removes a record unconditionally.
//
// Deletion reports success whether or not a record existed at the
// identifier; only a malformed identifier or store failure errors.
func (s *Server) handleDeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.repo.Delete(r.Context(), id); err != nil {
		s.logger.Error("failed to delete restaurant", "error", err, "id", id)
		writeInternalError(w, "failed to delete restaurant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "true"})
}
