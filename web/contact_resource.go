/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/tomoncle/contact"
	"github.com/tomoncle/contact/database"
	"github.com/tomoncle/contact/domain"
	"github.com/tomoncle/contact/types"
)

const (
	entityName  = "contact"
	contactsURL = "/api/contacts"
)

// ContactResource serves the contact REST API.
type ContactResource struct {
	service *contact.ContactService
	logger  *logrus.Logger
}

func NewContactResource(service *contact.ContactService, logger *logrus.Logger) *ContactResource {
	return &ContactResource{service: service, logger: logger}
}

// Routes mounts the resource. PUT and PATCH without an id answer 405.
func (h *ContactResource) Routes(r chi.Router) {
	jsonBody := chiMiddleware.AllowContentType("application/json")
	patchBody := chiMiddleware.AllowContentType("application/json", "application/merge-patch+json")

	r.With(jsonBody).Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/count", h.count)
	r.Get("/{id}", h.get)
	r.With(jsonBody).Put("/{id}", h.update)
	r.With(patchBody).Patch("/{id}", h.partialUpdate)
	r.Delete("/{id}", h.delete)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errBadID
	}
	return id, nil
}

func alert(w http.ResponseWriter, action string, id int64) {
	w.Header().Set(headerAlert, "contactApp."+entityName+"."+action)
	w.Header().Set(headerParams, strconv.FormatInt(id, 10))
}

func (h *ContactResource) create(w http.ResponseWriter, r *http.Request) {
	var dto domain.ContactDTO
	if err := decodeBody(r, &dto); err != nil {
		h.respondError(w, r, err)
		return
	}
	created, err := h.service.Create(r.Context(), &dto)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Location", contactsURL+"/"+strconv.FormatInt(*created.ID, 10))
	alert(w, "created", *created.ID)
	respondJSON(w, http.StatusCreated, created)
}

func (h *ContactResource) update(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.service.Update)
}

func (h *ContactResource) partialUpdate(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.service.PartialUpdate)
}

type updateFunc = func(ctx context.Context, id int64, dto *domain.ContactDTO) (*domain.ContactDTO, error)

// write runs a full or partial update. Updating a missing contact is a
// client error here, not a 404.
func (h *ContactResource) write(w http.ResponseWriter, r *http.Request, fn updateFunc) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var dto domain.ContactDTO
	if err := decodeBody(r, &dto); err != nil {
		h.respondError(w, r, err)
		return
	}
	updated, err := fn(r.Context(), id, &dto)
	if errors.Is(err, database.ErrNotFound) {
		err = errIDNotFound
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	alert(w, "updated", id)
	respondJSON(w, http.StatusOK, updated)
}

func (h *ContactResource) list(w http.ResponseWriter, r *http.Request) {
	c, err := domain.ParseContactCriteria(r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	page, size, orders := pageParams(r.URL.Query())
	result, err := h.service.FindByCriteria(r.Context(), c, types.NewPageRequest(page+1, size, orders...))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	setPaginationHeaders(w, r, page, size, result.Total)
	respondJSON(w, http.StatusOK, result.Items)
}

func (h *ContactResource) count(w http.ResponseWriter, r *http.Request) {
	c, err := domain.ParseContactCriteria(r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	n, err := h.service.CountByCriteria(r.Context(), c)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (h *ContactResource) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	dto, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// delete answers 204 whether or not the contact existed.
func (h *ContactResource) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil && !errors.Is(err, database.ErrNotFound) {
		h.respondError(w, r, err)
		return
	}
	alert(w, "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}
