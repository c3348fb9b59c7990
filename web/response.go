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
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/tomoncle/contact"
	"github.com/tomoncle/contact/criteria"
	"github.com/tomoncle/contact/database"
	"github.com/tomoncle/contact/filter"
	"github.com/tomoncle/contact/repository"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	headerAlert  = "X-contactApp-alert"
	headerError  = "X-contactApp-error"
	headerParams = "X-contactApp-params"
)

var (
	errIDNotFound = errors.New("entity not found")
	errBadID      = errors.New("id must be an integer")
	errBadBody    = errors.New("malformed request body")
)

// Problem is the JSON body of every error response.
type Problem struct {
	Title      string `json:"title"`
	Status     int    `json:"status"`
	Detail     string `json:"detail,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
	EntityName string `json:"entityName,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadBody
	}
	return nil
}

// problemOf maps an error to its status and error key.
func problemOf(err error) (int, string) {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, contact.ErrIDExists):
		return http.StatusBadRequest, "idexists"
	case errors.Is(err, contact.ErrIDNull):
		return http.StatusBadRequest, "idnull"
	case errors.Is(err, contact.ErrIDInvalid), errors.Is(err, errBadID):
		return http.StatusBadRequest, "idinvalid"
	case errors.Is(err, errIDNotFound):
		return http.StatusBadRequest, "idnotfound"
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "notfound"
	case errors.Is(err, errBadBody):
		return http.StatusBadRequest, "invalidbody"
	case errors.As(err, &verrs):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, criteria.ErrUnknownAttribute):
		return http.StatusBadRequest, "unknownattribute"
	case errors.Is(err, filter.ErrInvalidValue):
		return http.StatusBadRequest, "invalidfilter"
	case errors.Is(err, repository.ErrUnknownSort):
		return http.StatusBadRequest, "invalidsort"
	}
	if is, kind := database.IsSqlError(err); is && kind == database.DuplicateKeyErr {
		return http.StatusConflict, "duplicate"
	}
	return http.StatusInternalServerError, ""
}

func (h *ContactResource) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, key := problemOf(err)
	p := Problem{Title: http.StatusText(status), Status: status, ErrorKey: key}
	if status == http.StatusInternalServerError {
		h.logger.WithFields(logrus.Fields{"req_uri": r.URL.RequestURI(), "error": err}).Error("Request failed")
	} else {
		p.Detail = err.Error()
		p.EntityName = entityName
		w.Header().Set(headerError, "error."+key)
		w.Header().Set(headerParams, entityName)
	}
	respondJSON(w, status, p)
}
