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
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/tomoncle/contact"
	"github.com/tomoncle/contact/database"
)

// Options configures NewRouter. Zero fields get working defaults.
type Options struct {
	Service   *contact.ContactService
	Health    func(ctx context.Context) *database.HealthStatus
	Registry  *prometheus.Registry
	Namespace string
	Logger    *logrus.Logger
}

type healthBody struct {
	Status string                 `json:"status"`
	DB     *database.HealthStatus `json:"db,omitempty"`
}

// NewRouter builds the HTTP handler: the contact API under /api/contacts,
// a health check and the Prometheus scrape endpoint.
func NewRouter(opts Options) http.Handler {
	if opts.Service == nil {
		opts.Service = contact.NewContactService(nil)
	}
	if opts.Health == nil {
		opts.Health = database.GetHealthStatus
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Namespace == "" {
		opts.Namespace = "contact"
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(NewMetrics(opts.Registry, opts.Namespace).Middleware)
	r.Use(RequestLogger(opts.Logger))
	r.Use(chiMiddleware.Recoverer)

	r.Get("/management/health", func(w http.ResponseWriter, r *http.Request) {
		status := opts.Health(r.Context())
		if status == nil || !status.Healthy {
			respondJSON(w, http.StatusServiceUnavailable, healthBody{Status: "DOWN", DB: status})
			return
		}
		respondJSON(w, http.StatusOK, healthBody{Status: "UP", DB: status})
	})
	r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry}))

	resource := NewContactResource(opts.Service, opts.Logger)
	r.Route(contactsURL, resource.Routes)
	return r
}
