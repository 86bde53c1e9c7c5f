// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/algo-sync/internal/utils"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// Requests whose method is not registered for the matched pattern get 404
// instead of 405, so unsupported methods do not reveal that a route exists.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		registered := false
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path && method == r.Method {
				registered = true
			}
			return nil
		})

		if !registered {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
