// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-student-registry/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// chi answers 405 when a path matches but the method does not; the
// collection server answers 404 with a {"message"} body instead.
//
// Route patterns are compared to the raw request path, so parameterised
// routes never match here and always end in 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		// method is registered, hand back to the normal pipeline
		router.ServeHTTP(w, r)
	}
}
