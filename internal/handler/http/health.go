// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/cyphers-laptop/internal/logger"
)

// healthz reports that the process is alive. It never consults the gate so
// that a slow migration does not get the pod restarted.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// readyz answers 503 until the startup sequence completed.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")

	if err := h.gate.Ready(); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.readyz").Msg("not ready")
		w.WriteHeader(statusFromError(err))
		w.Write([]byte(err.Error()))
		return
	}

	w.Write([]byte("ready"))
}
