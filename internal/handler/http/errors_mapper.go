package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cyphers-laptop/internal/app"
)

var errorStatusMap = map[error]int{
	app.ErrNotReady: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
