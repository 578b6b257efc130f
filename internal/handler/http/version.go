package http

import (
	"net/http"

	"github.com/MKhiriev/cyphers-laptop/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	resp := versionResponse{
		Version: h.build.BuildVersion(),
		Date:    h.build.BuildDate(),
		Commit:  h.build.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing build info")
	}
}
