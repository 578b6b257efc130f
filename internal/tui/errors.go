// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/cyphers-laptop/internal/app"
)

// RenderError shows the raw error together with what a chat user would have
// been told.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	content := errorStyle.Render("Error") + "\n\n" + humanizeUnavailableError(err) +
		"\n\n" + helpStyle.Render("User sees: "+app.UserMessage(err))
	return overlayBoxStyle.Render(content)
}

func humanizeUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable or the database cannot be reached: " + err.Error()
	}

	return err.Error()
}
