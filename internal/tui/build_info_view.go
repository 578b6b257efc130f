// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/cyphers-laptop/models"

func RenderBuildInfo(info models.AppBuildInfo) string {
	return renderPage("Cypher's Laptop", renderRows([][2]string{
		{"Version", valueOrNA(info.BuildVersion())},
		{"Date", valueOrNA(info.BuildDate())},
		{"Commit", valueOrNA(info.BuildCommit())},
	}), "")
}
