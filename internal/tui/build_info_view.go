// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/health-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: ")
	b.WriteString(appName)
	b.WriteString("\nVersion: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\nServer version: ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
