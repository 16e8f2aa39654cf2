// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-student-registry/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: student-sync\n")
	b.WriteString("Version: " + valueOrNA(info.BuildVersion()) + "\n")
	b.WriteString("Date:    " + valueOrNA(info.BuildDate()) + "\n")
	b.WriteString("Commit:  " + valueOrNA(info.BuildCommit()))

	return renderPage(titleStyle.Render("ABOUT"), b.String(), helpStyle.Render("esc: back"))
}
