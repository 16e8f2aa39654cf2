// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the student sync
// client. It implements service.PresentationSink on top of a bubbletea
// program: every sink call becomes a message handled by a single model.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-student-registry/internal/logger"
	"github.com/MKhiriev/go-student-registry/internal/service"
	"github.com/MKhiriev/go-student-registry/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	sink      *programSink
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption
	logger    *logger.Logger
}

// New creates a TUI. Extra program options are appended to the defaults,
// which tests use to swap the terminal for plain readers and writers.
func New(buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		sink:      &programSink{},
		buildInfo: buildInfo,
		options:   options,
		logger:    logger,
	}
}

// Sink returns the presentation sink to hand to the sync engine. It may be
// used before Run; messages are queued until the program starts.
func (t *TUI) Sink() service.PresentationSink {
	return t.sink
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, syncService service.StudentSyncService) error {
	m := newModel(ctx, syncService, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	// Init runs on the pointer, so the replay queue filled below is seen.
	program := tea.NewProgram(&m, opts...)

	m.replay = t.sink.attach(program)
	defer t.sink.detach()

	t.logger.Info().Int("replayed", len(m.replay)).Msg("starting terminal UI")

	_, err := program.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("terminal UI stopped by context")
		return nil
	}
	if err != nil {
		t.logger.Err(err).Msg("terminal UI failed")
		return err
	}

	t.logger.Info().Msg("terminal UI closed by user")
	return nil
}
