// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive vault browser started by a bare `trustme`.
//
// It drives the same client services as the one-shot commands. The master
// password typed at login or unlock stays in the model for the lifetime of
// the program and is dropped on logout.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/service"
)

// Clipboard receives copied usernames and passwords.
type Clipboard interface {
	WriteAll(text string) error
}

type TUI struct {
	services  *service.ClientServices
	clipboard Clipboard
	logger    *logger.Logger
}

func New(services *service.ClientServices, clipboard Clipboard, logger *logger.Logger) *TUI {
	return &TUI{services: services, clipboard: clipboard, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.clipboard)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Debug().Err(err).Msg("vault browser stopped")
		return err
	}
	return nil
}
