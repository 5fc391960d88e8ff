// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/trustme/internal/adapter"
	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/internal/service"
	"github.com/MKhiriev/trustme/internal/tui"
	"github.com/MKhiriev/trustme/models"
)

// App is the trustme command line client.
type App struct {
	services  *service.ClientServices
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	prompter  Prompter
	clipboard Clipboard
	out       io.Writer

	// browse runs the interactive vault browser for a bare `trustme`.
	browse func(ctx context.Context) error

	logger *logger.Logger
}

// NewApp builds a client reading prompts from stdin and writing to stdout.
func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	clipboard := systemClipboard{}
	return &App{
		services:  services,
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		prompter:  newTerminalPrompter(os.Stdin, os.Stderr),
		clipboard: clipboard,
		out:       os.Stdout,
		browse:    tui.New(services, clipboard, logger).Run,
		logger:    logger,
	}
}

// Run executes the command named by args.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Str("command", commandName(args)).Msg("command failed")
	}
	return err
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "trustme",
		Short:         "trustme password manager client",
		Long:          "trustme keeps website credentials encrypted with a key derived from your master password.\nThe server only ever stores ciphertext.\n\nRun without a command to open the interactive vault browser.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.browse(cmd.Context())
		},
	}

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.deleteAccountCommand(),
		a.twoFactorCommand(),
		a.addCommand(),
		a.importCommand(),
		a.listCommand(),
		a.showCommand(),
		a.editCommand(),
		a.removeCommand(),
		a.versionCommand(),
	)
	return root
}

// commandName returns the top-level command only. Arguments may carry TOTP
// codes or notes and are not logged.
func commandName(args []string) string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return ""
	}
	return args[0]
}

func (a *App) readRequired(prompt string) (string, error) {
	value, err := a.prompter.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errEmptyInput
	}
	return value, nil
}

func (a *App) readMasterPassword() (string, error) {
	masterPassword, err := a.prompter.ReadSecret("Master password: ")
	if err != nil {
		return "", err
	}
	if masterPassword == "" {
		return "", errEmptyInput
	}
	return masterPassword, nil
}

func parseCredentialID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
