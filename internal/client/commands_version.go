package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, labelStyle.Render("client")+orNA(a.buildInfo.BuildVersion()))
			fmt.Fprintln(out, labelStyle.Render("built")+orNA(a.buildInfo.BuildDate()))
			fmt.Fprintln(out, labelStyle.Render("commit")+orNA(a.buildInfo.BuildCommit()))

			serverVersion, err := a.adapter.GetServerVersion(cmd.Context())
			if err != nil {
				a.logger.Debug().Err(err).Msg("server version unavailable")
				serverVersion = "unreachable"
			}
			fmt.Fprintln(out, labelStyle.Render("server")+serverVersion)
			return nil
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
