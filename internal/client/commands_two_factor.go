package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) twoFactorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "2fa",
		Short: "Manage TOTP two-factor authentication",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "setup",
			Short: "Generate a TOTP secret to add to an authenticator app",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				setup, err := a.services.TwoFactorService.Setup(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, boxStyle.Render(
					titleStyle.Render("Add this account to your authenticator")+"\n\n"+
						labelStyle.Render("secret")+setup.Secret+"\n"+
						labelStyle.Render("uri")+setup.ProvisioningURI,
				))
				fmt.Fprintln(out, "then run `2fa verify <code>` to turn two-factor authentication on")
				return nil
			},
		},
		&cobra.Command{
			Use:   "verify <code>",
			Short: "Confirm a code, enabling 2FA or unlocking this session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.services.TwoFactorService.Verify(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s two-factor code accepted\n", successStyle.Render("✓"))
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable <code>",
			Short: "Turn two-factor authentication off",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.services.TwoFactorService.Disable(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s two-factor authentication disabled\n", successStyle.Render("✓"))
				return nil
			},
		},
	)

	return cmd
}
