package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/trustme/models"
)

func (a *App) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register [username]",
		Short: "Create an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := a.usernameArg(args)
			if err != nil {
				return err
			}

			masterPassword, err := a.readMasterPassword()
			if err != nil {
				return err
			}
			confirmation, err := a.prompter.ReadSecret("Repeat master password: ")
			if err != nil {
				return err
			}
			if masterPassword != confirmation {
				return errPasswordMismatch
			}

			registered, err := a.services.AuthService.Register(cmd.Context(), models.User{
				Username:       username,
				MasterPassword: masterPassword,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s account %q created, run `login` to start\n",
				successStyle.Render("✓"), registered.Username)
			return nil
		},
	}
}

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Log in and keep the session locally",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := a.usernameArg(args)
			if err != nil {
				return err
			}
			masterPassword, err := a.readMasterPassword()
			if err != nil {
				return err
			}

			session, err := a.services.AuthService.Login(cmd.Context(), models.User{
				Username:       username,
				MasterPassword: masterPassword,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s logged in as %s\n", successStyle.Render("✓"), session.Username)
			if !session.VaultUnlocked() {
				fmt.Fprintln(out, "two-factor authentication is on, run `2fa verify <code>` to unlock the vault")
			}
			return nil
		},
	}
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s logged out\n", successStyle.Render("✓"))
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account the session belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := a.services.AuthService.Profile(cmd.Context())
			if err != nil {
				return err
			}

			twoFactor := "off"
			if profile.TwoFactorEnabled {
				twoFactor = "on"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, labelStyle.Render("username")+profile.Username)
			fmt.Fprintln(out, labelStyle.Render("id")+strconv.FormatInt(profile.ID, 10))
			fmt.Fprintln(out, labelStyle.Render("2fa")+twoFactor)
			return nil
		},
	}
}

func (a *App) deleteAccountCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete the account and every stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.services.AuthService.Session(cmd.Context())
			if err != nil {
				return err
			}

			if !yes {
				answer, err := a.prompter.ReadLine(fmt.Sprintf("Type %q to delete the account and all credentials: ", session.Username))
				if err != nil {
					return err
				}
				if strings.TrimSpace(answer) != session.Username {
					return errAborted
				}
			}

			if err = a.services.AuthService.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s account %q deleted\n", successStyle.Render("✓"), session.Username)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (a *App) usernameArg(args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}
	return a.readRequired("Username: ")
}
