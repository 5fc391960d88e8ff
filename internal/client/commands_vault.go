// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/trustme/models"
)

func (a *App) addCommand() *cobra.Command {
	var plain models.PlainCredential

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Encrypt and store a website credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if plain.WebsiteURL == "" {
				if plain.WebsiteURL, err = a.readRequired("Website: "); err != nil {
					return err
				}
			}
			if plain.Username == "" {
				if plain.Username, err = a.readRequired("Username: "); err != nil {
					return err
				}
			}
			if plain.Password, err = a.prompter.ReadSecret("Website password: "); err != nil {
				return err
			}
			if plain.Password == "" {
				return errEmptyInput
			}

			masterPassword, err := a.readMasterPassword()
			if err != nil {
				return err
			}

			added, err := a.services.VaultService.Add(cmd.Context(), masterPassword, plain)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s stored credential %d for %s\n", successStyle.Render("✓"), added.ID, added.WebsiteURL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&plain.WebsiteURL, "website", "w", "", "website URL")
	cmd.Flags().StringVarP(&plain.Username, "username", "u", "", "login on the website")
	cmd.Flags().StringVarP(&plain.Notes, "notes", "n", "", "free-form notes, encrypted as well")

	return cmd
}

// importRecord is one element of the JSON array read by `import`.
type importRecord struct {
	WebsiteURL string `json:"website_url"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Notes      string `json:"notes,omitempty"`
}

func (a *App) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Encrypt and store every credential of a JSON file in one go",
		Long:  "The file holds an array of {\"website_url\", \"username\", \"password\", \"notes\"} objects.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plains, err := readImportFile(args[0])
			if err != nil {
				return err
			}

			masterPassword, err := a.readMasterPassword()
			if err != nil {
				return err
			}

			added, err := a.services.VaultService.Import(cmd.Context(), masterPassword, plains)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s imported %d credentials\n", successStyle.Render("✓"), len(added))
			return nil
		},
	}
}

func readImportFile(path string) ([]models.PlainCredential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var records []importRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("import file %s: %w", path, errEmptyInput)
	}

	plains := make([]models.PlainCredential, 0, len(records))
	for _, r := range records {
		plains = append(plains, models.PlainCredential{
			WebsiteURL: r.WebsiteURL,
			Username:   r.Username,
			Password:   r.Password,
			Notes:      r.Notes,
		})
	}
	return plains, nil
}

func (a *App) listCommand() *cobra.Command {
	var website string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored credentials without decrypting them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := a.services.VaultService.List(cmd.Context(), website)
			if err != nil {
				return err
			}
			renderCredentialList(cmd.OutOrStdout(), credentials)
			return nil
		},
	}
	cmd.Flags().StringVarP(&website, "website", "w", "", "only show websites containing this text")

	return cmd
}

func (a *App) showCommand() *cobra.Command {
	var copyPassword bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Decrypt and print a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCredentialID(args[0])
			if err != nil {
				return err
			}
			masterPassword, err := a.readMasterPassword()
			if err != nil {
				return err
			}

			plain, err := a.services.VaultService.Show(cmd.Context(), masterPassword, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if copyPassword {
				if err = a.clipboard.WriteAll(plain.Password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				renderCredential(out, plain, false)
				fmt.Fprintf(out, "%s password copied to clipboard\n", successStyle.Render("✓"))
				return nil
			}
			renderCredential(out, plain, true)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyPassword, "copy", "c", false, "copy the password to the clipboard instead of printing it")

	return cmd
}

func (a *App) editCommand() *cobra.Command {
	var (
		website, username, notes string
		newPassword, clearNotes  bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCredentialID(args[0])
			if err != nil {
				return err
			}

			var patch models.PlainCredentialPatch
			flags := cmd.Flags()
			if flags.Changed("website") {
				patch.WebsiteURL = &website
			}
			if flags.Changed("username") {
				patch.Username = &username
			}
			if flags.Changed("notes") {
				patch.Notes = &notes
			}
			patch.ClearNotes = clearNotes
			if newPassword {
				password, err := a.prompter.ReadSecret("New website password: ")
				if err != nil {
					return err
				}
				if password == "" {
					return errEmptyInput
				}
				patch.Password = &password
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change, pass at least one of --website, --username, --password, --notes, --clear-notes")
			}

			masterPassword, err := a.readMasterPassword()
			if err != nil {
				return err
			}

			updated, err := a.services.VaultService.Edit(cmd.Context(), masterPassword, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s updated credential %d\n", successStyle.Render("✓"), updated.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&website, "website", "w", "", "new website URL")
	flags.StringVarP(&username, "username", "u", "", "new login")
	flags.BoolVarP(&newPassword, "password", "p", false, "prompt for a new password")
	flags.StringVarP(&notes, "notes", "n", "", "new notes")
	flags.BoolVar(&clearNotes, "clear-notes", false, "remove the notes")
	cmd.MarkFlagsMutuallyExclusive("notes", "clear-notes")

	return cmd
}

func (a *App) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a credential",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCredentialID(args[0])
			if err != nil {
				return err
			}
			if err = a.services.VaultService.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed credential %d\n", successStyle.Render("✓"), id)
			return nil
		},
	}
}
