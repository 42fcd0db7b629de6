package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/cli/formatter"
	"github.com/alexanderramin/mooncyc/internal/llm"
	"github.com/alexanderramin/mooncyc/internal/secrets"
	"github.com/spf13/cobra"
)

func newAICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Manage AI-generated guidance",
	}

	cmd.AddCommand(
		newAISetKeyCmd(app),
		newAIClearKeyCmd(),
		newAIStatusCmd(app),
	)

	return cmd
}

func newAISetKeyCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store the Anthropic API key in the OS keyring",
		Long: `Store the Anthropic API key in the OS keyring.

Without --key the key is read from a masked prompt in a terminal, or from
the first line of stdin otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				if app.interactive() {
					if err := apiKeyForm(&key).Run(); err != nil {
						return err
					}
				} else {
					line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					if err != nil && line == "" {
						return errors.New("no API key given on stdin")
					}
					key = line
				}
			}
			if err := secrets.SetAPIKey(key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored API key %s\n", secrets.Mask(strings.TrimSpace(key)))
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "API key (prefer the prompt to keep it out of shell history)")

	return cmd
}

func newAIClearKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-key",
		Short: "Remove the stored Anthropic API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := secrets.DeleteAPIKey()
			if errors.Is(err, secrets.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No API key stored.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed stored API key.")
			return nil
		},
	}
}

func newAIStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show how guidance is generated",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LLM
			state := formatter.Dim("disabled, using pre-written guidance")
			if app.Guidance.AIEnabled() {
				state = formatter.StyleSage.Render("enabled")
			}

			rows := [][]string{
				{"AI guidance", state},
				{"Provider", string(cfg.Provider)},
				{"Model", cfg.Model},
				{"Endpoint", cfg.Endpoint},
			}
			if cfg.Provider == llm.ProviderAnthropic {
				rows = append(rows, []string{"API key", keyStatus(cfg.APIKey)})
			}

			var b strings.Builder
			for _, r := range rows {
				fmt.Fprintf(&b, "%s  %s\n", formatter.Dim(fmt.Sprintf("%-12s", r[0])), r[1])
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}

func keyStatus(resolved string) string {
	stored, err := secrets.GetAPIKey()
	switch {
	case err == nil && stored == resolved:
		return secrets.Mask(resolved) + formatter.Dim(" (keyring)")
	case resolved != "":
		return secrets.Mask(resolved) + formatter.Dim(" (ANTHROPIC_API_KEY)")
	case errors.Is(err, secrets.ErrKeyringUnavailable):
		return formatter.StyleRose.Render("not set") + formatter.Dim(" (keyring unavailable)")
	default:
		return formatter.StyleRose.Render("not set") + formatter.Dim(" (run: mooncyc ai set-key)")
	}
}
