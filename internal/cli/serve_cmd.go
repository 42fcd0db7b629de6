package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/mooncyc/internal/httpapi"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// newServer builds the JSON API over the same services the CLI uses.
func newServer(app *App) *fiber.App {
	handler := httpapi.NewHandler(httpapi.Services{
		Cycle:    app.Cycle,
		Symptoms: app.Symptoms,
		Tasks:    app.Tasks,
		Guidance: app.Guidance,
	}, app.Logger)
	return httpapi.NewApp(handler)
}

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := newServer(app)

			sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stopSignals()

			go func() {
				<-sigCtx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.ShutdownWithContext(shutdownCtx); err != nil && app.Logger != nil {
					app.Logger.Error("server shutdown failed", "error", err)
				}
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on http://%s\n", addr)
			if app.Logger != nil {
				app.Logger.Info("http_listen", "addr", addr)
			}
			if err := server.Listen(addr); err != nil {
				return fmt.Errorf("serving http: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.HTTPAddr, "Listen address")

	return cmd
}
