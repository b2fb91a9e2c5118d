package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"backoffice/internal/config"
	"backoffice/internal/gateway"
	"backoffice/pkg/logger"
)

type contextKey string

const gatewayKey contextKey = "gateway"

// NewRootCommand builds the catalog command. Subcommands find the API client
// in the command context.
func NewRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Browse providers and activities of the booking API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			api, err := config.LoadAPI()
			if err != nil {
				return fmt.Errorf("failed to load API configuration: %w", err)
			}

			log, err := logger.New(logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			client := gateway.NewClient(cmd.Context(), *api, log)
			cmd.SetContext(withGateway(cmd.Context(), client))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("json", false, "print results as JSON")

	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
