package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ffcommunity/banwatch/internal/dependencies/clock"
	"github.com/ffcommunity/banwatch/internal/model"
	"github.com/ffcommunity/banwatch/internal/services/format"
	"github.com/ffcommunity/banwatch/internal/services/lookup"
	"github.com/ffcommunity/banwatch/internal/services/playerid"
)

func newCheckCmd() *cobra.Command {
	var (
		lang      string
		asJSON    bool
		endpoints []string
		allowMock bool
	)

	cmd := &cobra.Command{
		Use:   "check <player_id>",
		Short: "Check a player's ban status once and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !playerid.Valid(id) {
				return fmt.Errorf("%w: must be %d-%d digits", model.ErrInvalidPlayerID, playerid.MinLen, playerid.MaxLen)
			}

			code := model.Lang(lang)
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			cfg := lookup.DefaultConfig()
			if len(endpoints) > 0 {
				cfg.Endpoints = endpoints
			}
			cfg.AllowMockFallback = allowMock

			resolver := lookup.New(cfg, clock.New(), logger)
			record, err := resolver.Resolve(cmd.Context(), model.PlayerID(id))
			if err != nil {
				return err
			}

			payload, err := format.Build(record, code)
			if err != nil {
				return err
			}

			out := NewOutput(asJSON)
			out.PrintResult(record, payload)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", string(model.DefaultLang), "Result language: en, fr")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw record as JSON")
	cmd.Flags().StringSliceVar(&endpoints, "endpoint", nil, "Ban-check endpoint URL (repeatable)")
	cmd.Flags().BoolVar(&allowMock, "mock", true, "Fall back to deterministic demo data when endpoints fail")

	return cmd
}
