package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/logistics-go/internal/adapters/persistence"
	"github.com/andrescamacho/logistics-go/internal/domain/events"
	"github.com/andrescamacho/logistics-go/internal/infrastructure/config"
	"github.com/andrescamacho/logistics-go/internal/infrastructure/database"
)

// NewEventsCommand creates the events command with subcommands
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect persisted simulation event logs",
	}

	cmd.AddCommand(newEventsListCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var runID string
	var entity string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the events of a persisted run in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runID == "" {
				return fmt.Errorf("--run is required")
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			db, err := database.NewConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			repo := persistence.NewGormEventRepository(db, nil)

			var evts []events.Event
			if entity != "" {
				evts, err = repo.ListByEntity(cmd.Context(), runID, entity)
			} else {
				evts, err = repo.ListByRun(cmd.Context(), runID)
			}
			if err != nil {
				return err
			}

			for _, evt := range evts {
				fmt.Println(evt)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Run id to list events for")
	cmd.Flags().StringVar(&entity, "entity", "", "Restrict to one entity id")

	return cmd
}
