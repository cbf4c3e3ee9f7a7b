package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/logistics-go/internal/adapters/content"
	"github.com/andrescamacho/logistics-go/internal/adapters/persistence"
	"github.com/andrescamacho/logistics-go/internal/domain/trading"
	"github.com/andrescamacho/logistics-go/internal/engine"
	"github.com/andrescamacho/logistics-go/internal/infrastructure/config"
	"github.com/andrescamacho/logistics-go/internal/infrastructure/database"
)

// NewSimulateCommand creates the simulate command with subcommands
func NewSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the production and logistics simulation",
	}

	cmd.AddCommand(newSimulateRunCommand())

	return cmd
}

func newSimulateRunCommand() *cobra.Command {
	var worldPath string
	var ticks int
	var realTime bool
	var noPersist bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and persist its event log",
		Long: `Run a simulation from a YAML world definition.

In batch mode (default) the requested number of ticks runs as fast as
possible. With --real-time, ticks are paced by the configured tick rate.
Events and a final storage snapshot are written to the database unless
--no-persist is given.

Examples:
  logistics simulate run --world world.yaml --ticks 500
  logistics simulate run --world world.yaml --real-time`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if worldPath == "" {
				worldPath = cfg.Content.Path
			}
			if ticks == 0 {
				ticks = cfg.Simulation.Ticks
			}

			world, err := content.Load(worldPath, content.LoadOptions{
				SustainHorizon: cfg.Simulation.SustainHorizon,
			})
			if err != nil {
				return err
			}

			matcher := trading.NewMatcher()
			matcher.ReserveAssigned = cfg.Simulation.ReserveAssigned
			sim := engine.NewSimulation(matcher, world.Facilities, world.Transporters)

			log.Printf("run %s: %d facilities, %d transporters, %d ticks",
				sim.RunID(), len(world.Facilities), len(world.Transporters), ticks)

			if realTime {
				limiter := rate.NewLimiter(rate.Limit(cfg.Simulation.TickRate), 1)
				for i := 0; i < ticks; i++ {
					if err := limiter.Wait(cmd.Context()); err != nil {
						return err
					}
					sim.Tick()
				}
			} else {
				sim.RunTicks(ticks)
			}

			evts := sim.Events()
			log.Printf("run %s: finished at tick %d with %d events",
				sim.RunID(), sim.CurrentTick(), len(evts))
			if verbose {
				for _, evt := range evts {
					fmt.Println(evt)
				}
			}

			if noPersist {
				return nil
			}
			return persistRun(cmd.Context(), cfg, sim)
		},
	}

	cmd.Flags().StringVar(&worldPath, "world", "", "Path to YAML world definition")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "Number of ticks to run (default from config)")
	cmd.Flags().BoolVar(&realTime, "real-time", false, "Pace ticks by the configured tick rate")
	cmd.Flags().BoolVar(&noPersist, "no-persist", false, "Skip writing events and snapshots to the database")

	return cmd
}

func persistRun(ctx context.Context, cfg *config.Config, sim *engine.Simulation) error {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	eventRepo := persistence.NewGormEventRepository(db, nil)
	if err := eventRepo.AppendAll(ctx, sim.RunID(), sim.Events()); err != nil {
		return fmt.Errorf("failed to persist events: %w", err)
	}

	snapshotRepo := persistence.NewGormSnapshotRepository(db)
	if err := snapshotRepo.SaveSnapshot(ctx, sim.RunID(), sim.CurrentTick(), sim.Facilities()); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	log.Printf("run %s: persisted", sim.RunID())
	return nil
}
