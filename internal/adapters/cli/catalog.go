package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/logistics-go/internal/adapters/content"
	"github.com/andrescamacho/logistics-go/internal/infrastructure/config"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the game-content catalog",
	}

	cmd.AddCommand(newCatalogShowCommand())

	return cmd
}

func newCatalogShowCommand() *cobra.Command {
	var worldPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resources, recipes and entities of a world file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)
			if worldPath == "" {
				worldPath = cfg.Content.Path
			}

			world, err := content.Load(worldPath, content.LoadOptions{
				SustainHorizon: cfg.Simulation.SustainHorizon,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Resources (%d):\n", len(world.Resources))
			for _, resource := range world.Resources {
				fmt.Printf("  %-16s %-24s value=%.1f volume=%.2f\n",
					resource.Symbol(), resource.Name(), resource.BaseValue(), resource.UnitVolume())
			}

			fmt.Printf("Recipes (%d):\n", len(world.Recipes))
			for _, recipe := range world.Recipes {
				fmt.Printf("  %-16s -> %dx %s over %d ticks\n",
					recipe.Symbol(), recipe.OutputAmount(), recipe.Output().Symbol(), recipe.Duration())
				for _, input := range recipe.Inputs() {
					fmt.Printf("    needs %dx %s\n", input.Amount, input.Resource.Symbol())
				}
			}

			fmt.Printf("Facilities (%d):\n", len(world.Facilities))
			for _, facility := range world.Facilities {
				fmt.Printf("  %-16s %-24s player=%s at %s\n",
					facility.ID(), facility.Name(), facility.PlayerID(), facility.Position())
			}

			fmt.Printf("Transporters (%d):\n", len(world.Transporters))
			for _, transporter := range world.Transporters {
				fmt.Printf("  %-16s %-24s player=%s speed=%.1f volume=%.1f\n",
					transporter.ID(), transporter.Name(), transporter.PlayerID(),
					transporter.Speed(), transporter.MaxVolume())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&worldPath, "world", "", "Path to YAML world definition")

	return cmd
}
