// Package content loads the static game-content catalog: the closed sets
// of resources and recipes plus the initial facility and transporter
// roster. After loading, recipes reference resources by object identity,
// never by string lookup.
package content

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/andrescamacho/logistics-go/internal/domain/catalog"
	"github.com/andrescamacho/logistics-go/internal/domain/production"
	"github.com/andrescamacho/logistics-go/internal/domain/shared"
	"github.com/andrescamacho/logistics-go/internal/domain/transport"
)

// World is the fully-linked result of loading a world definition
type World struct {
	Resources        []*catalog.Resource
	ResourceBySymbol map[string]*catalog.Resource
	Recipes          []*catalog.Recipe
	RecipeBySymbol   map[string]*catalog.Recipe
	Facilities       []*production.Facility
	Transporters     []*transport.Transporter
}

// File-level schema (mapstructure tags for viper)

type worldFile struct {
	Resources    []resourceEntry    `mapstructure:"resources"`
	Recipes      []recipeEntry      `mapstructure:"recipes"`
	Facilities   []facilityEntry    `mapstructure:"facilities"`
	Transporters []transporterEntry `mapstructure:"transporters"`
}

type resourceEntry struct {
	Symbol     string  `mapstructure:"symbol"`
	Name       string  `mapstructure:"name"`
	BaseValue  float64 `mapstructure:"base_value"`
	UnitVolume float64 `mapstructure:"unit_volume"`
}

type recipeEntry struct {
	Symbol       string       `mapstructure:"symbol"`
	Output       string       `mapstructure:"output"`
	OutputAmount int          `mapstructure:"output_amount"`
	Duration     int          `mapstructure:"duration"`
	Benefit      float64      `mapstructure:"benefit"`
	Inputs       []inputEntry `mapstructure:"inputs"`
}

type inputEntry struct {
	Resource string `mapstructure:"resource"`
	Amount   int    `mapstructure:"amount"`
}

type facilityEntry struct {
	ID           string          `mapstructure:"id"`
	Name         string          `mapstructure:"name"`
	PlayerID     int             `mapstructure:"player_id"`
	X            float64         `mapstructure:"x"`
	Y            float64         `mapstructure:"y"`
	Workshops    []workshopEntry `mapstructure:"workshops"`
	Storage      []inputEntry    `mapstructure:"storage"`
	PullStrategy string          `mapstructure:"pull_strategy"`
}

type workshopEntry struct {
	Recipe string `mapstructure:"recipe"`
	Count  int    `mapstructure:"count"`
}

type transporterEntry struct {
	ID        string  `mapstructure:"id"`
	Name      string  `mapstructure:"name"`
	PlayerID  int     `mapstructure:"player_id"`
	X         float64 `mapstructure:"x"`
	Y         float64 `mapstructure:"y"`
	Speed     float64 `mapstructure:"speed"`
	MaxVolume float64 `mapstructure:"max_volume"`
	Hull      int     `mapstructure:"hull"`
}

// LoadOptions tweaks how loaded entities are configured
type LoadOptions struct {
	// SustainHorizon is applied when a facility declares the "sustained"
	// pull strategy
	SustainHorizon int
}

// Load reads a YAML world definition and builds the linked domain graph
func Load(path string, opts LoadOptions) (*World, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read world file %s: %w", path, err)
	}

	var file worldFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal world file: %w", err)
	}

	return build(&file, opts)
}

func build(file *worldFile, opts LoadOptions) (*World, error) {
	world := &World{
		ResourceBySymbol: make(map[string]*catalog.Resource),
		RecipeBySymbol:   make(map[string]*catalog.Recipe),
	}

	for _, entry := range file.Resources {
		resource, err := catalog.NewResource(entry.Symbol, entry.Name, entry.BaseValue, entry.UnitVolume)
		if err != nil {
			return nil, fmt.Errorf("resource %s: %w", entry.Symbol, err)
		}
		if _, dup := world.ResourceBySymbol[entry.Symbol]; dup {
			return nil, fmt.Errorf("duplicate resource symbol %s", entry.Symbol)
		}
		world.Resources = append(world.Resources, resource)
		world.ResourceBySymbol[entry.Symbol] = resource
	}

	for _, entry := range file.Recipes {
		output, ok := world.ResourceBySymbol[entry.Output]
		if !ok {
			return nil, fmt.Errorf("recipe %s: unknown output resource %s", entry.Symbol, entry.Output)
		}
		var inputs []catalog.RecipeInput
		for _, in := range entry.Inputs {
			resource, ok := world.ResourceBySymbol[in.Resource]
			if !ok {
				return nil, fmt.Errorf("recipe %s: unknown input resource %s", entry.Symbol, in.Resource)
			}
			inputs = append(inputs, catalog.RecipeInput{Resource: resource, Amount: in.Amount})
		}
		recipe, err := catalog.NewRecipe(entry.Symbol, output, entry.OutputAmount, inputs, entry.Duration, entry.Benefit)
		if err != nil {
			return nil, fmt.Errorf("recipe %s: %w", entry.Symbol, err)
		}
		if _, dup := world.RecipeBySymbol[entry.Symbol]; dup {
			return nil, fmt.Errorf("duplicate recipe symbol %s", entry.Symbol)
		}
		world.Recipes = append(world.Recipes, recipe)
		world.RecipeBySymbol[entry.Symbol] = recipe
	}

	for _, entry := range file.Facilities {
		playerID, err := shared.NewPlayerID(entry.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("facility %s: %w", entry.ID, err)
		}
		facility, err := production.NewFacility(entry.ID, entry.Name, shared.NewPosition(entry.X, entry.Y), playerID)
		if err != nil {
			return nil, fmt.Errorf("facility %s: %w", entry.ID, err)
		}

		for _, workshop := range entry.Workshops {
			recipe, ok := world.RecipeBySymbol[workshop.Recipe]
			if !ok {
				return nil, fmt.Errorf("facility %s: unknown recipe %s", entry.ID, workshop.Recipe)
			}
			facility.AddWorkshops(recipe, workshop.Count)
		}

		for _, stock := range entry.Storage {
			resource, ok := world.ResourceBySymbol[stock.Resource]
			if !ok {
				return nil, fmt.Errorf("facility %s: unknown resource %s", entry.ID, stock.Resource)
			}
			facility.Storage().Add(resource, stock.Amount)
		}

		switch entry.PullStrategy {
		case "", "default":
			// NewFacility already installs the default strategy
		case "sustained":
			facility.SetPullStrategy(production.NewSustainedStrategy(opts.SustainHorizon))
		default:
			return nil, fmt.Errorf("facility %s: unknown pull strategy %q", entry.ID, entry.PullStrategy)
		}

		world.Facilities = append(world.Facilities, facility)
	}

	for _, entry := range file.Transporters {
		playerID, err := shared.NewPlayerID(entry.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("transporter %s: %w", entry.ID, err)
		}
		transporter, err := transport.NewTransporter(
			entry.ID, entry.Name, playerID,
			shared.NewPosition(entry.X, entry.Y),
			entry.Speed, entry.MaxVolume, entry.Hull,
		)
		if err != nil {
			return nil, fmt.Errorf("transporter %s: %w", entry.ID, err)
		}
		world.Transporters = append(world.Transporters, transporter)
	}

	return world, nil
}
