package repository

import (
	"fmt"
	"os"
	"slotbook/config"
	"slotbook/internal/domains/catalog/model"
	"slotbook/shared/timeofday"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// SeedSlot and SeedResource mirror the catalog seed file:
//
//	- name: Clubhouse
//	  slots:
//	    - { start: "10:00", end: "16:00", price_per_hour: 100 }
//
// JSON seeds are accepted as well.
type SeedSlot struct {
	Start        string  `yaml:"start"          json:"start"`
	End          string  `yaml:"end"            json:"end"`
	PricePerHour float64 `yaml:"price_per_hour" json:"price_per_hour"`
}

type SeedResource struct {
	Name  string     `yaml:"name"  json:"name"`
	Slots []SeedSlot `yaml:"slots" json:"slots"`
}

// DefaultSeed is the built-in catalog used when no seed file is configured.
func DefaultSeed() []SeedResource {
	return []SeedResource{
		{
			Name: "Clubhouse",
			Slots: []SeedSlot{
				{Start: "10:00", End: "16:00", PricePerHour: 100},
				{Start: "16:00", End: "22:00", PricePerHour: 500},
			},
		},
		{
			Name: "Tennis Court",
			Slots: []SeedSlot{
				{Start: "00:00", End: "23:59", PricePerHour: 50},
			},
		},
	}
}

func ParseSeed(data []byte) ([]SeedResource, error) {
	var seed []SeedResource
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog seed: %w", err)
	}

	return seed, nil
}

func LoadSeed(path string) ([]SeedResource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}

	return ParseSeed(data)
}

// ToModels parses every HH:MM bound once so the catalog only ever holds typed ranges.
func ToModels(seed []SeedResource) ([]model.Resource, error) {
	resources := make([]model.Resource, len(seed))

	for i, res := range seed {
		resources[i].Name = res.Name
		resources[i].Slots = make([]model.TimeSlot, len(res.Slots))

		for j, slot := range res.Slots {
			rng, err := timeofday.ParseRange(slot.Start, slot.End)
			if err != nil {
				return nil, fmt.Errorf("resource %q slot %d: %w", res.Name, j, err)
			}

			resources[i].Slots[j] = model.TimeSlot{Range: rng, PricePerHour: slot.PricePerHour}
		}
	}

	return resources, nil
}

func NewFromSeed(seed []SeedResource) (Catalog, error) {
	resources, err := ToModels(seed)
	if err != nil {
		return nil, err
	}

	return New(resources)
}

// NewFromConfig builds the catalog from CATALOG_SEED_PATH, or the default seed when unset.
func NewFromConfig(cfg *config.Config) (Catalog, error) {
	seed := DefaultSeed()

	if path := cfg.Catalog.SeedPath; path != "" {
		loaded, err := LoadSeed(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to load catalog seed")

			return nil, err
		}

		seed = loaded
	}

	catalog, err := NewFromSeed(seed)
	if err != nil {
		log.Error().Err(err).Msg("invalid catalog seed")

		return nil, err
	}

	log.Info().Int("resources", len(seed)).Msg("Catalog initialized")

	return catalog, nil
}
