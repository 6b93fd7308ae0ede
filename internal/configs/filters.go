package configs

import (
	_ "embed"
	"findhome-bot/internal/core/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

//go:embed filters.yaml
var defaultFiltersYAML []byte

type filtersFile struct {
	Cities     []string `yaml:"cities"`
	PriceTiers []struct {
		Label string `yaml:"label"`
		Value int    `yaml:"value"`
	} `yaml:"price_tiers"`
	Bedrooms []int `yaml:"bedrooms"`
}

// LoadFilterCatalog читает каталог из файла, а при пустом пути берет встроенный
func LoadFilterCatalog(path string) (domain.FilterCatalog, error) {
	data := defaultFiltersYAML
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return domain.FilterCatalog{}, fmt.Errorf("read filters file %s: %w", path, err)
		}
		data = raw
	}
	return ParseFilterCatalog(data)
}

func ParseFilterCatalog(data []byte) (domain.FilterCatalog, error) {
	var file filtersFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return domain.FilterCatalog{}, fmt.Errorf("parse filters yaml: %w", err)
	}

	catalog := domain.FilterCatalog{
		Cities:   file.Cities,
		Bedrooms: file.Bedrooms,
	}
	for _, tier := range file.PriceTiers {
		label := tier.Label
		if label == "" {
			label = fmt.Sprintf("$%d", tier.Value)
		}
		catalog.PriceTiers = append(catalog.PriceTiers, domain.PriceTier{Label: label, Value: tier.Value})
	}

	if err := catalog.Validate(); err != nil {
		return domain.FilterCatalog{}, err
	}
	return catalog, nil
}
