package domain

import (
	"fmt"
	"strings"
)

// SearchCriteria - полностью заполненный набор фильтров, с которым идем к провайдеру
type SearchCriteria struct {
	City        string
	MaxPrice    int
	MinBedrooms int
}

// Validate проверяет только форму значений; принадлежность каталогу проверяет FilterCatalog
func (c SearchCriteria) Validate() error {
	if strings.TrimSpace(c.City) == "" {
		return fmt.Errorf("%w: city is empty", ErrInvalidCriteria)
	}
	if c.MaxPrice <= 0 {
		return fmt.Errorf("%w: max price must be positive, got %d", ErrInvalidCriteria, c.MaxPrice)
	}
	if c.MinBedrooms <= 0 {
		return fmt.Errorf("%w: min bedrooms must be positive, got %d", ErrInvalidCriteria, c.MinBedrooms)
	}
	return nil
}

// FilterField - один из трех пикеров панели фильтров
type FilterField int

const (
	FieldCity FilterField = iota + 1
	FieldMaxPrice
	FieldMinBedrooms
)

func (f FilterField) String() string {
	switch f {
	case FieldCity:
		return "city"
	case FieldMaxPrice:
		return "max_price"
	case FieldMinBedrooms:
		return "min_bedrooms"
	default:
		return "unknown"
	}
}

// ParseFilterField - обратное преобразование для String()
func ParseFilterField(s string) (FilterField, error) {
	switch s {
	case "city":
		return FieldCity, nil
	case "max_price":
		return FieldMaxPrice, nil
	case "min_bedrooms":
		return FieldMinBedrooms, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}
