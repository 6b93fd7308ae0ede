package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PriceTier - один вариант в пикере максимальной цены
type PriceTier struct {
	Label string
	Value int
}

// MaxPickerOptions - сколько вариантов помещается в один select-пикер Discord
const MaxPickerOptions = 25

// FilterCatalog - закрытые множества значений для трех пикеров
type FilterCatalog struct {
	Cities     []string
	PriceTiers []PriceTier
	Bedrooms   []int
}

// Validate проверяет, что каталог пригоден для построения панели
func (c FilterCatalog) Validate() error {
	if len(c.Cities) == 0 {
		return fmt.Errorf("filter catalog: at least one city is required")
	}
	if len(c.PriceTiers) == 0 {
		return fmt.Errorf("filter catalog: at least one price tier is required")
	}
	if len(c.Bedrooms) == 0 {
		return fmt.Errorf("filter catalog: at least one bedrooms option is required")
	}
	sizes := []struct {
		name string
		n    int
	}{
		{"cities", len(c.Cities)},
		{"price tiers", len(c.PriceTiers)},
		{"bedrooms options", len(c.Bedrooms)},
	}
	for _, size := range sizes {
		if size.n > MaxPickerOptions {
			return fmt.Errorf("filter catalog: %d %s exceed the picker limit of %d", size.n, size.name, MaxPickerOptions)
		}
	}

	seen := make(map[string]bool, len(c.Cities))
	for _, city := range c.Cities {
		key := strings.ToLower(strings.TrimSpace(city))
		if key == "" {
			return fmt.Errorf("filter catalog: empty city name")
		}
		if seen[key] {
			return fmt.Errorf("filter catalog: duplicate city %q", city)
		}
		seen[key] = true
	}

	prices := make(map[int]bool, len(c.PriceTiers))
	for _, tier := range c.PriceTiers {
		if tier.Value <= 0 {
			return fmt.Errorf("filter catalog: price tier %q must be positive", tier.Label)
		}
		if prices[tier.Value] {
			return fmt.Errorf("filter catalog: duplicate price tier %d", tier.Value)
		}
		prices[tier.Value] = true
	}

	beds := make(map[int]bool, len(c.Bedrooms))
	for _, b := range c.Bedrooms {
		if b <= 0 {
			return fmt.Errorf("filter catalog: bedrooms option %d must be positive", b)
		}
		if beds[b] {
			return fmt.Errorf("filter catalog: duplicate bedrooms option %d", b)
		}
		beds[b] = true
	}
	return nil
}

// ResolveCity возвращает каноническое название города из каталога
func (c FilterCatalog) ResolveCity(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, city := range c.Cities {
		if strings.EqualFold(city, raw) {
			return city, nil
		}
	}
	return "", fmt.Errorf("%w: city %q", ErrUnknownOption, raw)
}

// ResolvePrice принимает как "750000", так и подпись вида "$750,000"
func (c FilterCatalog) ResolvePrice(raw string) (PriceTier, error) {
	value, err := ParsePrice(raw)
	if err != nil {
		return PriceTier{}, fmt.Errorf("%w: price %q", ErrUnknownOption, raw)
	}
	for _, tier := range c.PriceTiers {
		if tier.Value == value {
			return tier, nil
		}
	}
	return PriceTier{}, fmt.Errorf("%w: price %q", ErrUnknownOption, raw)
}

func (c FilterCatalog) ResolveBedrooms(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: bedrooms %q", ErrUnknownOption, raw)
	}
	for _, b := range c.Bedrooms {
		if b == n {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: bedrooms %q", ErrUnknownOption, raw)
}

// CheckCriteria проверяет, что критерии составлены из значений каталога
func (c FilterCatalog) CheckCriteria(criteria SearchCriteria) (SearchCriteria, error) {
	if err := criteria.Validate(); err != nil {
		return SearchCriteria{}, err
	}
	city, err := c.ResolveCity(criteria.City)
	if err != nil {
		return SearchCriteria{}, err
	}
	if _, err := c.ResolvePrice(strconv.Itoa(criteria.MaxPrice)); err != nil {
		return SearchCriteria{}, err
	}
	if _, err := c.ResolveBedrooms(strconv.Itoa(criteria.MinBedrooms)); err != nil {
		return SearchCriteria{}, err
	}
	criteria.City = city
	return criteria, nil
}

// ParsePrice убирает "$", запятые и пробелы и разбирает целое число
func ParsePrice(raw string) (int, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(raw))
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("price must be positive, got %d", value)
	}
	return value, nil
}
