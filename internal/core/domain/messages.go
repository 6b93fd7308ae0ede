package domain

import "github.com/google/uuid"

// CardField - именованное поле карточки
type CardField struct {
	Name   string
	Value  string
	Inline bool
}

// Card - платформонезависимое описание карточки объявления
type Card struct {
	Title       string
	URL         string
	Description string
	ImageURL    string
	Fields      []CardField
}

// FilterPanel - все, что нужно адаптеру чата, чтобы отрисовать панель фильтров
type FilterPanel struct {
	SessionID uuid.UUID
	Prompt    string
	Catalog   FilterCatalog
}
