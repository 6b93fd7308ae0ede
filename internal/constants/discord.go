package constants

// Префикс custom_id всех компонентов панели фильтров
const ComponentPrefix = "findhome"

// Действия компонентов
const (
	ActionSelectCity     = "city"
	ActionSelectPrice    = "max_price"
	ActionSelectBedrooms = "min_bedrooms"
	ActionConfirm        = "search"
)

// Подписи элементов панели
const (
	CityPlaceholder     = "Select a city"
	PricePlaceholder    = "Select max price"
	BedroomsPlaceholder = "Select min bedrooms"
	ConfirmButtonLabel  = "🔍 Search Homes"
)

const CommandDescription = "Find homes for sale on realtor.ca"
