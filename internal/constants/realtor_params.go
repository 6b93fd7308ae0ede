package constants

// Параметры поиска realtor.ca
const (
	RealtorSearchURL   = "https://api2.realtor.ca/Listing.svc/PropertySearch_Post"
	RealtorDetailsBase = "https://www.realtor.ca/real-estate/"
	RealtorHomeURL     = "https://www.realtor.ca"

	CultureEnglish       = 1
	ApplicationID        = 1
	PropertySearchResale = 1
	TransactionForSale   = 2

	// Сколько объявлений показываем за один поиск
	ResultsLimit = 3
)
