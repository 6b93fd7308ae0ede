package domain

// Значения-заглушки для неполных записей провайдера
const (
	NoTitle             = "No title"
	NotAvailable        = "N/A"
	PlaceholderImageURL = "https://via.placeholder.com/400x200.png?text=No+Image"
)

// Listing - нормализованная карточка объекта недвижимости для отображения.
// Создается на каждый элемент ответа провайдера и дальше не изменяется.
type Listing struct {
	Title    string
	Price    string
	Bedrooms string
	URL      string
	ImageURL string
}

// FetchStatus различает "ничего не найдено" и "запрос не удался"
type FetchStatus int

const (
	FetchSucceeded FetchStatus = iota
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchSucceeded:
		return "ok"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchResult - результат обращения к провайдеру.
// При FetchFailed Listings всегда пуст, а Err содержит причину.
type FetchResult struct {
	Status   FetchStatus
	Listings []Listing
	Err      error
}

// FetchOK создает успешный результат
func FetchOK(listings []Listing) FetchResult {
	if listings == nil {
		listings = []Listing{}
	}
	return FetchResult{Status: FetchSucceeded, Listings: listings}
}

// FetchFailure создает результат-ошибку без объявлений
func FetchFailure(err error) FetchResult {
	return FetchResult{Status: FetchFailed, Listings: []Listing{}, Err: err}
}

func (r FetchResult) Failed() bool {
	return r.Status == FetchFailed
}

// Reason - текст ошибки для логов; пустой, если Err не задан
func (r FetchResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
