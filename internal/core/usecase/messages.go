package usecase

// Тексты, которые видит пользователь
const (
	PanelPrompt          = "Let’s find you a home! Choose your filters below:"
	IncompleteFiltersMsg = "⚠️ Please select all filters before searching."
	SearchInProgressMsg  = "⏳ A search is already running for this panel, please wait."
	NotOwnerMsg          = "🔒 This search belongs to someone else. Start your own with the find-home command."
	UnknownOptionMsg     = "⚠️ That option is not available."
	NoResultsMsg         = "No results found."
	ProviderDownMsg      = "⚠️ Listings are unavailable right now, please try again later."
	BedroomsFieldName    = "Bedrooms"
)
