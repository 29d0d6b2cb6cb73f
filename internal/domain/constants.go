package domain

type ContextKey string

// SessionContextKey holds the *Session placed by the session middleware.
const SessionContextKey ContextKey = "session"

// Session identifies one shopper. Every store bundle belongs to one session.
type Session struct {
	ID string
	// New is set when the session was minted for this request because it
	// carried no valid token.
	New bool
}

// Search sort options.
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
	SortRating    = "rating"
	SortRecent    = "recent"
)

// GenderAll disables the gender filter.
const GenderAll = "all"

// SearchOptions are the listing controls layered over raw search results.
type SearchOptions struct {
	Sort   string
	Gender string
}
