package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/metrics"
	"dunkstore-backend/pkg/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Relevance points per matching field. Scores are summed without normalization.
const (
	scoreName        = 10
	scoreDescription = 5
	scoreColor       = 3
	scoreGender      = 2
)

// ProductLister supplies the catalog that searches run against.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// normalizeQuery trims and lowercases q. An empty result means "no search".
func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// MatchesQuery reports whether p matches q on any searchable field.
// q must already be normalized.
func MatchesQuery(p domain.Product, q string) bool {
	if q == "" {
		return false
	}
	if utils.ContainsFold(p.Name, q) ||
		utils.ContainsFold(p.Description, q) ||
		utils.ContainsFold(string(p.Gender), q) ||
		utils.ContainsFold(p.Brand, q) ||
		utils.ContainsFold(p.Category, q) {
		return true
	}
	for _, c := range p.Colors {
		if utils.ContainsFold(c, q) {
			return true
		}
	}
	for _, f := range p.Features {
		if utils.ContainsFold(f, q) {
			return true
		}
	}
	return false
}

// SearchProducts returns the catalog products matching q, in catalog order.
// A blank query yields an empty, non-nil slice.
func SearchProducts(catalog []domain.Product, q string) []domain.Product {
	q = normalizeQuery(q)
	out := []domain.Product{}
	if q == "" {
		return out
	}
	for _, p := range catalog {
		if MatchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// RelevanceScore weighs where q occurs in p.
func RelevanceScore(p domain.Product, q string) int {
	q = normalizeQuery(q)
	if q == "" {
		return 0
	}
	score := 0
	if utils.ContainsFold(p.Name, q) {
		score += scoreName
	}
	if utils.ContainsFold(p.Description, q) {
		score += scoreDescription
	}
	for _, c := range p.Colors {
		if utils.ContainsFold(c, q) {
			score += scoreColor
			break
		}
	}
	if utils.ContainsFold(string(p.Gender), q) {
		score += scoreGender
	}
	return score
}

// ApplySearchOptions filters results by gender and orders them. The input
// slice is not modified. Ties keep their incoming order, and an empty Sort
// keeps it entirely. Unknown sorts fall back to relevance.
func ApplySearchOptions(results []domain.Product, q string, opts domain.SearchOptions) []domain.Product {
	out := make([]domain.Product, 0, len(results))
	for _, p := range results {
		if opts.Gender == "" || strings.EqualFold(opts.Gender, domain.GenderAll) || strings.EqualFold(opts.Gender, string(p.Gender)) {
			out = append(out, p)
		}
	}

	switch opts.Sort {
	case "":
	case domain.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case domain.SortName:
		sortByName(out)
	case domain.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		scores := make(map[int]int, len(out))
		for _, p := range out {
			scores[p.ID] = RelevanceScore(p, q)
		}
		sort.SliceStable(out, func(i, j int) bool { return scores[out[i].ID] > scores[out[j].ID] })
	}
	return out
}

// sortByName orders products by name using Portuguese collation.
func sortByName(items []domain.Product) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(items[i].Name, items[j].Name) < 0
	})
}

// SearchUsecase holds one shopper's active query. Results are recomputed
// from the catalog on every call and never persisted.
type SearchUsecase struct {
	mu      sync.RWMutex
	query   string
	catalog ProductLister
	metrics *metrics.StoreMetrics
}

func NewSearchUsecase(catalog ProductLister, m *metrics.StoreMetrics) *SearchUsecase {
	return &SearchUsecase{
		catalog: catalog,
		metrics: m,
	}
}

// SetQuery replaces the active query.
func (u *SearchUsecase) SetQuery(q string) {
	u.mu.Lock()
	u.query = q
	u.mu.Unlock()
	u.metrics.IncAction(storeSearch, "SET_QUERY")
}

func (u *SearchUsecase) Query() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.query
}

// IsSearching reports whether the active query has any non-blank text.
func (u *SearchUsecase) IsSearching() bool {
	return normalizeQuery(u.Query()) != ""
}

func (u *SearchUsecase) ClearSearch() {
	u.mu.Lock()
	u.query = ""
	u.mu.Unlock()
	u.metrics.IncAction(storeSearch, "CLEAR_SEARCH")
}

// Results runs the active query against the catalog.
func (u *SearchUsecase) Results(ctx context.Context) ([]domain.Product, error) {
	return u.Search(ctx, u.Query(), domain.SearchOptions{})
}

// Search runs q against the catalog without touching the active query.
func (u *SearchUsecase) Search(ctx context.Context, q string, opts domain.SearchOptions) ([]domain.Product, error) {
	if normalizeQuery(q) == "" {
		u.metrics.ObserveSearchResults(0)
		return []domain.Product{}, nil
	}

	catalog, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	results := ApplySearchOptions(SearchProducts(catalog, q), q, opts)
	u.metrics.ObserveSearchResults(len(results))
	return results, nil
}
