package v1

import (
	"net/http"
	"strings"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/internal/usecase"
	"dunkstore-backend/pkg/utils"
)

type SearchHandler struct {
	sessions *usecase.SessionUsecase
}

func NewSearchHandler(sessions *usecase.SessionUsecase) *SearchHandler {
	return &SearchHandler{sessions: sessions}
}

type setQueryReq struct {
	Query string `json:"query" validate:"max=200"`
}

// Search runs ?q= against the catalog without touching the session's query.
// Without q it falls back to the session's current query.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}

	query := r.URL.Query()
	q := query.Get("q")
	if !query.Has("q") {
		q = stores.Search.Query()
	}
	opts := domain.SearchOptions{
		Sort:   query.Get("sort"),
		Gender: query.Get("gender"),
	}
	if opts.Sort == "" {
		opts.Sort = domain.SortRelevance
	}

	products, err := stores.Search.Search(r.Context(), q, opts)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    products,
		Meta: map[string]any{
			"query": strings.TrimSpace(q),
			"total": len(products),
		},
	})
}

func (h *SearchHandler) GetQuery(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    queryState(stores.Search),
	})
}

func (h *SearchHandler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req setQueryReq
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	stores.Search.SetQuery(req.Query)
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    queryState(stores.Search),
	})
}

func (h *SearchHandler) ClearQuery(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	stores.Search.ClearSearch()
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    queryState(stores.Search),
	})
}

func queryState(s *usecase.SearchUsecase) map[string]any {
	return map[string]any{
		"query":       s.Query(),
		"isSearching": s.IsSearching(),
	}
}
