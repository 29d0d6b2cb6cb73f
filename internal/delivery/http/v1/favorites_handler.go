package v1

import (
	"net/http"
	"strconv"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/internal/usecase"
	"dunkstore-backend/pkg/utils"
)

type FavoritesHandler struct {
	sessions  *usecase.SessionUsecase
	catalogUC *usecase.CatalogUsecase
}

func NewFavoritesHandler(sessions *usecase.SessionUsecase, catalogUC *usecase.CatalogUsecase) *FavoritesHandler {
	return &FavoritesHandler{sessions: sessions, catalogUC: catalogUC}
}

// ListFavorites returns the favorites in the requested order (?sort=recent by default).
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	items := stores.Favorites.List(r.URL.Query().Get("sort"))
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    items,
		Meta:    map[string]int{"count": len(items)},
	})
}

func (h *FavoritesHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    map[string]bool{"isFavorite": stores.Favorites.IsFavorite(productID)},
	})
}

func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	product, err := h.catalogUC.GetProductByID(r.Context(), productID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, added, err := stores.Favorites.ToggleFavorite(r.Context(), *product)
	stateResponse(w, r, map[string]any{
		"favorites":  state,
		"isFavorite": added,
	}, err)
}

// Add marks the product as a favorite. Adding one already liked is a no-op.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	product, err := h.catalogUC.GetProductByID(r.Context(), productID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, err := stores.Favorites.AddFavorite(r.Context(), *product)
	stateResponse(w, r, state, err)
}

// Remove unlikes the product. Ids that are not favorites are ignored.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, err := stores.Favorites.RemoveFavorite(r.Context(), productID)
	stateResponse(w, r, state, err)
}

func (h *FavoritesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, err := stores.Favorites.ClearFavorites(r.Context())
	stateResponse(w, r, state, err)
}

// MoveAllToCart adds one unit of every favorite to the cart.
func (h *FavoritesHandler) MoveAllToCart(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, err := stores.AddAllFavoritesToCart(r.Context())
	stateResponse(w, r, state, err)
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil || id < 1 {
		utils.WriteError(w, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return id, true
}
