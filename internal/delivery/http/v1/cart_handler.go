package v1

import (
	"net/http"

	"dunkstore-backend/internal/usecase"
)

type CartHandler struct {
	sessions  *usecase.SessionUsecase
	catalogUC *usecase.CatalogUsecase
}

func NewCartHandler(sessions *usecase.SessionUsecase, catalogUC *usecase.CatalogUsecase) *CartHandler {
	return &CartHandler{sessions: sessions, catalogUC: catalogUC}
}

type addCartItemReq struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
}

type updateCartItemReq struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"max=99"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	stateResponse(w, r, stores.Cart.State(), nil)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemReq
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	product, err := h.catalogUC.GetProductByID(r.Context(), req.ProductID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, err := stores.Cart.AddToCart(r.Context(), *product, req.Size, req.Color, req.Quantity)
	stateResponse(w, r, state, err)
}

// UpdateItem sets a line's quantity. Zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemReq
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, err := stores.Cart.UpdateQuantity(r.Context(), req.ProductID, req.Size, req.Color, req.Quantity)
	stateResponse(w, r, state, err)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()

	stores, found := sessionStores(w, r, h.sessions)
	if !found {
		return
	}
	state, err := stores.Cart.RemoveFromCart(r.Context(), productID, query.Get("size"), query.Get("color"))
	stateResponse(w, r, state, err)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	state, err := stores.Cart.ClearCart(r.Context())
	stateResponse(w, r, state, err)
}
