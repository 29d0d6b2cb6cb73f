package v1

import (
	"net/http"
	"strconv"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/internal/usecase"
	"dunkstore-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// ListProducts supports ?gender=, ?min_price= and ?max_price=.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ProductFilter{
		Gender:   query.Get("gender"),
		MinPrice: utils.ParseFloatPtr(query.Get("min_price")),
		MaxPrice: utils.ParseFloatPtr(query.Get("max_price")),
	}

	products, err := h.catalogUC.FilterProducts(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    products,
		Meta:    map[string]int{"total": len(products)},
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	details, err := h.catalogUC.GetProductDetails(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: details})
}

// GetProductReviews lists a product's reviews, optionally capped by ?limit=.
// Meta carries the full count and the average rating.
func (h *CatalogHandler) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	reviews, err := h.catalogUC.GetReviewsByProductID(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	avg, err := h.catalogUC.GetAverageRating(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	total := len(reviews)
	if limit := utils.ParseInt(r.URL.Query().Get("limit"), 0); limit > 0 && limit < total {
		reviews = reviews[:limit]
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    reviews,
		Meta: map[string]any{
			"count":         total,
			"averageRating": avg,
		},
	})
}

// ListFAQ filters by ?category= and, when present, searches by ?q=.
func (h *CatalogHandler) ListFAQ(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		items []domain.FAQItem
		err   error
	)
	if q := query.Get("q"); q != "" {
		items, err = h.catalogUC.SearchFAQ(r.Context(), q)
	} else {
		items, err = h.catalogUC.ListFAQ(r.Context(), query.Get("category"))
	}
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: items})
}

func (h *CatalogHandler) ListFAQCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalogUC.GetFAQCategories(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: cats})
}

func (h *CatalogHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.catalogUC.ListOrders(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: orders})
}

func (h *CatalogHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.catalogUC.GetOrderByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: order})
}
