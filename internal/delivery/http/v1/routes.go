package v1

import "net/http"

type Handlers struct {
	Catalog   *CatalogHandler
	Cart      *CartHandler
	Favorites *FavoritesHandler
	Search    *SearchHandler
	Auth      *AuthHandler
}

// RegisterRoutes mounts the storefront API on mux.
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	// Catalog
	mux.HandleFunc("GET /api/v1/products", h.Catalog.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", h.Catalog.GetProduct)
	mux.HandleFunc("GET /api/v1/products/{id}/reviews", h.Catalog.GetProductReviews)
	mux.HandleFunc("GET /api/v1/faq", h.Catalog.ListFAQ)
	mux.HandleFunc("GET /api/v1/faq/categories", h.Catalog.ListFAQCategories)
	mux.HandleFunc("GET /api/v1/orders", h.Catalog.ListOrders)
	mux.HandleFunc("GET /api/v1/orders/{id}", h.Catalog.GetOrder)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", h.Cart.GetCart)
	mux.HandleFunc("DELETE /api/v1/cart", h.Cart.ClearCart)
	mux.HandleFunc("POST /api/v1/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/v1/cart/items", h.Cart.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/cart/items/{productId}", h.Cart.RemoveItem)

	// Favorites
	mux.HandleFunc("GET /api/v1/favorites", h.Favorites.ListFavorites)
	mux.HandleFunc("DELETE /api/v1/favorites", h.Favorites.Clear)
	mux.HandleFunc("POST /api/v1/favorites/cart", h.Favorites.MoveAllToCart)
	mux.HandleFunc("GET /api/v1/favorites/{productId}", h.Favorites.IsFavorite)
	mux.HandleFunc("PUT /api/v1/favorites/{productId}", h.Favorites.Add)
	mux.HandleFunc("DELETE /api/v1/favorites/{productId}", h.Favorites.Remove)
	mux.HandleFunc("POST /api/v1/favorites/{productId}/toggle", h.Favorites.Toggle)

	// Search
	mux.HandleFunc("GET /api/v1/search", h.Search.Search)
	mux.HandleFunc("GET /api/v1/search/query", h.Search.GetQuery)
	mux.HandleFunc("PUT /api/v1/search/query", h.Search.SetQuery)
	mux.HandleFunc("DELETE /api/v1/search/query", h.Search.ClearQuery)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/v1/auth/me", h.Auth.Me)
	mux.HandleFunc("PATCH /api/v1/auth/profile", h.Auth.UpdateProfile)
}
