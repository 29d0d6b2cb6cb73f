package domain

import "context"

type Gender string

const (
	GenderMale   Gender = "Masculino"
	GenderFemale Gender = "Feminino"
	GenderUnisex Gender = "Unissex"
)

// Product is an immutable catalog entry.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Badge         *string  `json:"badge,omitempty"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Gender        Gender   `json:"gender"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	StockCount    *int     `json:"stockCount,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// Discount returns the percentage off the original price, rounded down.
func (p Product) Discount() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price || *p.OriginalPrice == 0 {
		return 0
	}
	return int((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100)
}

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	Gender   string
	MinPrice *float64
	MaxPrice *float64
}

// --- Catalog Interfaces ---

type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	ListFAQ(ctx context.Context) ([]FAQItem, error)
	ListReviews(ctx context.Context) ([]Review, error)
	ListOrders(ctx context.Context) ([]Order, error)
}

// ProductDetails is a product together with its review summary.
type ProductDetails struct {
	Product
	Discount      int      `json:"discount"`
	AverageRating float64  `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
	ReviewList    []Review `json:"reviewList"`
}
