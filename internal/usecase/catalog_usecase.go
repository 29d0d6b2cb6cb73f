package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"dunkstore-backend/config"
	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/cache"
	"dunkstore-backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// CatalogUsecase serves the read-only catalog collaborators: products,
// reviews, FAQ and mock orders.
type CatalogUsecase struct {
	repo  domain.CatalogRepository
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.CatalogRepository, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return u.repo.ListProducts(ctx)
}

// FilterProducts narrows the catalog by gender and an inclusive price range.
func (u *CatalogUsecase) FilterProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := u.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Gender != "" && !strings.EqualFold(filter.Gender, domain.GenderAll) && !strings.EqualFold(filter.Gender, string(p.Gender)) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *CatalogUsecase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	return u.repo.GetProductByID(ctx, id)
}

// GetProductDetails bundles a product with its reviews and discount.
func (u *CatalogUsecase) GetProductDetails(ctx context.Context, id int) (*domain.ProductDetails, error) {
	product, err := u.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := u.GetReviewsByProductID(ctx, id)
	if err != nil {
		return nil, err
	}
	avg, err := u.GetAverageRating(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.ProductDetails{
		Product:       *product,
		Discount:      product.Discount(),
		AverageRating: avg,
		ReviewCount:   len(reviews),
		ReviewList:    reviews,
	}, nil
}

func (u *CatalogUsecase) GetReviewsByProductID(ctx context.Context, productID int) ([]domain.Review, error) {
	all, err := u.repo.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Review{}
	for _, r := range all {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetAverageRating returns the mean review rating rounded to one decimal,
// or 0 when the product has no reviews.
func (u *CatalogUsecase) GetAverageRating(ctx context.Context, productID int) (float64, error) {
	key := fmt.Sprintf("reviews:avg:%d", productID)
	if val, found := u.cache.Get(key); found {
		return val.(float64), nil
	}

	reviews, err := u.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return 0, err
	}

	avg := 0.0
	if len(reviews) > 0 {
		sum := decimal.Zero
		for _, r := range reviews {
			sum = sum.Add(decimal.NewFromFloat(r.Rating))
		}
		avg = sum.Div(decimal.NewFromInt(int64(len(reviews)))).Round(1).InexactFloat64()
	}

	u.cache.Set(key, avg, u.cfg.CacheCatalogTTL)
	return avg, nil
}

func (u *CatalogUsecase) GetReviewsCount(ctx context.Context, productID int) (int, error) {
	reviews, err := u.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return 0, err
	}
	return len(reviews), nil
}

// ListFAQ returns the FAQ entries of category, or all entries when category
// is empty or "all".
func (u *CatalogUsecase) ListFAQ(ctx context.Context, category string) ([]domain.FAQItem, error) {
	items, err := u.repo.ListFAQ(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return items, nil
	}
	return slices.DeleteFunc(items, func(f domain.FAQItem) bool {
		return f.Category != category
	}), nil
}

// GetFAQCategories lists categories in first-seen order.
func (u *CatalogUsecase) GetFAQCategories(ctx context.Context) ([]string, error) {
	key := "faq:categories"
	if val, found := u.cache.Get(key); found {
		return slices.Clone(val.([]string)), nil
	}

	items, err := u.repo.ListFAQ(ctx)
	if err != nil {
		return nil, err
	}

	cats := []string{}
	for _, f := range items {
		if !slices.Contains(cats, f.Category) {
			cats = append(cats, f.Category)
		}
	}

	u.cache.Set(key, cats, u.cfg.CacheCatalogTTL)
	return slices.Clone(cats), nil
}

// SearchFAQ matches q against questions and answers, ignoring case.
func (u *CatalogUsecase) SearchFAQ(ctx context.Context, q string) ([]domain.FAQItem, error) {
	items, err := u.repo.ListFAQ(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(items, func(f domain.FAQItem) bool {
		return !utils.ContainsFold(f.Question, q) && !utils.ContainsFold(f.Answer, q)
	}), nil
}

func (u *CatalogUsecase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return u.repo.ListOrders(ctx)
}

func (u *CatalogUsecase) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := u.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}
