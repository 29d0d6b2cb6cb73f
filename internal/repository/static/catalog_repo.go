// Package staticrepo serves the fixed storefront catalog from memory.
package staticrepo

import (
	"context"
	"slices"

	"dunkstore-backend/internal/domain"
)

type catalogRepository struct {
	products []domain.Product
	faq      []domain.FAQItem
	reviews  []domain.Review
	orders   []domain.Order
}

// NewCatalogRepository returns the built-in sneaker catalog.
func NewCatalogRepository() domain.CatalogRepository {
	return NewCatalogRepositoryFrom(sampleProducts(), sampleFAQ(), sampleReviews(), sampleOrders())
}

// NewCatalogRepositoryFrom serves the given records. Used by tests.
func NewCatalogRepositoryFrom(products []domain.Product, faq []domain.FAQItem, reviews []domain.Review, orders []domain.Order) domain.CatalogRepository {
	for i := range orders {
		orders[i].StatusText = orders[i].Status.Text()
	}
	return &catalogRepository{
		products: products,
		faq:      faq,
		reviews:  reviews,
		orders:   orders,
	}
}

func (r *catalogRepository) ListProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

func (r *catalogRepository) GetProductByID(_ context.Context, id int) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			c := cloneProduct(p)
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *catalogRepository) ListFAQ(_ context.Context) ([]domain.FAQItem, error) {
	return slices.Clone(r.faq), nil
}

func (r *catalogRepository) ListReviews(_ context.Context) ([]domain.Review, error) {
	return slices.Clone(r.reviews), nil
}

func (r *catalogRepository) ListOrders(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(r.orders))
	for i, o := range r.orders {
		o.Items = slices.Clone(o.Items)
		out[i] = o
	}
	return out, nil
}

func cloneProduct(p domain.Product) domain.Product {
	p.Sizes = slices.Clone(p.Sizes)
	p.Colors = slices.Clone(p.Colors)
	p.Features = slices.Clone(p.Features)
	return p
}
