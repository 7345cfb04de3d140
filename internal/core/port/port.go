package port

import (
	"context"

	"github.com/kanoha/storefront/internal/core/domain"
)

// Inbound ports.

type CartManager interface {
	Cart(ctx context.Context, visitorID string) (domain.Cart, error)
	AddToCart(ctx context.Context, visitorID, productID string) (domain.Cart, string, error)
	RemoveFromCart(ctx context.Context, visitorID, productID string) (domain.Cart, string, error)
	UpdateQuantity(ctx context.Context, visitorID, productID string, quantity int) (domain.Cart, error)
	ClearCart(ctx context.Context, visitorID string) error
}

type ProductBrowser interface {
	ListProducts(context.Context, domain.ProductQuery) (domain.ProductPage, error)
	Product(ctx context.Context, id string) (domain.Product, error)
	Categories(context.Context) []string
}

type SubmissionSender interface {
	SubmitInquiry(ctx context.Context, visitorID string, s domain.Submission) (domain.Submission, error)
	SendContactMessage(ctx context.Context, visitorID string, s domain.Submission) (domain.Submission, error)
	ApplyMembership(ctx context.Context, visitorID string, s domain.Submission) (domain.Submission, error)
}

type PageProvider interface {
	Page(slug string) (domain.Page, bool)
	Navigation() []domain.NavItem
	FeaturedCategories() []domain.FeaturedCategory
	CategoryTags() []string
}

// Outbound ports.

// CartStorage keeps the serialized cart of each visitor under a single key.
//
// Load returns (nil, nil) when nothing is stored.
type CartStorage interface {
	LoadCart(ctx context.Context, visitorID string) ([]byte, error)
	SaveCart(ctx context.Context, visitorID string, data []byte) error
	DeleteCart(ctx context.Context, visitorID string) error
}

type ProductCatalog interface {
	Products() []domain.Product
}

type SubmissionsStorage interface {
	StoreSubmission(context.Context, domain.Submission) error
}

type SubmissionsProducer interface {
	ProduceSubmission(context.Context, domain.Submission) error
}

// CartObserver receives cart and submission events, e.g. for metrics.
type CartObserver interface {
	CartChanged(op string)
	CartLoadFailed()
	Submitted(kind domain.SubmissionKind)
}
