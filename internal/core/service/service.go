package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

var (
	_ port.CartManager      = (*Service)(nil)
	_ port.ProductBrowser   = (*Service)(nil)
	_ port.SubmissionSender = (*Service)(nil)
)

const defaultAckDelay = time.Second

type Options struct {
	PageSize int
	// AckDelay is how long a submission takes to be acknowledged.
	AckDelay time.Duration
	Now      func() time.Time
	NewID    func() string
}

func (o *Options) normalize() {
	if o.PageSize < 1 {
		o.PageSize = domain.DefaultPageSize
	}
	if o.AckDelay < 0 {
		o.AckDelay = defaultAckDelay
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
}

type Service struct {
	opts Options

	products   []domain.Product
	byID       map[string]domain.Product
	categories []string

	carts       port.CartStorage
	submissions port.SubmissionsStorage
	producer    port.SubmissionsProducer
	observer    port.CartObserver

	locks *keyedMutex
}

// New indexes the catalog and returns a ready Service.
//
// submissions, producer and observer are optional.
func New(
	catalog port.ProductCatalog,
	carts port.CartStorage,
	submissions port.SubmissionsStorage,
	producer port.SubmissionsProducer,
	observer port.CartObserver,
	opts Options,
) *Service {
	opts.normalize()
	if observer == nil {
		observer = nopObserver{}
	}

	s := &Service{
		opts:        opts,
		carts:       carts,
		submissions: submissions,
		producer:    producer,
		observer:    observer,
		locks:       newKeyedMutex(),
	}
	s.indexCatalog(catalog.Products())
	return s
}

func (s *Service) indexCatalog(ps []domain.Product) {
	s.products = make([]domain.Product, 0, len(ps))
	s.byID = make(map[string]domain.Product, len(ps))
	categorySet := make(map[string]struct{})

	for _, p := range ps {
		if _, dup := s.byID[p.ID]; dup || p.ID == "" {
			continue
		}
		if p.Img == "" {
			p.Img = domain.PlaceholderImage
		}
		s.products = append(s.products, p)
		s.byID[p.ID] = p
		if p.Category != "" {
			categorySet[p.Category] = struct{}{}
		}
	}

	s.categories = make([]string, 0, len(categorySet))
	for c := range categorySet {
		s.categories = append(s.categories, c)
	}
	sort.Strings(s.categories)
}

type nopObserver struct{}

func (nopObserver) CartChanged(string)              {}
func (nopObserver) CartLoadFailed()                 {}
func (nopObserver) Submitted(domain.SubmissionKind) {}
