package httphandler

import (
	"time"

	"github.com/kanoha/storefront/internal/core/domain"
)

type (
	ErrorResponse struct {
		Error  string       `json:"error"`
		Fields []FieldError `json:"fields,omitempty"`
	}

	FieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
)

type (
	CartItem struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Img      string `json:"img"`
		Quantity int    `json:"quantity"`
	}

	CartResponse struct {
		Items     []CartItem `json:"items"`
		ItemCount int        `json:"item_count"`
		Notice    string     `json:"notice,omitempty"`
	}

	AddItemRequest struct {
		ProductID string `json:"product_id" validate:"required"`
	}

	UpdateItemRequest struct {
		Quantity *int `json:"quantity" validate:"required"`
	}
)

type (
	ProductsResponse struct {
		Items      []domain.Product `json:"items"`
		Page       int              `json:"page"`
		PageSize   int              `json:"page_size"`
		TotalItems int              `json:"total_items"`
		TotalPages int              `json:"total_pages"`
	}

	CategoriesResponse struct {
		Categories []string `json:"categories"`
	}
)

type (
	InquiryRequest struct {
		FirstName string `json:"first_name" validate:"required,max=100"`
		LastName  string `json:"last_name" validate:"max=100"`
		Email     string `json:"email" validate:"required,email"`
		Company   string `json:"company" validate:"max=200"`
		Phone     string `json:"phone" validate:"max=50"`
		Message   string `json:"message" validate:"max=5000"`
	}

	ContactRequest struct {
		FirstName string `json:"first_name" validate:"required,max=100"`
		LastName  string `json:"last_name" validate:"max=100"`
		Email     string `json:"email" validate:"required,email"`
		Subject   string `json:"subject" validate:"required,max=200"`
		Message   string `json:"message" validate:"required,max=5000"`
	}

	MembershipRequest struct {
		FirstName    string `json:"first_name" validate:"required,max=100"`
		LastName     string `json:"last_name" validate:"max=100"`
		Company      string `json:"company" validate:"required,max=200"`
		Email        string `json:"email" validate:"required,email"`
		Phone        string `json:"phone" validate:"max=50"`
		BusinessType string `json:"business_type" validate:"required,oneof=Retailer Wholesaler Distributor Other"`
	}

	SubmissionResponse struct {
		ID        string     `json:"id"`
		Kind      string     `json:"kind"`
		CreatedAt time.Time  `json:"created_at"`
		Items     []CartItem `json:"items,omitempty"`
		Message   string     `json:"message"`
	}
)

type (
	ThemeRequest struct {
		Theme string `json:"theme" validate:"required"`
	}

	ThemeResponse struct {
		Theme      string `json:"theme"`
		Switchable bool   `json:"switchable"`
	}
)

func toCartResponse(c domain.Cart, notice string) CartResponse {
	return CartResponse{
		Items:     toCartItems(c.Items),
		ItemCount: c.ItemCount(),
		Notice:    notice,
	}
}

func toCartItems(items []domain.CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, item := range items {
		out[i] = CartItem(item)
	}
	return out
}

func toProductsResponse(p domain.ProductPage) ProductsResponse {
	items := p.Items
	if items == nil {
		items = []domain.Product{}
	}
	return ProductsResponse{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

func (r InquiryRequest) toDomain() domain.Submission {
	return domain.Submission{
		Contact: domain.Contact{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Company:   r.Company,
			Phone:     r.Phone,
		},
		Message: r.Message,
	}
}

func (r ContactRequest) toDomain() domain.Submission {
	return domain.Submission{
		Contact: domain.Contact{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
		},
		Subject: r.Subject,
		Message: r.Message,
	}
}

func (r MembershipRequest) toDomain() domain.Submission {
	return domain.Submission{
		Contact: domain.Contact{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Company:   r.Company,
			Phone:     r.Phone,
		},
		BusinessType: r.BusinessType,
	}
}
