package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/customer"
)

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	FirstName string     `json:"first_name" binding:"required,min=1,max=255"`
	LastName  string     `json:"last_name" binding:"required,min=1,max=255"`
	Email     string     `json:"email" binding:"required,email"`
	Phone     string     `json:"phone" binding:"omitempty,max=50"`
	BirthDate *time.Time `json:"birth_date"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	FirstName  string               `json:"first_name" binding:"required,min=1,max=255"`
	LastName   string               `json:"last_name" binding:"required,min=1,max=255"`
	Email      string               `json:"email" binding:"required,email"`
	Phone      string               `json:"phone" binding:"omitempty,max=50"`
	BirthDate  *time.Time           `json:"birth_date"`
	Membership *customer.Membership `json:"membership" binding:"omitempty,oneof=bronze silver gold"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Search     string `form:"search"`
	Membership string `form:"membership" binding:"omitempty,oneof=bronze silver gold"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID           `json:"id"`
	FirstName  string              `json:"first_name"`
	LastName   string              `json:"last_name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone,omitempty"`
	BirthDate  *time.Time          `json:"birth_date,omitempty"`
	Membership customer.Membership `json:"membership"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ToCustomerResponse converts a customer to its response shape
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		BirthDate:  c.BirthDate,
		Membership: c.Membership,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
