package customer

import (
	"regexp"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// Membership represents the customer's loyalty tier
type Membership string

const (
	MembershipBronze Membership = "bronze"
	MembershipSilver Membership = "silver"
	MembershipGold   Membership = "gold"
)

// Customer represents a storefront customer
// It is the aggregate root for customer-related operations
type Customer struct {
	shared.BaseAggregateRoot
	FirstName  string     `gorm:"type:varchar(255);not null"`
	LastName   string     `gorm:"type:varchar(255);not null"`
	Email      string     `gorm:"type:varchar(254);not null;uniqueIndex"`
	Phone      string     `gorm:"type:varchar(50)"`
	BirthDate  *time.Time `gorm:"type:date"`
	Membership Membership `gorm:"type:varchar(20);not null;default:'bronze'"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with the default bronze membership
func NewCustomer(firstName, lastName, email, phone string) (*Customer, error) {
	if err := validateName(firstName, "First name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "Last name"); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		Phone:             phone,
		Membership:        MembershipBronze,
	}, nil
}

// Update updates the customer's basic information
func (c *Customer) Update(firstName, lastName, email, phone string) error {
	if err := validateName(firstName, "First name"); err != nil {
		return err
	}
	if err := validateName(lastName, "Last name"); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.Email = email
	c.Phone = phone
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetBirthDate sets the customer's birth date (nil clears it)
func (c *Customer) SetBirthDate(birthDate *time.Time) error {
	if birthDate != nil && birthDate.After(time.Now()) {
		return shared.NewDomainError("INVALID_BIRTH_DATE", "Birth date cannot be in the future")
	}

	c.BirthDate = birthDate
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetMembership changes the customer's loyalty tier
func (c *Customer) SetMembership(membership Membership) error {
	switch membership {
	case MembershipBronze, MembershipSilver, MembershipGold:
	default:
		return shared.NewDomainError("INVALID_MEMBERSHIP", "Membership must be bronze, silver, or gold")
	}

	c.Membership = membership
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

func validateName(name, label string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", label+" cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", label+" cannot exceed 255 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 254 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 254 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}
