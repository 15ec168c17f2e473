package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Username, Email and WalletAddress are stored lower-cased
// and are each unique across all users.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	PasswordHash   string
	WalletAddress  string
	Role           Role
	Profile        Profile
	CompanyProfile *CompanyProfile
	Preferences    Preferences
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PostalAddress is a delivery or business address.
type PostalAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
}

// String joins the non-empty address parts with commas.
func (a PostalAddress) String() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// MissingDeliveryFields names the blank parts a shipment cannot go without.
func (a PostalAddress) MissingDeliveryFields() []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"street", a.Street}, {"city", a.City}, {"country", a.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

// Profile holds display data shown to trading partners.
type Profile struct {
	DisplayName string        `json:"displayName"`
	Address     PostalAddress `json:"address"`
	Company     string        `json:"company,omitempty"`
	Phone       string        `json:"phone,omitempty"`
	Bio         string        `json:"bio,omitempty"`
}

// CompanyProfile describes the business behind an account. It only feeds recommendations.
type CompanyProfile struct {
	Industry     string `json:"industry,omitempty"`
	Size         string `json:"size,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
}

// PriceRange is an inclusive price window. A zero Max means unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}

	return r.Max <= 0 || price <= r.Max
}

// IsZero reports whether no range was set.
func (r PriceRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Preferences are client-persisted shopping hints. They are never trusted for pricing.
type Preferences struct {
	FavoriteCategories []string   `json:"favoriteCategories,omitempty"`
	PriceRange         PriceRange `json:"priceRange"`
	Wishlist           []string   `json:"wishlist,omitempty"`
	Cart               []CartItem `json:"cart,omitempty"`
}

// CartItem is one line of a client-side cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// DisplayName returns the profile name, falling back to the username.
func (u *User) DisplayName() string {
	if u.Profile.DisplayName != "" {
		return u.Profile.DisplayName
	}

	return u.Username
}

// Session converts the user into the identity carried by an authenticated request.
func (u *User) Session() Session {
	return Session{
		UserID:        u.ID,
		WalletAddress: u.WalletAddress,
		Role:          u.Role,
	}
}
