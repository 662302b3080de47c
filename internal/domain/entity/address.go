// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address in a customer's address book.
type Address struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID       uuid.UUID // The account that owns this address.
	FullName     string    // Recipient name.
	Phone        string    // Recipient phone.
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	Latitude     *float64  // Optional geographic latitude.
	Longitude    *float64  // Optional geographic longitude.
	IsDefault    bool      // At most one address per account is the default.
	CreatedAt    time.Time // Timestamp of when this address was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Formatted renders the postal fields as a single line, skipping empty parts.
func (a *Address) Formatted() string {
	parts := make([]string, 0, 6)
	for _, part := range []string{a.AddressLine1, a.AddressLine2, a.City, a.State, a.PostalCode, a.Country} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}
