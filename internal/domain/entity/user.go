// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity, representing a unique person signed up to the marketplace.
// It is owned by the auth subsystem and referenced, never mutated, by the shop and order flows.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email     string    // The account's login identifier and contact email.
	Name      string    // The display name.
	Phone     string    // Contact phone number, optional.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// Session is the authenticated caller of a request. A nil *Session means no session.
type Session struct {
	UserID uuid.UUID
}

// Actor is a session paired with the role resolved for it on this request.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
