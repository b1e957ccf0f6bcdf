// Package entity contains the core domain entities.
// These structs are pure representations of the business objects and are
// independent of any persistence or delivery concerns.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a member of the company directory. It is the aggregate
// root for the account lifecycle: registration, e-mail verification, profile
// updates and deletion all operate on this entity.
type Employee struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string

	// PasswordHash is the bcrypt hash of the credential. For social accounts
	// it hashes the fixed social marker rather than a user-chosen password.
	PasswordHash string

	// EmailVerified gates the operations that require a confirmed mailbox.
	// Social accounts are created with this already set.
	EmailVerified bool

	// VerificationCode is the pending numeric confirmation code. Empty once
	// the e-mail is verified or for social accounts that never need one.
	VerificationCode string

	// Admin grants directory-wide update and delete rights.
	Admin bool

	// SocialProvider records which identity provider created the account,
	// or SocialNone for password registrations.
	SocialProvider SocialProvider

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeSummary is the public projection of an employee used by the
// directory listing. It deliberately omits credentials and flags.
type EmployeeSummary struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
}

// Summary returns the public projection of the employee.
func (e *Employee) Summary() *EmployeeSummary {
	return &EmployeeSummary{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}
