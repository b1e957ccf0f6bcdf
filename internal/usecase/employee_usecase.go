// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"employeesys/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new employee.
// SocialSymbol carries the single-letter provider tag ("g"/"f"/"a"); it is
// only honored when Password is the social marker literal.
type RegisterInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	SocialSymbol string
}

// LoginInput defines the data required for an employee to log in.
type LoginInput struct {
	Email        string
	Password     string
	SocialSymbol string
}

// UpdateInput defines the data for a partial profile update. Empty string
// fields keep their prior values. Admin carries the raw "0"/"1" wire value;
// CallerIsAdmin reflects the live admin flag of the authenticated caller and
// gates whether Admin is applied at all.
type UpdateInput struct {
	TargetID      string
	FirstName     string
	LastName      string
	Password      string
	Admin         string
	CallerIsAdmin bool
}

// --- Output DTOs ---

// LoginOutput returns the issued token alongside a minimal profile.
type LoginOutput struct {
	Token    string
	Employee *entity.Employee
}

// EmployeeUsecase defines the interface for employee-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type EmployeeUsecase interface {
	// Register creates a new account. For non-social registrations the
	// confirmation e-mail must be deliverable or no account is created.
	Register(ctx context.Context, input *RegisterInput) (*entity.Employee, error)

	// Login checks credentials and issues a bearer token. It deliberately
	// does not require a verified e-mail: unverified accounts need a token
	// to call Verify and ResendCode.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Verify confirms the caller's e-mail with the 4-digit code.
	Verify(ctx context.Context, callerID uuid.UUID, code string) (*entity.Employee, error)

	// ResendCode re-sends the stored confirmation code to the caller's
	// registered address. It returns that address.
	ResendCode(ctx context.Context, callerID uuid.UUID) (string, error)

	// Update applies a partial profile update to the target account.
	Update(ctx context.Context, input *UpdateInput) (*entity.Employee, error)

	// Delete permanently removes the target account.
	Delete(ctx context.Context, targetID string) error

	// List returns every employee's public summary.
	List(ctx context.Context) ([]*entity.EmployeeSummary, error)

	// Detail returns the extended profile for one employee id.
	Detail(ctx context.Context, targetID string) (*entity.Employee, error)
}
