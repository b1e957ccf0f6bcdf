// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"employeesys/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound is a domain-specific error returned when an employee record is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the standard operations for employee persistence.
// The application layer depends on this interface, not the concrete implementation.
type EmployeeRepository interface {
	// FindByID retrieves a single employee by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindByEmail retrieves a single employee by their registration email.
	// The lookup is an exact match, consistent with the uniqueness check at registration.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// ListSummaries retrieves the public summary of every employee.
	ListSummaries(ctx context.Context) ([]*entity.EmployeeSummary, error)

	// Create persists a new employee entity to the storage.
	Create(ctx context.Context, employee *entity.Employee) error

	// Update modifies an existing employee entity in the storage.
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete permanently removes an employee record. There is no soft delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
