// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"employeesys/internal/domain/entity"
	domainerrors "employeesys/internal/domain/errors"
	"employeesys/internal/domain/repository"
	"employeesys/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the repository.EmployeeRepository interface using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
// It returns the repository as a repository.EmployeeRepository interface, adhering to dependency inversion.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

// FindByID retrieves a single employee by their unique ID.
func (repo *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employeeM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toEmployeeDomain(&employeeM), nil
}

// FindByEmail retrieves a single employee by their registration e-mail.
func (repo *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	return toEmployeeDomain(&employeeM), nil
}

// ListSummaries retrieves the public summary of every employee, ordered by
// creation time so the directory listing is stable.
func (repo *employeeRepository) ListSummaries(ctx context.Context) ([]*entity.EmployeeSummary, error) {
	var models []model.EmployeeModel
	if err := repo.db.WithContext(ctx).
		Select("id", "first_name", "last_name", "email").
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	summaries := make([]*entity.EmployeeSummary, 0, len(models))
	for i := range models {
		summaries = append(summaries, &entity.EmployeeSummary{
			ID:        models[i].ID,
			FirstName: models[i].FirstName,
			LastName:  models[i].LastName,
			Email:     models[i].Email,
		})
	}

	return summaries, nil
}

// Create persists a new employee entity to the database.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	// Map the pure domain entity to a GORM persistence model.
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidation.WithDetails("Email already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WithDetails("Missing required employee information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	// Update the employee entity with the generated ID and timestamps
	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// Update modifies an existing employee entity in the database.
func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Save(employeeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidation.WithDetails("Email already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WithDetails("Missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update employee")
	}

	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// Delete permanently removes an employee record. Deleting an id that does not
// exist reports ErrEmployeeNotFound rather than silently succeeding.
func (repo *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmployeeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete employee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		EmailVerified:    data.EmailVerified,
		VerificationCode: data.VerificationCode,
		Admin:            data.Admin,
		SocialProvider:   entity.SocialProvider(data.SocialProvider),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel for persistence.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:               data.ID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		EmailVerified:    data.EmailVerified,
		VerificationCode: data.VerificationCode,
		Admin:            data.Admin,
		SocialProvider:   data.SocialProvider.String(),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
