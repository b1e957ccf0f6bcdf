// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	"employeesys/config"
	deliverycontext "employeesys/internal/delivery/context"
	"employeesys/internal/domain/entity"
	domainerrors "employeesys/internal/domain/errors"
	"employeesys/internal/domain/repository"
	"employeesys/internal/domain/service"
	"employeesys/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// socialPasswordMarker is the password literal that activates the social
	// registration/login path. The account still stores a hash of it, but the
	// hash is never what authenticates a social account.
	socialPasswordMarker = "social"

	verificationCodeLength = 4
	minPasswordLength      = 6

	confirmMailSubject  = "Confirm E-Mail on EmployeeSys"
	reminderMailSubject = "Reminder: Confirm E-Mail on EmployeeSys"
)

// namePattern is the letters-and-spaces rule shared by first and last names.
var namePattern = regexp.MustCompile(`^[a-zA-Z ]+$`)

func confirmMailBody(code string) string {
	return "<p>Please confirm your e-mail on EmployeeSys.</p><p>Confirmation code: " + code + "</p>"
}

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	txManager    repository.TransactionManager
	employeeRepo repository.EmployeeRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailSender   service.MailSender
	codeGen      service.CodeGenerator
	mailFrom     string
	logger       *slog.Logger
}

// EmployeeServiceParams holds dependencies for employeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EmployeeRepo repository.EmployeeRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	CodeGen      service.CodeGenerator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService. It receives all dependencies as interfaces.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	mailFrom := ""
	if params.Config != nil && params.Config.Mail != nil {
		mailFrom = params.Config.Mail.From
	}

	return &employeeService{
		txManager:    params.TxManager,
		employeeRepo: params.EmployeeRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		codeGen:      params.CodeGen,
		mailFrom:     mailFrom,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. For non-social
// registrations the confirmation e-mail is sent before the account is
// persisted, so a failed send leaves no record behind.
func (srv *employeeService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Employee, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// The social symbol only counts when the password is the social marker.
	socialProvider := entity.SocialNone
	if provider, ok := entity.SocialProviderFromSymbol(input.SocialSymbol); ok && input.Password == socialPasswordMarker {
		socialProvider = provider
	}

	// A hash is always produced, even on the social path where it never
	// authenticates anything.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registered *entity.Employee
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()

		if _, err := employeeRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrValidation.WithDetails("E-mail already in use")
		} else if !errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		newEmployee := &entity.Employee{
			FirstName:      input.FirstName,
			LastName:       input.LastName,
			Email:          input.Email,
			PasswordHash:   passwordHash,
			EmailVerified:  socialProvider.IsSocial(),
			SocialProvider: socialProvider,
		}

		if !socialProvider.IsSocial() {
			code, err := srv.codeGen.NumericCode(verificationCodeLength)
			if err != nil {
				return errors.Wrap(err, "failed to generate verification code")
			}
			newEmployee.VerificationCode = code

			// Send before persisting: if the confirmation mail cannot be
			// delivered, the pending account must not exist.
			if err := srv.mailSender.Send(ctx, srv.mailFrom, input.Email, confirmMailSubject, confirmMailBody(code)); err != nil {
				srv.log(ctx).Error("Failed to send confirmation mail during registration", slog.String("email", input.Email), slog.Any("error", err))

				return domainerrors.ErrMailSendFailed
			}
		}

		if err := employeeRepo.Create(ctx, newEmployee); err != nil {
			return errors.Wrap(err, "failed to create employee during registration")
		}

		registered = newEmployee

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("employeeID", registered.ID), slog.Bool("social", registered.SocialProvider.IsSocial()))

	return registered, nil
}

// Login checks credentials and issues a bearer token. A verified e-mail is
// not required: unverified accounts need a token to call Verify and ResendCode.
func (srv *employeeService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	employee, err := srv.employeeRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailNotExists
		}

		return nil, errors.Wrap(err, "failed to find employee for login")
	}

	if !srv.credentialsMatch(input, employee) {
		srv.log(ctx).Warn("Login credential mismatch", slog.Any("employeeID", employee.ID))

		return nil, domainerrors.ErrPasswordIncorrect
	}

	token, err := srv.tokenService.IssueToken(employee.ID, employee.FirstName, employee.LastName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("employeeID", employee.ID))

	return &usecase.LoginOutput{Token: token, Employee: employee}, nil
}

// credentialsMatch applies the password check plus the social-tag rule: when
// a provider tag is supplied, the password must be the social marker and the
// tag must equal the stored provider's symbol.
func (srv *employeeService) credentialsMatch(input *usecase.LoginInput, employee *entity.Employee) bool {
	if !srv.hasher.Check(input.Password, employee.PasswordHash) {
		return false
	}

	if input.SocialSymbol == "" {
		return true
	}

	return input.Password == socialPasswordMarker && input.SocialSymbol == employee.SocialProvider.Symbol()
}

// Verify confirms the caller's e-mail address with the 4-digit code.
func (srv *employeeService) Verify(ctx context.Context, callerID uuid.UUID, code string) (*entity.Employee, error) {
	// Format gates run before any store read.
	if code == "" {
		return nil, domainerrors.ErrValidation.WithDetails("Verification code is required")
	}
	if len(code) != verificationCodeLength {
		return nil, domainerrors.ErrValidation.WithDetails("Invalid verification code")
	}

	var verified *entity.Employee
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()

		employee, err := employeeRepo.FindByID(ctx, callerID)
		if err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return domainerrors.ErrValidation.WithDetails("Employee does not exist")
			}

			return errors.Wrap(err, "failed to load employee for verification")
		}

		if employee.EmailVerified {
			return domainerrors.ErrValidation.WithDetails("Employee is already verified")
		}
		if employee.VerificationCode != code {
			return domainerrors.ErrValidation.WithDetails("Invalid verification code")
		}

		employee.EmailVerified = true
		employee.VerificationCode = ""

		if err := employeeRepo.Update(ctx, employee); err != nil {
			return errors.Wrap(err, "failed to mark employee verified")
		}

		verified = employee

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Employee e-mail verified", slog.Any("employeeID", callerID))

	return verified, nil
}

// ResendCode re-sends the stored confirmation code to the caller's registered
// address. The code is never regenerated here.
func (srv *employeeService) ResendCode(ctx context.Context, callerID uuid.UUID) (string, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return "", domainerrors.ErrValidation.WithDetails("Employee does not exist")
		}

		return "", errors.Wrap(err, "failed to load employee for code resend")
	}

	if employee.EmailVerified {
		return "", domainerrors.ErrValidation.WithDetails("Employee is already verified")
	}

	if err := srv.mailSender.Send(ctx, srv.mailFrom, employee.Email, reminderMailSubject, confirmMailBody(employee.VerificationCode)); err != nil {
		srv.log(ctx).Error("Failed to resend confirmation mail", slog.Any("employeeID", callerID), slog.Any("error", err))

		return "", domainerrors.ErrMailSendFailed
	}

	srv.log(ctx).Debug("Confirmation code resent", slog.Any("employeeID", callerID))

	return employee.Email, nil
}

// Update applies a partial profile update: empty input fields keep their
// prior values. The admin flag is only honored for admin callers; the guard
// layer additionally strips it before the input ever reaches here.
func (srv *employeeService) Update(ctx context.Context, input *usecase.UpdateInput) (*entity.Employee, error) {
	targetID, err := uuid.Parse(input.TargetID)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithDetails("Invalid Employee ID")
	}

	if input.FirstName != "" && !namePattern.MatchString(input.FirstName) {
		return nil, domainerrors.ErrValidation.WithDetails("First name should contain english letters and spaces only")
	}
	if input.LastName != "" && !namePattern.MatchString(input.LastName) {
		return nil, domainerrors.ErrValidation.WithDetails("Last name should contain english letters and spaces only")
	}

	newPasswordHash := ""
	if input.Password != "" {
		if len(input.Password) < minPasswordLength {
			return nil, domainerrors.ErrValidation.WithDetails("Password must be 6 characters or more")
		}

		newPasswordHash, err = srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during update")
		}
	}

	var updated *entity.Employee
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()

		employee, err := employeeRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return domainerrors.ErrValidation.WithDetails("Employee does not exist")
			}

			return errors.Wrap(err, "failed to load employee for update")
		}

		if input.FirstName != "" {
			employee.FirstName = input.FirstName
		}
		if input.LastName != "" {
			employee.LastName = input.LastName
		}
		if newPasswordHash != "" {
			employee.PasswordHash = newPasswordHash
		}
		if input.CallerIsAdmin {
			switch input.Admin {
			case "0":
				employee.Admin = false
			case "1":
				employee.Admin = true
			}
		}

		if err := employeeRepo.Update(ctx, employee); err != nil {
			return errors.Wrap(err, "failed to update employee")
		}

		updated = employee

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Employee updated", slog.Any("employeeID", targetID))

	return updated, nil
}

// Delete permanently removes the target account. There is no soft delete.
func (srv *employeeService) Delete(ctx context.Context, targetIDRaw string) error {
	targetID, err := uuid.Parse(targetIDRaw)
	if err != nil {
		return domainerrors.ErrValidation.WithDetails("Invalid employee ID")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()

		if _, err := employeeRepo.FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return domainerrors.ErrValidation.WithDetails("Employee does not exist")
			}

			return errors.Wrap(err, "failed to load employee for deletion")
		}

		if err := employeeRepo.Delete(ctx, targetID); err != nil {
			return errors.Wrap(err, "failed to delete employee")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Employee deleted", slog.Any("employeeID", targetID))

	return nil
}

// List returns every employee's public summary.
func (srv *employeeService) List(ctx context.Context) ([]*entity.EmployeeSummary, error) {
	summaries, err := srv.employeeRepo.ListSummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return summaries, nil
}

// Detail returns the extended profile for one employee id. Malformed and
// missing ids are indistinguishable on the wire: both are a 404.
func (srv *employeeService) Detail(ctx context.Context, targetIDRaw string) (*entity.Employee, error) {
	targetID, err := uuid.Parse(targetIDRaw)
	if err != nil {
		return nil, domainerrors.ErrNotFound
	}

	employee, err := srv.employeeRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load employee detail")
	}

	return employee, nil
}
