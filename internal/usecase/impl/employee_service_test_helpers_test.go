package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"employeesys/config"
	domainrepo "employeesys/internal/domain/repository"
	mockRepo "employeesys/internal/mocks/repository"
	mockSvc "employeesys/internal/mocks/service"
	"employeesys/internal/usecase"

	"github.com/stretchr/testify/mock"
)

const testMailFrom = "no-reply@employeesys.test"

// employeeServiceFixtures holds all test dependencies for employee service tests.
type employeeServiceFixtures struct {
	service      usecase.EmployeeUsecase
	txManager    *mockRepo.MockTransactionManager
	employeeRepo *mockRepo.MockEmployeeRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailSender   *mockSvc.MockMailSender
	codeGen      *mockSvc.MockCodeGenerator
}

func createTestEmployeeService(t *testing.T) employeeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailSender := mockSvc.NewMockMailSender(t)
	codeGen := mockSvc.NewMockCodeGenerator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEmployeeService(EmployeeServiceParams{
		TxManager:    txManager,
		EmployeeRepo: employeeRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		MailSender:   mailSender,
		CodeGen:      codeGen,
		Config: &config.Config{
			Mail: &config.MailConfig{From: testMailFrom},
		},
		Logger: logger,
	})

	return employeeServiceFixtures{
		service:      service,
		txManager:    txManager,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailSender:   mailSender,
		codeGen:      codeGen,
	}
}

// expectTransaction makes the transaction manager run the callback against a
// factory handing out the given repository, and propagate the callback error.
func (fx employeeServiceFixtures) expectTransaction(t *testing.T, repo *mockRepo.MockEmployeeRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("EmployeeRepo").Return(repo).Maybe()

	fx.txManager.
		On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(domainrepo.RepositoryFactory) error) error {
			return fn(factory)
		})
}
