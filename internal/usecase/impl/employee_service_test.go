package impl

import (
	"context"
	"testing"

	"employeesys/internal/domain/entity"
	domainerrors "employeesys/internal/domain/errors"
	"employeesys/internal/domain/repository"
	mockRepo "employeesys/internal/mocks/repository"
	"employeesys/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertValidationDetail(t *testing.T, err error, detail string) {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrValidation)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, detail, appErr.Details())
}

func TestEmployeeService_Register_Success(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret1",
	}

	fx.hasher.On("Hash", "secret1").Return("hashed", nil)
	fx.codeGen.On("NumericCode", 4).Return("1234", nil)

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrEmployeeNotFound)

	mailSent := false
	fx.mailSender.
		On("Send", ctx, testMailFrom, input.Email,
			"Confirm E-Mail on EmployeeSys",
			"<p>Please confirm your e-mail on EmployeeSys.</p><p>Confirmation code: 1234</p>").
		Run(func(mock.Arguments) { mailSent = true }).
		Return(nil)

	txRepo.
		On("Create", ctx, mock.AnythingOfType("*entity.Employee")).
		Run(func(args mock.Arguments) {
			// The mail must already be on its way when the record is written.
			assert.True(t, mailSent)

			employee := args.Get(1).(*entity.Employee)
			employee.ID = uuid.New()
		}).
		Return(nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Jane", employee.FirstName)
	assert.Equal(t, "hashed", employee.PasswordHash)
	assert.False(t, employee.EmailVerified)
	assert.Equal(t, "1234", employee.VerificationCode)
	assert.False(t, employee.Admin)
	assert.Equal(t, entity.SocialNone, employee.SocialProvider)
}

func TestEmployeeService_Register_MailFailureCreatesNothing(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret1",
	}

	fx.hasher.On("Hash", "secret1").Return("hashed", nil)
	fx.codeGen.On("NumericCode", 4).Return("1234", nil)

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrEmployeeNotFound)

	fx.mailSender.
		On("Send", ctx, testMailFrom, input.Email, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Register(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrMailSendFailed)
	assert.Nil(t, employee)
	txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret1",
	}

	fx.hasher.On("Hash", "secret1").Return("hashed", nil)

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByEmail", ctx, input.Email).Return(&entity.Employee{ID: uuid.New()}, nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Register(ctx, input)

	assertValidationDetail(t, err, "E-mail already in use")
	assert.Nil(t, employee)
	txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_Register_SocialAutoVerified(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Password:     "social",
		SocialSymbol: "g",
	}

	fx.hasher.On("Hash", "social").Return("hashed", nil)

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrEmployeeNotFound)
	txRepo.On("Create", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.True(t, employee.EmailVerified)
	assert.Empty(t, employee.VerificationCode)
	assert.Equal(t, entity.SocialGoogle, employee.SocialProvider)
	// A social registration never sends a confirmation mail.
	fx.mailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_Register_SymbolWithoutMarkerIsRegular(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Password:     "secret1",
		SocialSymbol: "g",
	}

	fx.hasher.On("Hash", "secret1").Return("hashed", nil)
	fx.codeGen.On("NumericCode", 4).Return("5678", nil)

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrEmployeeNotFound)
	txRepo.On("Create", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

	fx.mailSender.
		On("Send", ctx, testMailFrom, input.Email, mock.Anything, mock.Anything).
		Return(nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.False(t, employee.EmailVerified)
	assert.Equal(t, "5678", employee.VerificationCode)
	assert.Equal(t, entity.SocialNone, employee.SocialProvider)
}

func TestEmployeeService_Login_Success(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	employeeID := uuid.New()
	stored := &entity.Employee{
		ID:           employeeID,
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		PasswordHash: "hashed",
	}

	fx.employeeRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	fx.hasher.On("Check", "secret1", "hashed").Return(true)
	fx.tokenService.On("IssueToken", employeeID, "Jane", "Doe").Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: stored.Email, Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, employeeID, out.Employee.ID)
}

func TestEmployeeService_Login_UnknownEmail(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	fx.employeeRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrEmployeeNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})

	require.ErrorIs(t, err, domainerrors.ErrEmailNotExists)
	assert.Nil(t, out)
}

func TestEmployeeService_Login_WrongPassword(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	stored := &entity.Employee{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed"}

	fx.employeeRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	fx.hasher.On("Check", "wrong-pass", "hashed").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: stored.Email, Password: "wrong-pass"})

	require.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
	assert.Nil(t, out)
	fx.tokenService.AssertNotCalled(t, "IssueToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_Login_SocialPath(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		provider entity.SocialProvider
		symbol   string
		password string
		wantErr  bool
	}{
		{name: "matching provider", provider: entity.SocialGoogle, symbol: "g", password: "social"},
		{name: "mismatched provider", provider: entity.SocialGoogle, symbol: "f", password: "social", wantErr: true},
		{name: "symbol without marker password", provider: entity.SocialGoogle, symbol: "g", password: "secret1", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestEmployeeService(t)

			stored := &entity.Employee{
				ID:             uuid.New(),
				FirstName:      "Jane",
				LastName:       "Doe",
				Email:          "jane@example.com",
				PasswordHash:   "hashed",
				EmailVerified:  true,
				SocialProvider: tc.provider,
			}

			fx.employeeRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
			fx.hasher.On("Check", tc.password, "hashed").Return(tc.password == "social")
			if !tc.wantErr {
				fx.tokenService.On("IssueToken", stored.ID, "Jane", "Doe").Return("signed-token", nil)
			}

			out, err := fx.service.Login(ctx, &usecase.LoginInput{
				Email:        stored.Email,
				Password:     tc.password,
				SocialSymbol: tc.symbol,
			})

			if tc.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrPasswordIncorrect)
				assert.Nil(t, out)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed-token", out.Token)
		})
	}
}

func TestEmployeeService_Verify_Success(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	callerID := uuid.New()
	stored := &entity.Employee{
		ID:               callerID,
		Email:            "jane@example.com",
		EmailVerified:    false,
		VerificationCode: "1234",
	}

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByID", ctx, callerID).Return(stored, nil)
	txRepo.
		On("Update", ctx, mock.AnythingOfType("*entity.Employee")).
		Run(func(args mock.Arguments) {
			employee := args.Get(1).(*entity.Employee)
			assert.True(t, employee.EmailVerified)
			assert.Empty(t, employee.VerificationCode)
		}).
		Return(nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Verify(ctx, callerID, "1234")

	require.NoError(t, err)
	assert.True(t, employee.EmailVerified)
	assert.Empty(t, employee.VerificationCode)
}

func TestEmployeeService_Verify_FormatGateSkipsStore(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()

	_, err := fx.service.Verify(ctx, uuid.New(), "123")
	assertValidationDetail(t, err, "Invalid verification code")

	_, err = fx.service.Verify(ctx, uuid.New(), "")
	assertValidationDetail(t, err, "Verification code is required")

	// Neither call may touch the store.
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestEmployeeService_Verify_Failures(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()

	cases := []struct {
		name       string
		stored     *entity.Employee
		storedErr  error
		code       string
		wantDetail string
	}{
		{
			name:       "employee missing",
			storedErr:  repository.ErrEmployeeNotFound,
			code:       "1234",
			wantDetail: "Employee does not exist",
		},
		{
			name:       "already verified",
			stored:     &entity.Employee{ID: callerID, EmailVerified: true},
			code:       "1234",
			wantDetail: "Employee is already verified",
		},
		{
			name:       "code mismatch",
			stored:     &entity.Employee{ID: callerID, VerificationCode: "9999"},
			code:       "1234",
			wantDetail: "Invalid verification code",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestEmployeeService(t)

			txRepo := mockRepo.NewMockEmployeeRepository(t)
			txRepo.On("FindByID", ctx, callerID).Return(tc.stored, tc.storedErr)

			fx.expectTransaction(t, txRepo)

			employee, err := fx.service.Verify(ctx, callerID, tc.code)

			assertValidationDetail(t, err, tc.wantDetail)
			assert.Nil(t, employee)
			txRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestEmployeeService_ResendCode_SendsStoredCode(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	callerID := uuid.New()
	stored := &entity.Employee{
		ID:               callerID,
		Email:            "jane@example.com",
		VerificationCode: "4321",
	}

	fx.employeeRepo.On("FindByID", ctx, callerID).Return(stored, nil)
	fx.mailSender.
		On("Send", ctx, testMailFrom, stored.Email,
			"Reminder: Confirm E-Mail on EmployeeSys",
			"<p>Please confirm your e-mail on EmployeeSys.</p><p>Confirmation code: 4321</p>").
		Return(nil)

	email, err := fx.service.ResendCode(ctx, callerID)

	require.NoError(t, err)
	assert.Equal(t, stored.Email, email)
	// The stored code is re-sent verbatim, never regenerated.
	fx.codeGen.AssertNotCalled(t, "NumericCode", mock.Anything)
}

func TestEmployeeService_ResendCode_AlreadyVerified(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.employeeRepo.On("FindByID", ctx, callerID).Return(&entity.Employee{ID: callerID, EmailVerified: true}, nil)

	_, err := fx.service.ResendCode(ctx, callerID)

	assertValidationDetail(t, err, "Employee is already verified")
	fx.mailSender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_ResendCode_SendFailure(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	callerID := uuid.New()
	stored := &entity.Employee{ID: callerID, Email: "jane@example.com", VerificationCode: "4321"}

	fx.employeeRepo.On("FindByID", ctx, callerID).Return(stored, nil)
	fx.mailSender.
		On("Send", ctx, testMailFrom, stored.Email, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	_, err := fx.service.ResendCode(ctx, callerID)

	require.ErrorIs(t, err, domainerrors.ErrMailSendFailed)
}

func TestEmployeeService_Update_NonAdminCannotEscalate(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	targetID := uuid.New()
	stored := &entity.Employee{ID: targetID, FirstName: "Jane", LastName: "Doe", Admin: false}

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByID", ctx, targetID).Return(stored, nil)
	txRepo.On("Update", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Update(ctx, &usecase.UpdateInput{
		TargetID:      targetID.String(),
		Admin:         "1",
		CallerIsAdmin: false,
	})

	require.NoError(t, err)
	assert.False(t, employee.Admin)
}

func TestEmployeeService_Update_AdminTogglesFlag(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	targetID := uuid.New()
	stored := &entity.Employee{ID: targetID, FirstName: "Jane", LastName: "Doe"}

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByID", ctx, targetID).Return(stored, nil)
	txRepo.On("Update", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Update(ctx, &usecase.UpdateInput{
		TargetID:      targetID.String(),
		Admin:         "1",
		CallerIsAdmin: true,
	})

	require.NoError(t, err)
	assert.True(t, employee.Admin)
}

func TestEmployeeService_Update_PartialSemantics(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	targetID := uuid.New()
	stored := &entity.Employee{
		ID:           targetID,
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: "old-hash",
	}

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByID", ctx, targetID).Return(stored, nil)
	txRepo.On("Update", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

	fx.expectTransaction(t, txRepo)

	// Only the first name changes; everything else keeps its prior value.
	employee, err := fx.service.Update(ctx, &usecase.UpdateInput{
		TargetID:  targetID.String(),
		FirstName: "Janet",
	})

	require.NoError(t, err)
	assert.Equal(t, "Janet", employee.FirstName)
	assert.Equal(t, "Doe", employee.LastName)
	assert.Equal(t, "old-hash", employee.PasswordHash)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestEmployeeService_Update_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	cases := []struct {
		name       string
		input      *usecase.UpdateInput
		wantDetail string
	}{
		{
			name:       "invalid id",
			input:      &usecase.UpdateInput{TargetID: "not-a-uuid"},
			wantDetail: "Invalid Employee ID",
		},
		{
			name:       "bad first name",
			input:      &usecase.UpdateInput{TargetID: targetID.String(), FirstName: "J4ne"},
			wantDetail: "First name should contain english letters and spaces only",
		},
		{
			name:       "bad last name",
			input:      &usecase.UpdateInput{TargetID: targetID.String(), LastName: "D0e"},
			wantDetail: "Last name should contain english letters and spaces only",
		},
		{
			name:       "short password",
			input:      &usecase.UpdateInput{TargetID: targetID.String(), Password: "abc"},
			wantDetail: "Password must be 6 characters or more",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestEmployeeService(t)

			employee, err := fx.service.Update(ctx, tc.input)

			assertValidationDetail(t, err, tc.wantDetail)
			assert.Nil(t, employee)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestEmployeeService_Update_TargetMissing(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	targetID := uuid.New()

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByID", ctx, targetID).Return(nil, repository.ErrEmployeeNotFound)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Update(ctx, &usecase.UpdateInput{TargetID: targetID.String()})

	assertValidationDetail(t, err, "Employee does not exist")
	assert.Nil(t, employee)
}

func TestEmployeeService_Update_RehashesPassword(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	targetID := uuid.New()
	stored := &entity.Employee{ID: targetID, FirstName: "Jane", LastName: "Doe", PasswordHash: "old-hash"}

	fx.hasher.On("Hash", "new-secret").Return("new-hash", nil)

	txRepo := mockRepo.NewMockEmployeeRepository(t)
	txRepo.On("FindByID", ctx, targetID).Return(stored, nil)
	txRepo.On("Update", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

	fx.expectTransaction(t, txRepo)

	employee, err := fx.service.Update(ctx, &usecase.UpdateInput{
		TargetID: targetID.String(),
		Password: "new-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", employee.PasswordHash)
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		fx := createTestEmployeeService(t)

		err := fx.service.Delete(ctx, "not-a-uuid")

		assertValidationDetail(t, err, "Invalid employee ID")
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("target missing", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		targetID := uuid.New()

		txRepo := mockRepo.NewMockEmployeeRepository(t)
		txRepo.On("FindByID", ctx, targetID).Return(nil, repository.ErrEmployeeNotFound)

		fx.expectTransaction(t, txRepo)

		err := fx.service.Delete(ctx, targetID.String())

		assertValidationDetail(t, err, "Employee does not exist")
		txRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		targetID := uuid.New()

		txRepo := mockRepo.NewMockEmployeeRepository(t)
		txRepo.On("FindByID", ctx, targetID).Return(&entity.Employee{ID: targetID}, nil)
		txRepo.On("Delete", ctx, targetID).Return(nil)

		fx.expectTransaction(t, txRepo)

		require.NoError(t, fx.service.Delete(ctx, targetID.String()))
	})
}

func TestEmployeeService_List(t *testing.T) {
	fx := createTestEmployeeService(t)

	ctx := context.Background()
	summaries := []*entity.EmployeeSummary{
		{ID: uuid.New(), FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
	}

	fx.employeeRepo.On("ListSummaries", ctx).Return(summaries, nil)

	got, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestEmployeeService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id is a 404", func(t *testing.T) {
		fx := createTestEmployeeService(t)

		employee, err := fx.service.Detail(ctx, "not-a-uuid")

		require.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.Nil(t, employee)
	})

	t.Run("missing id is a 404", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		targetID := uuid.New()

		fx.employeeRepo.On("FindByID", ctx, targetID).Return(nil, repository.ErrEmployeeNotFound)

		employee, err := fx.service.Detail(ctx, targetID.String())

		require.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.Nil(t, employee)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		targetID := uuid.New()
		stored := &entity.Employee{ID: targetID, FirstName: "Jane"}

		fx.employeeRepo.On("FindByID", ctx, targetID).Return(stored, nil)

		employee, err := fx.service.Detail(ctx, targetID.String())

		require.NoError(t, err)
		assert.Equal(t, stored, employee)
	})
}
