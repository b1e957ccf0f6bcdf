// Package handler contains the HTTP handlers for the employee directory API.
package handler

import (
	"log/slog"
	"time"

	"employeesys/internal/delivery/http/middleware"
	"employeesys/internal/delivery/http/response"
	"employeesys/internal/domain/entity"
	domainerrors "employeesys/internal/domain/errors"
	"employeesys/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EmployeeHandlerParams holds dependencies for EmployeeHandler, injected by Fx.
type EmployeeHandlerParams struct {
	fx.In

	EmployeeUC usecase.EmployeeUsecase
	Logger     *slog.Logger
}

// EmployeeHandler holds dependencies for employee-related handlers
type EmployeeHandler struct {
	employeeUC usecase.EmployeeUsecase
	logger     *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler
func NewEmployeeHandler(params EmployeeHandlerParams) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUC: params.EmployeeUC,
		logger:     params.Logger,
	}
}

// --- Request DTOs ---

// RegisterRequest represents the request body for registering an employee.
// Social registration passes the fixed password literal plus a provider
// symbol (g/f/a) in Social.
type RegisterRequest struct {
	FirstName string `json:"fname" form:"fname" validate:"required,alphaspace"`
	LastName  string `json:"lname" form:"lname" validate:"required,alphaspace"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Password  string `json:"password" form:"password" validate:"required,min=6"`
	Social    string `json:"social" form:"social"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Social   string `json:"social" form:"social"`
}

// UpdateRequest represents the request body for a partial profile update.
// Every field is optional; empty values keep the stored ones. Admin carries
// the raw "0"/"1" wire value.
type UpdateRequest struct {
	FirstName string `json:"fname" form:"fname"`
	LastName  string `json:"lname" form:"lname"`
	Password  string `json:"password" form:"password"`
	Admin     string `json:"admin" form:"admin"`
}

// --- Response payloads ---

type employeePayload struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	Admin         bool      `json:"admin"`
}

type employeeDetailPayload struct {
	employeePayload
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type summaryPayload struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

type loginPayload struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Token     string    `json:"token"`
}

type resendPayload struct {
	Email string `json:"email"`
}

func toEmployeePayload(e *entity.Employee) employeePayload {
	return employeePayload{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		EmailVerified: e.EmailVerified,
		Admin:         e.Admin,
	}
}

// --- Handlers ---

// Register handles POST /api/employees.
func (h *EmployeeHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err, registerPasswordLengthMessage)
	}

	employee, err := h.employeeUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		SocialSymbol: req.Social,
	})
	if err != nil {
		return err
	}

	return response.SuccessWithData(c, "Registration Success", toEmployeePayload(employee))
}

// Login handles POST /api/employees/login.
func (h *EmployeeHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err, loginPasswordLengthMessage)
	}

	out, err := h.employeeUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:        req.Email,
		Password:     req.Password,
		SocialSymbol: req.Social,
	})
	if err != nil {
		return err
	}

	return response.SuccessWithData(c, "Login Success", loginPayload{
		ID:        out.Employee.ID,
		FirstName: out.Employee.FirstName,
		LastName:  out.Employee.LastName,
		Token:     out.Token,
	})
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(c echo.Context) error {
	summaries, err := h.employeeUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	// An empty directory still serializes as [], never null.
	payload := make([]summaryPayload, 0, len(summaries))
	for _, s := range summaries {
		payload = append(payload, summaryPayload{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Email:     s.Email,
		})
	}

	return response.SuccessWithData(c, "Operation success", payload)
}

// Detail handles GET /api/employees/:id.
func (h *EmployeeHandler) Detail(c echo.Context) error {
	employee, err := h.employeeUC.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.SuccessWithData(c, "Operation success", employeeDetailPayload{
		employeePayload: toEmployeePayload(employee),
		CreatedAt:       employee.CreatedAt,
		UpdatedAt:       employee.UpdatedAt,
	})
}

// Update handles PUT /api/employees/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidation
	}

	// Self-escalation prevention: a non-admin caller's admin field is
	// stripped before the engine ever sees it. The engine gates on the same
	// flag again.
	callerIsAdmin := middleware.CallerIsAdmin(c)
	if !callerIsAdmin {
		req.Admin = ""
	}

	employee, err := h.employeeUC.Update(c.Request().Context(), &usecase.UpdateInput{
		TargetID:      c.Param("id"),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Password:      req.Password,
		Admin:         req.Admin,
		CallerIsAdmin: callerIsAdmin,
	})
	if err != nil {
		return err
	}

	return response.SuccessWithData(c, "Employee update Success", toEmployeePayload(employee))
}

// Verify handles PUT /api/employees/verify/:code.
func (h *EmployeeHandler) Verify(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authorization token is required")
	}

	employee, err := h.employeeUC.Verify(c.Request().Context(), callerID, c.Param("code"))
	if err != nil {
		return err
	}

	return response.SuccessWithData(c, "Employee e-mail verification Success", toEmployeePayload(employee))
}

// Resend handles POST /api/employees/resend.
func (h *EmployeeHandler) Resend(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return response.Unauthorized(c, "Authorization token is required")
	}

	email, err := h.employeeUC.ResendCode(c.Request().Context(), callerID)
	if err != nil {
		return err
	}

	// The original message spelling is part of the wire contract.
	return response.SuccessWithData(c, "Cofirmation code sending success", resendPayload{Email: email})
}

// Delete handles DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employeeUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, "Employee delete Success")
}

// --- Validation message mapping ---

const (
	registerPasswordLengthMessage = "Password must be 6 characters or more"
	loginPasswordLengthMessage    = "Password must be 6 characters or greater"
)

// validationError converts the first field error into the exact wire detail
// the contract prescribes for that field and rule.
func validationError(err error, passwordLengthMessage string) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return domainerrors.ErrValidation
	}

	fe := fieldErrors[0]
	switch fe.StructField() {
	case "FirstName":
		if fe.Tag() == "required" {
			return domainerrors.ErrValidation.WithDetails("First name is required")
		}

		return domainerrors.ErrValidation.WithDetails("First name should contain english letters only")
	case "LastName":
		if fe.Tag() == "required" {
			return domainerrors.ErrValidation.WithDetails("Last name is required")
		}

		return domainerrors.ErrValidation.WithDetails("Last name should contain english letters only")
	case "Email":
		if fe.Tag() == "required" {
			return domainerrors.ErrValidation.WithDetails("E-mail is required")
		}

		return domainerrors.ErrValidation.WithDetails("E-mail should have a legal account@domain address")
	case "Password":
		if fe.Tag() == "required" {
			return domainerrors.ErrValidation.WithDetails("Password is required")
		}

		return domainerrors.ErrValidation.WithDetails(passwordLengthMessage)
	default:
		return domainerrors.ErrValidation
	}
}
