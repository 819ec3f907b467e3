// Package errors provides structured error handling for the application
// Following enterprise patterns for error management and observability
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode represents an error code
type ErrorCode string

// Common error codes following RESTful API conventions
const (
	// Client errors (4xx)
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeForbidden        ErrorCode = "FORBIDDEN"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Server errors (5xx)
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Business logic errors
	CodePlanNotFound            ErrorCode = "PLAN_NOT_FOUND"
	CodeMealNotFound            ErrorCode = "MEAL_NOT_FOUND"
	CodeRecipeNotFound          ErrorCode = "RECIPE_NOT_FOUND"
	CodeActivePlanExists        ErrorCode = "ACTIVE_PLAN_EXISTS"
	CodeAllocationExhausted     ErrorCode = "ALLOCATION_EXHAUSTED"
	CodeSwapRejected            ErrorCode = "SWAP_REJECTED"
	CodeArchivalThreshold       ErrorCode = "ARCHIVAL_THRESHOLD_NOT_MET"
	CodeInvalidStateTransition  ErrorCode = "INVALID_STATE_TRANSITION"
	CodeInvalidStatusTransition ErrorCode = "INVALID_STATUS_TRANSITION"
)

// SwapReason identifies which swap validation rule rejected a candidate
type SwapReason string

// Swap rejection reason codes, machine-checkable by callers
const (
	SwapReasonSlotMismatch      SwapReason = "SLOT_MISMATCH"
	SwapReasonPortionExceeded   SwapReason = "PORTION_EXCEEDED"
	SwapReasonCalorieOutOfRange SwapReason = "CALORIE_OUT_OF_RANGE"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the appropriate HTTP status code
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationFailed, CodeSwapRejected:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodePlanNotFound, CodeMealNotFound, CodeRecipeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeActivePlanExists:
		return http.StatusConflict
	case CodeArchivalThreshold, CodeInvalidStateTransition, CodeInvalidStatusTransition:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// SwapReasonOf extracts the swap rejection reason from an error, if present
func SwapReasonOf(err error) (SwapReason, bool) {
	appErr, ok := err.(*AppError)
	if !ok || appErr.Code != CodeSwapRejected {
		return "", false
	}
	reason, ok := appErr.Metadata["reason"].(SwapReason)
	return reason, ok
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Predefined error constructors for common scenarios

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "Access forbidden"
	}
	return NewAppError(CodeForbidden, message, "")
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	message := "Resource not found"
	if resource != "" {
		message = fmt.Sprintf("%s not found", strings.Title(resource))
	}
	return NewAppError(CodeNotFound, message, "")
}

// NewConflictError creates a conflict error
func NewConflictError(message string) *AppError {
	return NewAppError(CodeConflict, message, "")
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("Failed to %s", operation),
	).WithCause(cause)
}

// Business domain specific errors

// NewPlanNotFoundError creates a plan not found error
func NewPlanNotFoundError(planID string) *AppError {
	return NewAppError(
		CodePlanNotFound,
		"Plan not found",
		fmt.Sprintf("Plan with ID %s does not exist", planID),
	).WithMetadata("plan_id", planID)
}

// NewMealNotFoundError creates a meal not found error
func NewMealNotFoundError(mealID string) *AppError {
	return NewAppError(
		CodeMealNotFound,
		"Meal not found",
		fmt.Sprintf("Meal with ID %s does not exist", mealID),
	).WithMetadata("meal_id", mealID)
}

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(recipeID string) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("Recipe with ID %s does not exist", recipeID),
	).WithMetadata("recipe_id", recipeID)
}

// NewActivePlanExistsError is returned when plan generation is attempted
// while the owner already has an active plan
func NewActivePlanExistsError(ownerID string) *AppError {
	return NewAppError(
		CodeActivePlanExists,
		"Active plan already exists",
		"An owner may have at most one active plan at a time",
	).WithMetadata("owner_id", ownerID)
}

// NewAllocationExhaustedError is returned when no recipe satisfies a
// slot target at any fallback tolerance level. It is fatal to the whole
// generation request.
func NewAllocationExhaustedError(slot string, targetCalories int) *AppError {
	return NewAppError(
		CodeAllocationExhausted,
		"No recipe available",
		fmt.Sprintf("No recipe satisfies slot %s at target %d kcal within any tolerance level", slot, targetCalories),
	).WithMetadata("slot", slot).WithMetadata("target_calories", targetCalories)
}

// NewSwapRejectedError creates a reason-coded swap rejection
func NewSwapRejectedError(reason SwapReason, details string) *AppError {
	return NewAppError(
		CodeSwapRejected,
		"Swap rejected",
		details,
	).WithMetadata("reason", reason)
}

// NewArchivalThresholdError is returned when a plan is archived below the
// required completion fraction
func NewArchivalThresholdError(fraction float64) *AppError {
	return NewAppError(
		CodeArchivalThreshold,
		"Archival threshold not met",
		fmt.Sprintf("Plan completion is %.0f%%, at least 90%% of meals must be completed", fraction*100),
	).WithMetadata("completed_fraction", fraction)
}

// Utility functions

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks if an error is of a specific error code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternal
}
