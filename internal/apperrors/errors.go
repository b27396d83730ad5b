package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure inside the application.
var ErrInternal = errors.New("internal error")

// ErrCacheOwnerMismatch indicates an attempt to cache data under another user's partition.
// It is a data-integrity bug, never a user error.
var ErrCacheOwnerMismatch = errors.New("cache owner mismatch")

// ErrCyclicFallback indicates that a currency's rate resolution revisited a currency
// already on its resolution chain.
var ErrCyclicFallback = errors.New("cyclic currency fallback chain")

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewBadRequestError is an alias of NewValidationError used by the HTTP layer.
func NewBadRequestError(message string) *AppError {
	return NewValidationError(message)
}

// NewConflictError creates an AppError that matches ErrConflict.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// EntityNotFoundError reports a user, currency, container or transaction
// that does not exist for the requesting owner.
type EntityNotFoundError struct {
	Entity string
	ID     string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewUserNotFound, NewCurrencyNotFound and NewContainerNotFound build the
// EntityNotFoundError variants used across services.
func NewUserNotFound(id string) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: "user", ID: id}
}

func NewCurrencyNotFound(id string) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: "currency", ID: id}
}

func NewContainerNotFound(id string) *EntityNotFoundError {
	return &EntityNotFoundError{Entity: "container", ID: id}
}

// RateUnavailableError means no datum brackets the instant and the currency
// declares no usable fallback.
type RateUnavailableError struct {
	CurrencyID string
	At         time.Time
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("no rate available for currency %q at %d", e.CurrencyID, e.At.UnixMilli())
}

func (e *RateUnavailableError) Is(target error) bool {
	return target == ErrNotFound
}

// ConstantComparisonError reports an argument compared against a fixed bound,
// e.g. "division must be >= 2".
type ConstantComparisonError struct {
	Name     string
	Operator string
	Constant string
	Actual   string
}

func (e *ConstantComparisonError) Error() string {
	return fmt.Sprintf("%s must be %s %s, got %s", e.Name, e.Operator, e.Constant, e.Actual)
}

func (e *ConstantComparisonError) Is(target error) bool {
	return target == ErrValidation
}

// ArgsComparisonError reports two arguments in the wrong relation,
// e.g. "startDate must be < endDate".
type ArgsComparisonError struct {
	LeftName  string
	Operator  string
	RightName string
}

func (e *ArgsComparisonError) Error() string {
	return fmt.Sprintf("%s must be %s %s", e.LeftName, e.Operator, e.RightName)
}

func (e *ArgsComparisonError) Is(target error) bool {
	return target == ErrValidation
}

// CacheOwnerMismatchError is returned when a cache write carries an item owned by
// a different user than the partition it is written to.
type CacheOwnerMismatchError struct {
	Cache         string
	PartitionUser string
	ItemUser      string
}

func (e *CacheOwnerMismatchError) Error() string {
	return fmt.Sprintf("%s: item owned by %q written to partition of %q", e.Cache, e.ItemUser, e.PartitionUser)
}

func (e *CacheOwnerMismatchError) Is(target error) bool {
	return target == ErrCacheOwnerMismatch
}

// CyclicFallbackError lists the currency ids visited before the cycle closed.
// The last element is the currency that was revisited.
type CyclicFallbackError struct {
	Chain []string
}

func (e *CyclicFallbackError) Error() string {
	return "cyclic currency fallback chain: " + strings.Join(e.Chain, " -> ")
}

func (e *CyclicFallbackError) Is(target error) bool {
	return target == ErrCyclicFallback
}
