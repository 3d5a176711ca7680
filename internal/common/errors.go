package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Input-rejection and quota errors. None of these ever consume a credit.
var (
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrAdRewardLimitReached = errors.New("ad reward limit reached")
)

// Infrastructure errors surfaced before any model call.
var (
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrImageProcessingFailed = errors.New("image processing failed")
	ErrNetwork               = errors.New("network error")
)

// Model/parsing failures.
var (
	// ErrAnalysisFailedCreditUsed marks a failure that happened after the
	// credit-consuming step already ran. Callers must surface the quota
	// impact distinctly from free failures.
	ErrAnalysisFailedCreditUsed = errors.New("analysis failed after credit was used")

	ErrInvalidResponse = errors.New("invalid response")
	ErrParsingFailed   = errors.New("parsing failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// CreditUsed reports whether err represents a chargeable failure.
func CreditUsed(err error) bool {
	return errors.Is(err, ErrAnalysisFailedCreditUsed)
}

// ReasonKey maps an error to a stable, machine-readable reason the UI layer
// localizes. Unrecognized errors map to "internal_error".
func ReasonKey(err error) string {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return "file_too_large"
	case errors.Is(err, ErrUnsupportedFileType):
		return "unsupported_file_type"
	case errors.Is(err, ErrInsufficientCredits):
		return "insufficient_credits"
	case errors.Is(err, ErrAdRewardLimitReached):
		return "ad_reward_limit_reached"
	case errors.Is(err, ErrNotAuthenticated):
		return "not_authenticated"
	case errors.Is(err, ErrStorageUnavailable):
		return "storage_unavailable"
	case errors.Is(err, ErrImageProcessingFailed):
		return "image_processing_failed"
	case errors.Is(err, ErrAnalysisFailedCreditUsed):
		return "analysis_failed_credit_used"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, ErrParsingFailed):
		return "parsing_failed"
	case errors.Is(err, ErrNetwork):
		return "network_error"
	default:
		return "internal_error"
	}
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func UnauthenticatedError(message string) error {
	return status.Error(codes.Unauthenticated, message)
}

func ResourceExhaustedError(message string) error {
	return status.Error(codes.ResourceExhausted, message)
}

func UnavailableError(message string) error {
	return status.Error(codes.Unavailable, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}
