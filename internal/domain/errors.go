package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrInvalidImage = &AppError{
		Code:       "INVALID_IMAGE",
		Message:    "Invalid image format or corrupted file",
		StatusCode: 400,
	}

	ErrPayloadTooLarge = &AppError{
		Code:       "PAYLOAD_TOO_LARGE",
		Message:    "Image exceeds the maximum allowed size of 10MB",
		StatusCode: 400,
	}

	// ErrUnauthorized covers every authentication failure: wrong username,
	// wrong password, missing, malformed or expired token. Callers must not
	// be able to tell which check failed.
	ErrUnauthorized = &AppError{
		Code:       "UNAUTHORIZED",
		Message:    "Invalid credentials",
		StatusCode: 401,
	}

	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Resource not found",
		StatusCode: 404,
	}

	// ErrNoFaceDetected is a decidable business outcome, not a system fault.
	ErrNoFaceDetected = &AppError{
		Code:       "NO_FACE_DETECTED",
		Message:    "No face detected in the image",
		StatusCode: 422,
	}

	ErrModelsUnavailable = &AppError{
		Code:       "MODELS_UNAVAILABLE",
		Message:    "Face models are not loaded. Please ensure model weights are available",
		StatusCode: 503,
	}

	ErrStoreUnavailable = &AppError{
		Code:       "STORE_UNAVAILABLE",
		Message:    "Verification history is unavailable",
		StatusCode: 503,
	}
)
