package rekognition

import "errors"

var (
	ErrRekognitionUnavailable = errors.New("rekognition service unavailable")
	ErrInvalidImage           = errors.New("invalid image for rekognition")
)

const (
	errCodeInvalidParameter = "InvalidParameterException"
	errCodeInvalidImage     = "InvalidImageFormatException"
	errCodeImageTooLarge    = "ImageTooLargeException"
)
