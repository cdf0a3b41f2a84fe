package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// VerifyResponse represents the response for face verification
type VerifyResponse struct {
	Verified   bool    `json:"verified" example:"true"`
	Confidence float64 `json:"confidence" example:"0.31"`
	Threshold  float64 `json:"threshold" example:"0.4"`
	Match      bool    `json:"match" example:"true"`
	Message    string  `json:"message" example:"Face verification completed successfully"`
}

// BoundingBoxData represents a detected face location
type BoundingBoxData struct {
	X      float64 `json:"x" example:"120.5"`
	Y      float64 `json:"y" example:"80.2"`
	Width  float64 `json:"width" example:"96.0"`
	Height float64 `json:"height" example:"96.0"`
}

// FaceData represents a single detected face
type FaceData struct {
	BoundingBox BoundingBoxData `json:"bbox"`
	Confidence  float64         `json:"confidence" example:"0.99"`
}

// DetectResponse represents the response for face detection
type DetectResponse struct {
	FacesDetected int        `json:"faces_detected" example:"1"`
	Faces         []FaceData `json:"faces"`
	Message       string     `json:"message" example:"Detected 1 face(s)"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status       string `json:"status" example:"healthy"`
	ModelsLoaded bool   `json:"models_loaded" example:"true"`
	Device       string `json:"device" example:"cpu"`
	Detector     bool   `json:"detector" example:"true"`
	Embedder     bool   `json:"embedder" example:"true"`
	Database     bool   `json:"database" example:"true"`
}

// LoginResponse represents a successful admin login
type LoginResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	Username    string `json:"username" example:"admin"`
}

// VerificationRecordData represents one audit trail entry
type VerificationRecordData struct {
	ID              string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Verified        bool    `json:"verified" example:"true"`
	Confidence      float64 `json:"confidence" example:"0.31"`
	Threshold       float64 `json:"threshold" example:"0.4"`
	IDImageName     string  `json:"id_image_name" example:"id_card.jpg"`
	SelfieImageName string  `json:"selfie_image_name" example:"selfie.jpg"`
	CreatedAt       string  `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// VerificationListResponse represents one page of the audit trail
type VerificationListResponse struct {
	Total         int64                    `json:"total" example:"42"`
	Skip          int                      `json:"skip" example:"0"`
	Limit         int                      `json:"limit" example:"10"`
	Verifications []VerificationRecordData `json:"verifications"`
}

// StatsResponse represents the aggregate audit trail view
type StatsResponse struct {
	TotalVerifications int64   `json:"total_verifications" example:"42"`
	VerifiedCount      int64   `json:"verified_count" example:"30"`
	NotVerifiedCount   int64   `json:"not_verified_count" example:"12"`
	VerificationRate   float64 `json:"verification_rate" example:"71.4"`
	AverageConfidence  float64 `json:"average_confidence" example:"0.36"`
}

// MessageResponse represents a simple confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Verification record deleted"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"INVALID_IMAGE"`
	Message string `json:"message" example:"Invalid image format or corrupted file"`
}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "eKYC Face Verification API",
		Version:     "v1.0.0",
		Description: "Face verification between identity documents and selfies, with an auditable verification history",
		Host:        "localhost:8000",
	})

	endpoints := []*endpoint.EndPoint{
		// GET /health - Health Check
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Health check"),
			endpoint.WithDescription("Reports whether the face models and the verification history store are available"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service status"),
			}),
		),

		// POST /verify - Face Verification
		endpoint.New(
			endpoint.POST,
			"/verify",
			endpoint.WithTags("Verification"),
			endpoint.WithSummary("Verify a selfie against an ID document"),
			endpoint.WithDescription("Compares the face on an identity document with the face in a selfie and returns the match decision"),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(VerifyResponse{}, "200", "Verification completed successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid image format or corrupted file"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "NO_FACE_DETECTED", Message: "No face detected in the image"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "MODELS_UNAVAILABLE", Message: "Face models are not loaded"}, "503", "Service Unavailable"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// POST /detect-face - Face Detection
		endpoint.New(
			endpoint.POST,
			"/detect-face",
			endpoint.WithTags("Verification"),
			endpoint.WithSummary("Detect faces in an image"),
			endpoint.WithDescription("Locates faces in a single image. Zero faces is a valid outcome, not an error"),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(DetectResponse{}, "200", "Detection completed successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid image format or corrupted file"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "MODELS_UNAVAILABLE", Message: "Face models are not loaded"}, "503", "Service Unavailable"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// POST /admin/login - Admin Login
		endpoint.New(
			endpoint.POST,
			"/admin/login",
			endpoint.WithTags("Admin"),
			endpoint.WithSummary("Obtain an admin bearer token"),
			endpoint.WithDescription("Exchanges the configured admin credentials for a JWT bearer token"),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(LoginResponse{}, "200", "Login succeeded"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid credentials"}, "401", "Unauthorized"),
			}),
		),

		// GET /admin/verifications - List Verifications
		endpoint.New(
			endpoint.GET,
			"/admin/verifications",
			endpoint.WithTags("Admin"),
			endpoint.WithSummary("List verification history"),
			endpoint.WithDescription("Returns a page of verification records, newest first (requires bearer token)"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("skip", parameter.Query, parameter.WithDescription("Records to skip (default: 0)")),
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Page size (default: 10, max: 100)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(VerificationListResponse{}, "200", "History retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid credentials"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "Verification history is unavailable"}, "503", "Service Unavailable"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /admin/stats - Verification Stats
		endpoint.New(
			endpoint.GET,
			"/admin/stats",
			endpoint.WithTags("Admin"),
			endpoint.WithSummary("Get verification statistics"),
			endpoint.WithDescription("Returns aggregate counts and rates over the whole verification history (requires bearer token)"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StatsResponse{}, "200", "Statistics retrieved successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid credentials"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "Verification history is unavailable"}, "503", "Service Unavailable"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// DELETE /admin/verifications/:id - Delete Verification
		endpoint.New(
			endpoint.DELETE,
			"/admin/verifications/{id}",
			endpoint.WithTags("Admin"),
			endpoint.WithSummary("Delete a verification record"),
			endpoint.WithDescription("Removes one record from the verification history (requires bearer token)"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.StrParam("id", parameter.Path, parameter.WithDescription("Verification record id")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(MessageResponse{}, "200", "Record deleted successfully"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid credentials"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "NOT_FOUND", Message: "Resource not found"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "Verification history is unavailable"}, "503", "Service Unavailable"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
