package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ekyc-labs/ekyc-api/internal/api/middleware"
	"github.com/ekyc-labs/ekyc-api/internal/domain"
	"github.com/ekyc-labs/ekyc-api/internal/service"
)

// MockVerificationService is a mock implementation of VerificationService
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Verify(ctx context.Context, idCard, selfie service.Upload) (*service.VerifyResult, error) {
	args := m.Called(ctx, idCard, selfie)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VerifyResult), args.Error(1)
}

func (m *MockVerificationService) DetectFace(ctx context.Context, upload service.Upload) ([]domain.FaceDetection, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FaceDetection), args.Error(1)
}

// testLogger returns a logger that discards all output
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(h *VerificationHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(testLogger()),
	})
	app.Post("/verify", h.Verify)
	app.Post("/detect-face", h.DetectFace)
	return app
}

// multipartBody builds a multipart form with the given file fields.
func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".jpg")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestVerificationHandler_Verify(t *testing.T) {
	svc := &MockVerificationService{}
	svc.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(&service.VerifyResult{
		Verified:   true,
		Confidence: 0.25,
		Threshold:  0.4,
		Match:      true,
		Message:    "Face verification completed successfully",
	}, nil)

	app := newTestApp(NewVerificationHandler(svc, testLogger()))

	body, contentType := multipartBody(t, map[string][]byte{
		"id_card": []byte("id-image-bytes"),
		"selfie":  []byte("selfie-image-bytes"),
	})

	req := httptest.NewRequest(http.MethodPost, "/verify", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result service.VerifyResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Verified)
	assert.True(t, result.Match)
	assert.Equal(t, 0.25, result.Confidence)

	// Uploads reach the service with the original filenames and bytes.
	svc.AssertCalled(t, "Verify", mock.Anything,
		mock.MatchedBy(func(u service.Upload) bool {
			return u.Name == "id_card.jpg" && string(u.Data) == "id-image-bytes"
		}),
		mock.MatchedBy(func(u service.Upload) bool {
			return u.Name == "selfie.jpg" && string(u.Data) == "selfie-image-bytes"
		}),
	)
}

func TestVerificationHandler_Verify_MissingFile(t *testing.T) {
	tests := []struct {
		name  string
		files map[string][]byte
	}{
		{name: "missing selfie", files: map[string][]byte{"id_card": []byte("x")}},
		{name: "missing id card", files: map[string][]byte{"selfie": []byte("x")}},
		{name: "no files at all", files: map[string][]byte{}},
	}

	svc := &MockVerificationService{}
	app := newTestApp(NewVerificationHandler(svc, testLogger()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartBody(t, tt.files)

			req := httptest.NewRequest(http.MethodPost, "/verify", body)
			req.Header.Set("Content-Type", contentType)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			svc.AssertNotCalled(t, "Verify")
		})
	}
}

func TestVerificationHandler_Verify_ServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "no face detected", err: domain.ErrNoFaceDetected, wantStatus: 422, wantCode: "NO_FACE_DETECTED"},
		{name: "models unavailable", err: domain.ErrModelsUnavailable, wantStatus: 503, wantCode: "MODELS_UNAVAILABLE"},
		{name: "invalid image", err: domain.ErrInvalidImage, wantStatus: 400, wantCode: "INVALID_IMAGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockVerificationService{}
			svc.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			app := newTestApp(NewVerificationHandler(svc, testLogger()))

			body, contentType := multipartBody(t, map[string][]byte{
				"id_card": []byte("x"),
				"selfie":  []byte("y"),
			})

			req := httptest.NewRequest(http.MethodPost, "/verify", body)
			req.Header.Set("Content-Type", contentType)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var errBody struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
			assert.Equal(t, tt.wantCode, errBody.Error.Code)
		})
	}
}

func TestVerificationHandler_DetectFace(t *testing.T) {
	faces := []domain.FaceDetection{
		{BoundingBox: domain.BoundingBox{X: 10, Y: 20, Width: 96, Height: 96}, Confidence: 0.99},
	}

	svc := &MockVerificationService{}
	svc.On("DetectFace", mock.Anything, mock.Anything).Return(faces, nil)

	app := newTestApp(NewVerificationHandler(svc, testLogger()))

	body, contentType := multipartBody(t, map[string][]byte{"image": []byte("img")})

	req := httptest.NewRequest(http.MethodPost, "/detect-face", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result DetectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1, result.FacesDetected)
	require.Len(t, result.Faces, 1)
	assert.Equal(t, 0.99, result.Faces[0].Confidence)
	assert.Equal(t, "Detected 1 face(s)", result.Message)
}

func TestVerificationHandler_DetectFace_NoFaces(t *testing.T) {
	svc := &MockVerificationService{}
	svc.On("DetectFace", mock.Anything, mock.Anything).Return([]domain.FaceDetection{}, nil)

	app := newTestApp(NewVerificationHandler(svc, testLogger()))

	body, contentType := multipartBody(t, map[string][]byte{"image": []byte("img")})

	req := httptest.NewRequest(http.MethodPost, "/detect-face", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result DetectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 0, result.FacesDetected)
	assert.Empty(t, result.Faces)
	assert.Equal(t, "No faces detected", result.Message)
}
