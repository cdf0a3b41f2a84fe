package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ekyc-labs/ekyc-api/internal/domain"
	"github.com/ekyc-labs/ekyc-api/internal/image"
	"github.com/ekyc-labs/ekyc-api/internal/service"
)

// VerificationService interface for the service
type VerificationService interface {
	Verify(ctx context.Context, idCard, selfie service.Upload) (*service.VerifyResult, error)
	DetectFace(ctx context.Context, upload service.Upload) ([]domain.FaceDetection, error)
}

// VerificationHandler handles the public verification endpoints
type VerificationHandler struct {
	service VerificationService
	logger  *slog.Logger
}

func NewVerificationHandler(svc VerificationService, logger *slog.Logger) *VerificationHandler {
	return &VerificationHandler{
		service: svc,
		logger:  logger,
	}
}

// DetectResponse response for detect-face endpoint
type DetectResponse struct {
	FacesDetected int                    `json:"faces_detected"`
	Faces         []domain.FaceDetection `json:"faces"`
	Message       string                 `json:"message"`
}

// Verify POST /verify - compare the face on an ID document with a selfie
func (h *VerificationHandler) Verify(c *fiber.Ctx) error {
	idCard, err := extractUpload(c, "id_card")
	if err != nil {
		return err
	}

	selfie, err := extractUpload(c, "selfie")
	if err != nil {
		return err
	}

	h.logger.Info("processing verification request",
		"id_card", idCard.Name,
		"selfie", selfie.Name,
	)

	result, err := h.service.Verify(c.Context(), idCard, selfie)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// DetectFace POST /detect-face - locate faces in a single image
func (h *VerificationHandler) DetectFace(c *fiber.Ctx) error {
	upload, err := extractUpload(c, "image")
	if err != nil {
		return err
	}

	faces, err := h.service.DetectFace(c.Context(), upload)
	if err != nil {
		return err
	}

	message := "No faces detected"
	if len(faces) > 0 {
		message = fmt.Sprintf("Detected %d face(s)", len(faces))
	}

	return c.JSON(DetectResponse{
		FacesDetected: len(faces),
		Faces:         faces,
		Message:       message,
	})
}

// extractUpload reads one multipart file field. The size cap is enforced
// here before buffering; full decode validation happens in the pipeline.
func extractUpload(c *fiber.Ctx, field string) (service.Upload, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return service.Upload{}, domain.ErrInvalidImage.WithError(err)
	}

	if file.Size > image.MaxImageSize {
		return service.Upload{}, domain.ErrPayloadTooLarge
	}
	if file.Size == 0 {
		return service.Upload{}, domain.ErrInvalidImage
	}

	f, err := file.Open()
	if err != nil {
		return service.Upload{}, domain.ErrInvalidImage.WithError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return service.Upload{}, domain.ErrInvalidImage.WithError(err)
	}

	return service.Upload{Name: file.Filename, Data: data}, nil
}
