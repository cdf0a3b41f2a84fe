package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ekyc-labs/ekyc-api/internal/decision"
	"github.com/ekyc-labs/ekyc-api/internal/domain"
	"github.com/ekyc-labs/ekyc-api/internal/image"
	"github.com/ekyc-labs/ekyc-api/internal/provider"
)

// VerificationStoreInterface is the audit trail as seen by the service.
type VerificationStoreInterface interface {
	Create(ctx context.Context, record *domain.VerificationRecord) error
	List(ctx context.Context, skip, limit int) ([]domain.VerificationRecord, int64, error)
	CountByVerified(ctx context.Context, verified bool) (int64, error)
	AverageConfidence(ctx context.Context) (float64, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// MaxListLimit caps the page size for verification history queries.
const MaxListLimit = 100

// DefaultListLimit is applied when the caller does not set a limit.
const DefaultListLimit = 10

// Upload is one image file received from the client.
type Upload struct {
	Name string
	Data []byte
}

// VerifyResult is the outcome of one verification pipeline run.
type VerifyResult struct {
	Verified   bool    `json:"verified"`
	Confidence float64 `json:"confidence"`
	Threshold  float64 `json:"threshold"`
	Match      bool    `json:"match"`
	Message    string  `json:"message"`
}

// VerificationPage is one page of the audit trail.
type VerificationPage struct {
	Total         int64                       `json:"total"`
	Skip          int                         `json:"skip"`
	Limit         int                         `json:"limit"`
	Verifications []domain.VerificationRecord `json:"verifications"`
}

// VerificationService orchestrates the verification pipeline: ingestion,
// the two model calls, the threshold decision and the best-effort audit
// insert. Both the provider and the store may be nil when their dependency
// was unavailable at startup; the service degrades per dependency rather
// than refusing to run.
type VerificationService struct {
	store     VerificationStoreInterface
	provider  provider.FaceProvider
	threshold float64
	logger    *slog.Logger
}

func NewVerificationService(
	store VerificationStoreInterface,
	faceProvider provider.FaceProvider,
	threshold float64,
	logger *slog.Logger,
) *VerificationService {
	if threshold <= 0 {
		threshold = decision.DefaultThreshold
	}
	return &VerificationService{
		store:     store,
		provider:  faceProvider,
		threshold: threshold,
		logger:    logger,
	}
}

// ModelsLoaded reports whether the face provider was initialized.
func (s *VerificationService) ModelsLoaded() bool {
	return s.provider != nil
}

// StoreAvailable reports whether the audit store was initialized.
func (s *VerificationService) StoreAvailable() bool {
	return s.store != nil
}

// Verify runs the full pipeline over an ID document image and a selfie.
// A model or ingestion failure never produces a fabricated decision; the
// pipeline stops at the failing stage. A store failure after the decision
// is logged and swallowed, the computed result is returned regardless.
func (s *VerificationService) Verify(ctx context.Context, idCard, selfie Upload) (*VerifyResult, error) {
	if s.provider == nil {
		return nil, domain.ErrModelsUnavailable
	}

	idImage, err := image.Ingest(idCard.Data)
	if err != nil {
		return nil, err
	}
	selfieImage, err := image.Ingest(selfie.Data)
	if err != nil {
		return nil, err
	}

	s.logger.Info("verification images loaded",
		"id_card", idCard.Name,
		"id_size", slog.GroupValue(slog.Int("width", idImage.Width), slog.Int("height", idImage.Height)),
		"selfie", selfie.Name,
		"selfie_size", slog.GroupValue(slog.Int("width", selfieImage.Width), slog.Int("height", selfieImage.Height)),
	)

	idFaces, err := s.provider.DetectFaces(ctx, idImage.Encoded)
	if err != nil {
		return nil, domain.ErrModelsUnavailable.WithError(err)
	}
	if len(idFaces) == 0 {
		return nil, domain.ErrNoFaceDetected
	}

	selfieFaces, err := s.provider.DetectFaces(ctx, selfieImage.Encoded)
	if err != nil {
		return nil, domain.ErrModelsUnavailable.WithError(err)
	}
	if len(selfieFaces) == 0 {
		return nil, domain.ErrNoFaceDetected
	}

	distance, err := s.provider.CompareFaces(ctx, idImage.Encoded, selfieImage.Encoded)
	if err != nil {
		if errors.Is(err, provider.ErrNoFaceInImage) {
			return nil, domain.ErrNoFaceDetected
		}
		return nil, domain.ErrModelsUnavailable.WithError(err)
	}

	outcome := decision.Decide(distance, s.threshold)

	s.persist(ctx, &domain.VerificationRecord{
		Verified:        outcome.Verified,
		Confidence:      outcome.Distance,
		Threshold:       outcome.Threshold,
		IDImageName:     idCard.Name,
		SelfieImageName: selfie.Name,
		IDImageBlob:     idImage.Encoded,
		SelfieImageBlob: selfieImage.Encoded,
	})

	return &VerifyResult{
		Verified:   outcome.Verified,
		Confidence: outcome.Distance,
		Threshold:  outcome.Threshold,
		Match:      outcome.Verified,
		Message:    "Face verification completed successfully",
	}, nil
}

// persist appends to the audit trail. Failures are contained here: the
// verification decision was already made and must reach the caller intact.
func (s *VerificationService) persist(ctx context.Context, record *domain.VerificationRecord) {
	if s.store == nil {
		s.logger.Warn("verification not recorded, history store disabled")
		return
	}
	if err := s.store.Create(ctx, record); err != nil {
		s.logger.Error("failed to record verification", "error", err)
	}
}

// DetectFace locates faces in a single image. Zero faces is a valid result,
// reported as an empty slice.
func (s *VerificationService) DetectFace(ctx context.Context, upload Upload) ([]domain.FaceDetection, error) {
	if s.provider == nil {
		return nil, domain.ErrModelsUnavailable
	}

	img, err := image.Ingest(upload.Data)
	if err != nil {
		return nil, err
	}

	faces, err := s.provider.DetectFaces(ctx, img.Encoded)
	if err != nil {
		return nil, domain.ErrModelsUnavailable.WithError(err)
	}

	if faces == nil {
		faces = []domain.FaceDetection{}
	}
	return faces, nil
}

// ListVerifications returns one page of the audit trail, newest first.
func (s *VerificationService) ListVerifications(ctx context.Context, skip, limit int) (*VerificationPage, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	records, total, err := s.store.List(ctx, skip, limit)
	if err != nil {
		return nil, domain.ErrStoreUnavailable.WithError(err)
	}

	return &VerificationPage{
		Total:         total,
		Skip:          skip,
		Limit:         limit,
		Verifications: records,
	}, nil
}

// Stats aggregates the audit trail. The rate is a percentage, 0 for an
// empty trail.
func (s *VerificationService) Stats(ctx context.Context) (*domain.VerificationStats, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	verified, err := s.store.CountByVerified(ctx, true)
	if err != nil {
		return nil, domain.ErrStoreUnavailable.WithError(err)
	}
	notVerified, err := s.store.CountByVerified(ctx, false)
	if err != nil {
		return nil, domain.ErrStoreUnavailable.WithError(err)
	}
	avgConfidence, err := s.store.AverageConfidence(ctx)
	if err != nil {
		return nil, domain.ErrStoreUnavailable.WithError(err)
	}

	total := verified + notVerified
	rate := 0.0
	if total > 0 {
		rate = float64(verified) / float64(total) * 100
	}

	return &domain.VerificationStats{
		TotalVerifications: total,
		VerifiedCount:      verified,
		NotVerifiedCount:   notVerified,
		VerificationRate:   rate,
		AverageConfidence:  avgConfidence,
	}, nil
}

// DeleteVerification removes one record by id.
func (s *VerificationService) DeleteVerification(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return domain.ErrStoreUnavailable.WithError(err)
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
