package impl

import (
	"context"
	"log/slog"
	"net/url"
	"slices"
	"sort"
	"strings"
	"time"

	"vesselwatch/config"
	deliverycontext "vesselwatch/internal/delivery/context"
	"vesselwatch/internal/domain/entity"
	domainerrors "vesselwatch/internal/domain/errors"
	"vesselwatch/internal/domain/repository"
	"vesselwatch/internal/domain/service"
	"vesselwatch/internal/errors"
	"vesselwatch/internal/usecase"

	"github.com/google/uuid"
)

type borderService struct {
	logger         *slog.Logger
	allowedSchemes []string
	txManager      repository.TransactionManager
	borderRepo     repository.BorderPointRepository
	loader         service.BoundaryLoader
}

// NewBorderService creates the border point administration service
func NewBorderService(
	logger *slog.Logger,
	cfg *config.Config,
	txManager repository.TransactionManager,
	borderRepo repository.BorderPointRepository,
	loader service.BoundaryLoader,
) usecase.BorderUsecase {
	var schemes []string
	if cfg.BorderImport != nil {
		schemes = cfg.BorderImport.AllowedSchemes
	}

	return &borderService{
		logger:         logger,
		allowedSchemes: schemes,
		txManager:      txManager,
		borderRepo:     borderRepo,
		loader:         loader,
	}
}

func (s *borderService) CreatePoint(ctx context.Context, point *entity.BorderPoint) (*entity.BorderPoint, error) {
	now := time.Now()
	point.ID = uuid.New()
	point.CreatedAt = now
	point.UpdatedAt = now

	if err := s.borderRepo.Create(ctx, point); err != nil {
		return nil, errors.Wrap(err, "failed to create border point")
	}

	return point, nil
}

func (s *borderService) UpdatePoint(ctx context.Context, point *entity.BorderPoint) (*entity.BorderPoint, error) {
	existing, err := s.GetPoint(ctx, point.ID)
	if err != nil {
		return nil, err
	}

	point.CreatedAt = existing.CreatedAt
	point.UpdatedAt = time.Now()
	if err := s.borderRepo.Update(ctx, point); err != nil {
		return nil, errors.Wrap(err, "failed to update border point")
	}

	return point, nil
}

func (s *borderService) DeletePoint(ctx context.Context, id uuid.UUID) error {
	err := s.borderRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrBorderPointNotFound) {
		return domainerrors.ErrBorderPointNotFound
	}

	return err
}

func (s *borderService) GetPoint(ctx context.Context, id uuid.UUID) (*entity.BorderPoint, error) {
	point, err := s.borderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBorderPointNotFound) {
		return nil, domainerrors.ErrBorderPointNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find border point")
	}

	return point, nil
}

func (s *borderService) ListPoints(ctx context.Context, boundaryCode string) ([]*entity.BorderPoint, error) {
	return s.borderRepo.List(ctx, boundaryCode)
}

// Import replaces every boundary found in the file inside one transaction
func (s *borderService) Import(ctx context.Context, rawURL, defaultCode string) (*usecase.ImportResult, error) {
	if err := s.checkScheme(rawURL); err != nil {
		return nil, err
	}

	points, err := s.loader.Load(ctx, rawURL, defaultCode)
	if err != nil {
		return nil, domainerrors.ErrBorderImportFailed.WithDetails(err.Error())
	}
	if len(points) == 0 {
		return nil, domainerrors.ErrBorderImportFailed.WithDetails("file contains no boundary")
	}

	byCode := make(map[string][]*entity.BorderPoint)
	now := time.Now()
	for _, point := range points {
		point.ID = uuid.New()
		point.CreatedAt = now
		point.UpdatedAt = now
		byCode[point.BoundaryCode] = append(byCode[point.BoundaryCode], point)
	}

	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewBorderPointRepository()
		for _, code := range codes {
			if err := repo.ReplaceBoundary(ctx, code, byCode[code]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store imported boundaries")
	}

	deliverycontext.LoggerFrom(ctx, s.logger).Info("Boundaries imported",
		slog.String("url", rawURL),
		slog.Any("boundaries", codes),
		slog.Int("points", len(points)),
	)

	return &usecase.ImportResult{Boundaries: codes, Points: len(points)}, nil
}

func (s *borderService) checkScheme(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" {
		return domainerrors.ErrBorderImportFailed.WithDetails("invalid url")
	}

	if !slices.Contains(s.allowedSchemes, strings.ToLower(parsed.Scheme)) {
		return domainerrors.ErrBorderImportFailed.WithDetails("scheme " + parsed.Scheme + " is not allowed")
	}

	return nil
}
