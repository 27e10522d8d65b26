package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/repository"
	"github.com/noah-isme/islandgo-api/internal/schema"
)

// ExportService returns raw insight rows for offline analysis.
type ExportService interface {
	Export(ctx context.Context, req dto.ExportRequest) (interface{}, error)
}

type exportService struct {
	creators repository.CreatorRepository
	gaps     repository.GapRepository
	viral    repository.ViralContentRepository
	logger   zerolog.Logger
}

// NewExportService constructs the export service.
func NewExportService(creators repository.CreatorRepository, gaps repository.GapRepository, viral repository.ViralContentRepository, logger zerolog.Logger) ExportService {
	return &exportService{
		creators: creators,
		gaps:     gaps,
		viral:    viral,
		logger:   logger.With().Str("component", "export_service").Logger(),
	}
}

// Export lists every row of the requested kind, newest first, created inside the
// window when both dates are given. "all" bundles the three kinds; unknown types
// export an empty list. A failed read is returned so the download never looks
// complete when it is not.
func (s *exportService) Export(ctx context.Context, req dto.ExportRequest) (interface{}, error) {
	var window repository.Window
	if strings.TrimSpace(req.StartDate) != "" && strings.TrimSpace(req.EndDate) != "" {
		start, end, err := parseWindow(req.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}
		window = repository.Window{Start: start, End: end}
	}

	all := repository.ListOptions{All: true}
	exportType := strings.TrimSpace(req.Type)

	var (
		result interface{}
		err    error
	)
	switch exportType {
	case dto.ExportCreators:
		result, err = exportRows(s.creators.List(ctx, repository.CreatorFilter{Created: window}, all), schema.KindCreators)
	case dto.ExportGaps:
		result, err = exportRows(s.gaps.List(ctx, repository.GapFilter{Created: window}, all), schema.KindGaps)
	case dto.ExportViral:
		result, err = exportRows(s.viral.List(ctx, repository.ViralContentFilter{Created: window}, all), schema.KindViralContent)
	case dto.ExportAll:
		result, err = s.exportAll(ctx, window)
	default:
		return []interface{}{}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("type", exportType).Msg("failed to export data")
		return nil, err
	}

	s.logger.Info().Str("type", exportType).Time("start", window.Start).Time("end", window.End).Msg("data exported")
	return result, nil
}

func (s *exportService) exportAll(ctx context.Context, window repository.Window) (dto.ExportBundle, error) {
	var bundle dto.ExportBundle
	all := repository.ListOptions{All: true}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		bundle.Creators, err = exportRows(s.creators.List(groupCtx, repository.CreatorFilter{Created: window}, all), schema.KindCreators)
		return err
	})
	group.Go(func() (err error) {
		bundle.Gaps, err = exportRows(s.gaps.List(groupCtx, repository.GapFilter{Created: window}, all), schema.KindGaps)
		return err
	})
	group.Go(func() (err error) {
		bundle.Viral, err = exportRows(s.viral.List(groupCtx, repository.ViralContentFilter{Created: window}, all), schema.KindViralContent)
		return err
	})
	if err := group.Wait(); err != nil {
		return dto.ExportBundle{}, err
	}
	return bundle, nil
}

func exportRows[T any](page repository.Page[T], kind schema.Kind) ([]T, error) {
	rows := items(page, kind)
	if page.IsDegraded() {
		return nil, fmt.Errorf("export %s: %w", kind, page.Degraded)
	}
	return rows, nil
}
