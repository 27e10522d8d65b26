package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/islandgo-api/internal/dto"
	"github.com/noah-isme/islandgo-api/internal/repository"
)

// Report types.
const (
	ReportComprehensive = "comprehensive"
	ReportCampaigns     = "campaigns"
	ReportBudget        = "budget"
	ReportEngagement    = "engagement"
	ReportSocial        = "social"
)

const (
	customDateRange   = "custom"
	defaultReportDays = 30
)

var reportSections = map[string][]string{
	ReportComprehensive: {dto.ReportSectionCampaigns, dto.ReportSectionBudgets, dto.ReportSectionEngagement, dto.ReportSectionSocialMedia},
	ReportCampaigns:     {dto.ReportSectionCampaigns},
	ReportBudget:        {dto.ReportSectionBudgets},
	ReportEngagement:    {dto.ReportSectionEngagement},
	ReportSocial:        {dto.ReportSectionSocialMedia},
}

// ReportService bundles stored records into downloadable reports.
type ReportService interface {
	Generate(ctx context.Context, req dto.ReportRequest) (dto.ReportResponse, error)
}

type reportService struct {
	campaigns  repository.CampaignRepository
	budgets    repository.BudgetRepository
	engagement repository.EngagementRepository
	social     repository.SocialMediaRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewReportService constructs the report service.
func NewReportService(campaigns repository.CampaignRepository, budgets repository.BudgetRepository, engagement repository.EngagementRepository, social repository.SocialMediaRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		campaigns:  campaigns,
		budgets:    budgets,
		engagement: engagement,
		social:     social,
		logger:     logger.With().Str("component", "report_service").Logger(),
		now:        time.Now,
	}
}

// Generate fetches the sections of the requested report type concurrently. Campaigns
// and budgets are never windowed. Unknown types produce an empty report.
func (s *reportService) Generate(ctx context.Context, req dto.ReportRequest) (dto.ReportResponse, error) {
	report := dto.ReportResponse{}
	sections, ok := reportSections[strings.TrimSpace(req.Type)]
	if !ok {
		return report, nil
	}

	start, end, err := s.reportWindow(req)
	if err != nil {
		return nil, err
	}

	all := repository.ListOptions{All: true}
	results := make([]interface{}, len(sections))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, section := range sections {
		i, section := i, section
		group.Go(func() error {
			switch section {
			case dto.ReportSectionCampaigns:
				page := s.campaigns.List(groupCtx, repository.CampaignFilter{}, all)
				results[i] = page.Items
				return sectionError(section, page.Degraded)
			case dto.ReportSectionBudgets:
				page := s.budgets.List(groupCtx, repository.BudgetFilter{}, all)
				results[i] = page.Items
				return sectionError(section, page.Degraded)
			case dto.ReportSectionEngagement:
				page := s.engagement.List(groupCtx, repository.MetricFilter{Start: start, End: end}, all)
				results[i] = page.Items
				return sectionError(section, page.Degraded)
			case dto.ReportSectionSocialMedia:
				page := s.social.List(groupCtx, repository.MetricFilter{Start: start, End: end}, all)
				results[i] = page.Items
				return sectionError(section, page.Degraded)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		s.logger.Error().Err(err).Str("type", req.Type).Msg("failed to generate report")
		return nil, err
	}

	for i, section := range sections {
		report[section] = results[i]
	}

	s.logger.Info().Str("type", req.Type).Time("start", start).Time("end", end).Int("sections", len(sections)).Msg("report generated")
	return report, nil
}

// reportWindow uses both custom dates when the range is "custom" and both are set.
// Otherwise the range is a day count back from now.
func (s *reportService) reportWindow(req dto.ReportRequest) (time.Time, time.Time, error) {
	now := s.now().UTC()
	if strings.TrimSpace(req.DateRange) == customDateRange && strings.TrimSpace(req.StartDate) != "" && strings.TrimSpace(req.EndDate) != "" {
		return parseWindow(req.StartDate, req.EndDate)
	}
	return now.AddDate(0, 0, -reportDays(req.DateRange)), now, nil
}

// reportDays reads the leading integer of value, so "7d" means seven days.
func reportDays(value string) int {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && unicode.IsDigit(rune(value[end])) {
		end++
	}
	days, err := strconv.Atoi(value[:end])
	if err != nil || days <= 0 {
		return defaultReportDays
	}
	return days
}

func sectionError(section string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("read report section %s: %w", section, err)
}
