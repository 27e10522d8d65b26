package models

import "strings"

// Campaign statuses.
const (
	CampaignStatusActive    = "Active"
	CampaignStatusPaused    = "Paused"
	CampaignStatusCompleted = "Completed"
	CampaignStatusDraft     = "Draft"
)

// Alert severities.
const (
	AlertSeverityLow      = "Low"
	AlertSeverityMedium   = "Medium"
	AlertSeverityHigh     = "High"
	AlertSeverityCritical = "Critical"
)

// Alert statuses.
const (
	AlertStatusActive    = "Active"
	AlertStatusResolved  = "Resolved"
	AlertStatusDismissed = "Dismissed"
)

// Gap priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Content calendar statuses.
const (
	ContentStatusScheduled = "Scheduled"
	ContentStatusPublished = "Published"
	ContentStatusDraft     = "Draft"
	ContentStatusCancelled = "Cancelled"
)

var (
	campaignStatuses = []string{CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusDraft}
	alertSeverities  = []string{AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh, AlertSeverityCritical}
	alertStatuses    = []string{AlertStatusActive, AlertStatusResolved, AlertStatusDismissed}
	priorities       = []string{PriorityHigh, PriorityMedium, PriorityLow}
	contentStatuses  = []string{ContentStatusScheduled, ContentStatusPublished, ContentStatusDraft, ContentStatusCancelled}
)

// NormalizeCampaignStatus maps unknown values to Draft.
func NormalizeCampaignStatus(value string) string {
	return oneOf(value, campaignStatuses, CampaignStatusDraft)
}

// NormalizeAlertSeverity maps unknown values to Medium.
func NormalizeAlertSeverity(value string) string {
	return oneOf(value, alertSeverities, AlertSeverityMedium)
}

// NormalizeAlertStatus maps unknown values to Active.
func NormalizeAlertStatus(value string) string {
	return oneOf(value, alertStatuses, AlertStatusActive)
}

// NormalizePriority maps unknown values to Medium.
func NormalizePriority(value string) string {
	return oneOf(value, priorities, PriorityMedium)
}

// NormalizeContentStatus maps unknown values to Scheduled.
func NormalizeContentStatus(value string) string {
	return oneOf(value, contentStatuses, ContentStatusScheduled)
}

// Matching is exact after trimming; "high" is not "High".
func oneOf(value string, allowed []string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range allowed {
		if trimmed == candidate {
			return candidate
		}
	}
	return fallback
}
