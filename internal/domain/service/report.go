package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/leafcorps/medic-bot/internal/domain"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

var (
	// Participant lists split on commas or the literal word "and".
	participantSplitRe = regexp.MustCompile(`,|\band\b`)

	// Time ranges split on "-" or "to".
	timeRangeSplitRe = regexp.MustCompile(`-|to`)
)

var (
	clockLayouts = []string{"15:04", "3:04 PM", "3:04PM"}
	dateLayouts  = []string{"01/02/2006", "2006-01-02"}
)

// SubmitReport validates one incoming report, scores it, posts the summary
// message, appends the row to the log and rebuilds the derived views.
// Validation failures abort before anything is written; once the append
// succeeds the report is durable and a rebuild failure only surfaces as
// summary.RebuildErr.
func (s *medicService) SubmitReport(ctx context.Context, input entity.ReportInput) (*entity.ReportSummary, error) {
	reports, err := s.dm.Report().GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load report log: %w", err)
	}

	table := buildNameTable(reports)
	medics := splitParticipants(input.MedicsText, table.normalize)
	if len(medics) == 0 {
		return nil, domain.NewValidationError("at least one medic name is required")
	}

	clients := splitParticipants(input.ClientsText, nil)

	now := time.Now()
	reportDate := now
	if text := strings.TrimSpace(input.DateText); text != "" {
		d, ok := parseReportDate(text)
		if !ok {
			return nil, domain.NewValidationError("invalid date. Use MM/DD/YYYY or YYYY-MM-DD")
		}
		reportDate = d
	}

	duration, err := parseTimeRangeMinutes(input.TimeRange)
	if err != nil {
		return nil, err
	}

	points := calculatePoints(input.JobType, duration, len(clients))

	summary := &entity.ReportSummary{
		Medics:          medics,
		JobType:         input.JobType,
		ReportDate:      reportDate.Format(reportDateLayout),
		DurationMinutes: duration,
		Clients:         len(clients),
		Points:          points,
	}

	link, err := s.postReportMessage(input.ChannelID, summary, input.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to post report message: %w", err)
	}
	summary.MessageLink = link

	report := &entity.Report{
		SubmittedAt: now,
		Medics:      medics,
		JobName:     input.JobType,
		Duration:    fmt.Sprintf("%d min", duration),
		Points:      points,
		Clients:     len(clients),
		ClientNames: clients,
		Description: strings.TrimSpace(input.Description),
		ReportDate:  reportDate.Format(reportDateLayout),
		MessageLink: link,
	}

	if err := s.dm.Report().Append(report); err != nil {
		return nil, fmt.Errorf("failed to append report: %w", err)
	}

	// From here on the report is durable; a rebuild failure leaves the
	// derived views stale until the next successful rebuild, but never rolls
	// the append back.
	if err := s.rebuildMasterLog(ctx); err != nil {
		summary.RebuildErr = err
		return summary, nil
	}
	if _, err := s.rebuildLeaderboard(ctx, now.Year(), now.Month()); err != nil {
		summary.RebuildErr = err
	}

	return summary, nil
}

// postReportMessage publishes the report summary to the submitting channel
// and returns the permalink-style back-reference stored with the row. With no
// channel (e.g. internal callers) the report is logged without a link.
func (s *medicService) postReportMessage(channelID string, summary *entity.ReportSummary, description string) (string, error) {
	if channelID == "" {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Medic Report — %s*\n", summary.JobType)
	fmt.Fprintf(&b, "Date: %s\n", summary.ReportDate)
	fmt.Fprintf(&b, "Medics: %s\n", strings.Join(summary.Medics, ", "))
	fmt.Fprintf(&b, "Duration: %d min\n", summary.DurationMinutes)
	fmt.Fprintf(&b, "Clients: %d\n", summary.Clients)
	fmt.Fprintf(&b, "Points: %d", summary.Points)
	if description = strings.TrimSpace(description); description != "" {
		fmt.Fprintf(&b, "\n\n%s", description)
	}

	channel, timestamp, err := s.slackClient.PostMessage(channelID, slack.MsgOptionText(b.String(), false))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://slack.com/archives/%s/p%s", channel, strings.Replace(timestamp, ".", "", 1)), nil
}

// splitParticipants breaks a participant list on commas or the word "and",
// trimming whitespace and dropping empties. A non-nil normalize function is
// applied to each name (medics are canonicalized, clients are kept as typed).
func splitParticipants(text string, normalize func(string) string) []string {
	var names []string
	for _, part := range participantSplitRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if normalize != nil {
			part = normalize(part)
		}
		names = append(names, part)
	}

	return names
}

// parseTimeRangeMinutes turns "5:00 pm - 6:00 pm" style text into a duration
// in minutes. An end time before the start is treated as crossing midnight
// rather than a negative interval.
func parseTimeRangeMinutes(text string) (int, error) {
	parts := timeRangeSplitRe.Split(text, 2)
	if len(parts) != 2 {
		return 0, domain.NewValidationError("invalid time format. Use `HH:MM` or `H:MM AM/PM` with `-` or `to`")
	}

	start, okStart := parseClockTime(parts[0])
	end, okEnd := parseClockTime(parts[1])
	if !okStart || !okEnd {
		return 0, domain.NewValidationError("invalid time format. Use `HH:MM` or `H:MM AM/PM` with `-` or `to`")
	}

	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	return int(end.Sub(start).Minutes()), nil
}

func parseClockTime(text string) (time.Time, bool) {
	// time.Parse only accepts the AM/PM marker in the layout's case.
	text = strings.ToUpper(strings.TrimSpace(text))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseReportDate(text string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, text); err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}
