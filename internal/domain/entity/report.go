package entity

import "time"

// Report is one row of the append-only job log. Points are computed once at
// intake and never recomputed from the row afterwards, so scoring rule changes
// do not retroactively alter history. Duration and ReportDate keep their
// sheet-style textual encodings ("<int> min" and "MM/DD/YYYY"); the aggregator
// parses them leniently.
type Report struct {
	ID          int64
	SubmittedAt time.Time
	Medics      []string
	JobName     string
	Duration    string
	Points      int
	Clients     int
	ClientNames []string
	Description string
	ReportDate  string
	MessageLink string
}

// ReportInput carries the raw fields of a slash-command report submission.
// Date is optional (blank means today); TimeRange is the unparsed
// "5:00 pm - 6:00 pm" style text.
type ReportInput struct {
	JobType     string
	MedicsText  string
	ClientsText string
	DateText    string
	TimeRange   string
	Description string
	ChannelID   string
}

// ReportSummary is returned to the caller after a successful submission.
// RebuildErr is non-nil when the log append succeeded but the follow-up
// leaderboard/master-log rebuild failed; the report itself is already durable.
type ReportSummary struct {
	Medics          []string
	JobType         string
	ReportDate      string
	DurationMinutes int
	Clients         int
	Points          int
	MessageLink     string
	RebuildErr      error
}
