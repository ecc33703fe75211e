package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdReport      CommandType = "report"
	CmdLeaderboard CommandType = "leaderboard"
	CmdStats       CommandType = "stats"
	CmdRebuild     CommandType = "rebuild"
	CmdExport      CommandType = "export"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Rest string
	Raw  string
}

// ReportFields are the pipe-separated fields of a report submission, in the
// order the original report form collected them.
type ReportFields struct {
	JobType     string
	Medics      string
	Clients     string
	Date        string
	TimeRange   string
	Description string
}

func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &Command{Type: CmdHelp}, nil
	}

	verb := trimmed
	rest := ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		verb = trimmed[:i]
		rest = strings.TrimSpace(trimmed[i+1:])
	}

	cmd := &Command{
		Rest: rest,
		Raw:  text,
	}

	switch strings.ToLower(verb) {
	case "report":
		cmd.Type = CmdReport
	case "leaderboard", "lb":
		cmd.Type = CmdLeaderboard
	case "stats":
		cmd.Type = CmdStats
	case "rebuild", "updatelogs":
		cmd.Type = CmdRebuild
	case "export":
		cmd.Type = CmdExport
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", verb)
	}

	return cmd, nil
}

// ParseReportFields splits a report command body on "|". Five fields are
// required (description is optional); the date field may be left blank to
// mean today. A description containing "|" is kept intact.
func ParseReportFields(rest string) (*ReportFields, error) {
	parts := strings.Split(rest, "|")
	if len(parts) < 5 {
		return nil, fmt.Errorf("expected `job type | medics | clients | date | time range | description`")
	}

	fields := &ReportFields{
		JobType:   strings.TrimSpace(parts[0]),
		Medics:    strings.TrimSpace(parts[1]),
		Clients:   strings.TrimSpace(parts[2]),
		Date:      strings.TrimSpace(parts[3]),
		TimeRange: strings.TrimSpace(parts[4]),
	}
	if len(parts) > 5 {
		fields.Description = strings.TrimSpace(strings.Join(parts[5:], "|"))
	}

	if fields.JobType == "" {
		return nil, fmt.Errorf("job type is required")
	}
	if fields.Medics == "" {
		return nil, fmt.Errorf("medic names are required")
	}
	if fields.TimeRange == "" {
		return nil, fmt.Errorf("time range is required")
	}

	return fields, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Report a job:*
• ` + "`/medic report JOB TYPE | MEDICS | CLIENTS | DATE | TIME RANGE | DESCRIPTION`" + `
  - Medics and clients are comma-separated (ex: Leumas, LeaKiara)
  - Date is MM/DD/YYYY or YYYY-MM-DD; leave blank for today
  - Time range uses HH:MM or H:MM AM/PM (ex: 5:00 pm - 6:00 pm)

*Views:*
• ` + "`/medic leaderboard`" + ` - Show this month's medic leaderboard
• ` + "`/medic stats NAME`" + ` - Show lifetime stats for a medic

*Maintenance:*
• ` + "`/medic rebuild`" + ` - Rebuild all leaderboards and the master log
• ` + "`/medic export`" + ` - Export all sheets as an xlsx workbook`
}
