package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/leafcorps/medic-bot/internal/domain"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const logSheetTitle = "Medic Job Log"

// ExportWorkbook renders the raw report log, every monthly leaderboard sheet
// and the master log into a single xlsx workbook, mirroring the spreadsheet
// layout the guild works with.
func (s *medicService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeLogSheet(f); err != nil {
		return nil, err
	}
	if err := s.writeLeaderboardSheets(f); err != nil {
		return nil, err
	}
	if err := s.writeMasterLogSheet(f); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *medicService) writeLogSheet(f *excelize.File) error {
	reports, err := s.dm.Report().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load report log: %w", err)
	}

	if err := f.SetSheetName("Sheet1", logSheetTitle); err != nil {
		return fmt.Errorf("failed to rename log sheet: %w", err)
	}

	rows := [][]interface{}{{
		"Timestamp", "Medics", "Job Name", "Duration", "Points", "Clients",
		"Participant Names", "Description", "Report Date", "Message Link",
	}}
	for _, report := range reports {
		rows = append(rows, []interface{}{
			report.SubmittedAt.Format("01/02/2006 15:04"),
			strings.Join(report.Medics, ", "),
			report.JobName,
			report.Duration,
			report.Points,
			report.Clients,
			strings.Join(report.ClientNames, ", "),
			report.Description,
			report.ReportDate,
			report.MessageLink,
		})
	}

	return writeRows(f, logSheetTitle, rows)
}

func (s *medicService) writeLeaderboardSheets(f *excelize.File) error {
	sheets, err := s.dm.Leaderboard().GetSheets()
	if err != nil {
		return fmt.Errorf("failed to load leaderboard sheets: %w", err)
	}

	for _, sheet := range sheets {
		title := entity.LeaderboardSheetTitle(sheet.Year, sheet.Month)
		if _, err := f.NewSheet(title); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", title, err)
		}

		boardRows, err := s.dm.Leaderboard().GetRows(sheet.Year, sheet.Month)
		if err != nil {
			return fmt.Errorf("failed to load rows for %q: %w", title, err)
		}

		if len(boardRows) == 0 {
			if err := f.SetCellValue(title, "A1", "No data for this month."); err != nil {
				return fmt.Errorf("failed to write placeholder for %q: %w", title, err)
			}
			continue
		}

		rows := [][]interface{}{{
			"Rank", "Medic", "Raw Points", "Jobs Logged", "Rank Title",
			"Bonus Multiplier", "Adjusted Points", "Total Pay", "Total Ryo",
		}}
		for _, row := range boardRows {
			var totalRyo interface{} = ""
			if row.HasPool {
				totalRyo = row.TotalRyo
			}
			rows = append(rows, []interface{}{
				row.Rank,
				row.Medic,
				row.RawPoints,
				row.JobsLogged,
				row.RankTitle,
				row.BonusMultiplier,
				row.AdjustedPoints,
				row.TotalPay,
				totalRyo,
			})
		}

		if err := writeRows(f, title, rows); err != nil {
			return err
		}
	}

	return nil
}

func (s *medicService) writeMasterLogSheet(f *excelize.File) error {
	logRows, err := s.dm.MasterLog().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load master log: %w", err)
	}

	title := domain.MasterLogTitle
	if _, err := f.NewSheet(title); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", title, err)
	}

	rows := [][]interface{}{{
		"Medic", "Rank", "Total Jobs", "Total Raw Points",
		"Total Adjusted Points", "Total Hours", "Raid Hours", "LMPF Hours",
		"Healing Hours", "Rev/Spar Hours", "Escort Hours", "World Boss Hours",
		"Arc Hours", "Mission Hours", "Hosted Event Hours",
	}}
	for _, row := range logRows {
		rows = append(rows, []interface{}{
			row.Medic,
			row.Rank,
			row.TotalJobs,
			row.TotalRawPoints,
			row.TotalAdjustedPoints,
			row.TotalHours,
			row.RaidHours,
			row.LMPFHours,
			row.HealingHours,
			row.RevSparHours,
			row.EscortHours,
			row.WorldBossHours,
			row.ArcHours,
			row.MissionHours,
			row.HostedEventHours,
		})
	}

	return writeRows(f, title, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %q: %w", i+1, sheet, err)
		}
	}

	return nil
}
