package database

import (
	"fmt"
	"strings"

	"github.com/leafcorps/medic-bot/internal/domain/contract"
	"github.com/leafcorps/medic-bot/internal/domain/entity"
)

type reportRepo struct {
	db dbConn
}

func newReportRepo(db dbConn) contract.ReportRepo {
	return &reportRepo{db: db}
}

func (r *reportRepo) Append(report *entity.Report) error {
	query := `
		INSERT INTO reports (submitted_at, medics, job_name, duration, points,
			clients, client_names, description, report_date, message_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		report.SubmittedAt,
		joinNames(report.Medics),
		report.JobName,
		report.Duration,
		report.Points,
		report.Clients,
		joinNames(report.ClientNames),
		report.Description,
		report.ReportDate,
		report.MessageLink,
	)
	if err != nil {
		return fmt.Errorf("failed to append report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	report.ID = id
	return nil
}

func (r *reportRepo) GetAll() ([]*entity.Report, error) {
	query := `
		SELECT id, submitted_at, medics, job_name, duration, points,
			clients, client_names, description, report_date, message_link
		FROM reports
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}
	defer rows.Close()

	var reports []*entity.Report
	for rows.Next() {
		report := &entity.Report{}
		var medics, clientNames string
		err := rows.Scan(
			&report.ID,
			&report.SubmittedAt,
			&medics,
			&report.JobName,
			&report.Duration,
			&report.Points,
			&report.Clients,
			&clientNames,
			&report.Description,
			&report.ReportDate,
			&report.MessageLink,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		report.Medics = splitNames(medics)
		report.ClientNames = splitNames(clientNames)
		reports = append(reports, report)
	}

	return reports, nil
}

// joinNames stores a name list the way the original sheet did: comma-joined.
func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func splitNames(joined string) []string {
	var names []string
	for _, part := range strings.Split(joined, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
