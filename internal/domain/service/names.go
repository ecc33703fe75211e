package service

import (
	"strings"

	"github.com/leafcorps/medic-bot/internal/domain/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameTable maps lower-cased medic names to their canonical casing. It is
// rebuilt from the report log on every intake, so it is derived state and
// never persisted on its own.
type nameTable map[string]string

// buildNameTable scans every report's medic list; the first occurrence of a
// name fixes its canonical casing, later occurrences never change it.
func buildNameTable(reports []*entity.Report) nameTable {
	table := make(nameTable)
	for _, report := range reports {
		for _, medic := range report.Medics {
			name := strings.TrimSpace(medic)
			if name == "" {
				continue
			}

			key := strings.ToLower(name)
			if _, ok := table[key]; !ok {
				table[key] = name
			}
		}
	}

	return table
}

// normalize returns the stored casing for a known medic. A never-seen name is
// title-cased and remembered for the remainder of this intake only; the table
// is rebuilt from the log on the next call.
func (t nameTable) normalize(name string) string {
	key := strings.ToLower(name)
	if canonical, ok := t[key]; ok {
		return canonical
	}

	proper := cases.Title(language.English).String(name)
	t[key] = proper
	return proper
}
