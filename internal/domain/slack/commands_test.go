package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType CommandType
		wantRest string
		wantErr  bool
	}{
		{
			name:     "Should parse report with its body",
			input:    "report Escort | LeaKiara | ClientOne | 01/15/2025 | 5:00 pm - 6:00 pm",
			wantType: CmdReport,
			wantRest: "Escort | LeaKiara | ClientOne | 01/15/2025 | 5:00 pm - 6:00 pm",
		},
		{
			name:     "Should parse leaderboard",
			input:    "leaderboard",
			wantType: CmdLeaderboard,
		},
		{
			name:     "Should accept the lb alias",
			input:    "lb",
			wantType: CmdLeaderboard,
		},
		{
			name:     "Should parse stats with a name",
			input:    "stats LeaKiara",
			wantType: CmdStats,
			wantRest: "LeaKiara",
		},
		{
			name:     "Should parse rebuild",
			input:    "rebuild",
			wantType: CmdRebuild,
		},
		{
			name:     "Should accept the updatelogs alias",
			input:    "updatelogs",
			wantType: CmdRebuild,
		},
		{
			name:     "Should parse export",
			input:    "export",
			wantType: CmdExport,
		},
		{
			name:     "Should parse help",
			input:    "help",
			wantType: CmdHelp,
		},
		{
			name:     "Should default empty text to help",
			input:    "   ",
			wantType: CmdHelp,
		},
		{
			name:     "Should be case-insensitive on the verb",
			input:    "LEADERBOARD",
			wantType: CmdLeaderboard,
		},
		{
			name:    "Should reject an unknown verb",
			input:   "dance",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantRest, cmd.Rest)
		})
	}
}

func TestParseReportFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *ReportFields
		wantErr bool
	}{
		{
			name:  "Should parse all six fields",
			input: "Escort to Sand | LeaKiara, Leumas | ClientOne | 01/15/2025 | 5:00 pm - 6:00 pm | Routine escort.",
			want: &ReportFields{
				JobType:     "Escort to Sand",
				Medics:      "LeaKiara, Leumas",
				Clients:     "ClientOne",
				Date:        "01/15/2025",
				TimeRange:   "5:00 pm - 6:00 pm",
				Description: "Routine escort.",
			},
		},
		{
			name:  "Should accept a missing description",
			input: "Escort | LeaKiara | ClientOne | 01/15/2025 | 17:00 - 18:00",
			want: &ReportFields{
				JobType:   "Escort",
				Medics:    "LeaKiara",
				Clients:   "ClientOne",
				Date:      "01/15/2025",
				TimeRange: "17:00 - 18:00",
			},
		},
		{
			name:  "Should accept a blank date meaning today",
			input: "Escort | LeaKiara | ClientOne |  | 17:00 - 18:00",
			want: &ReportFields{
				JobType:   "Escort",
				Medics:    "LeaKiara",
				Clients:   "ClientOne",
				Date:      "",
				TimeRange: "17:00 - 18:00",
			},
		},
		{
			name:  "Should keep pipes inside the description",
			input: "Escort | LeaKiara | ClientOne | 01/15/2025 | 17:00 - 18:00 | went fine | no issues",
			want: &ReportFields{
				JobType:     "Escort",
				Medics:      "LeaKiara",
				Clients:     "ClientOne",
				Date:        "01/15/2025",
				TimeRange:   "17:00 - 18:00",
				Description: "went fine | no issues",
			},
		},
		{
			name:    "Should reject too few fields",
			input:   "Escort | LeaKiara | ClientOne",
			wantErr: true,
		},
		{
			name:    "Should reject a blank job type",
			input:   " | LeaKiara | ClientOne | 01/15/2025 | 17:00 - 18:00",
			wantErr: true,
		},
		{
			name:    "Should reject blank medics",
			input:   "Escort |  | ClientOne | 01/15/2025 | 17:00 - 18:00",
			wantErr: true,
		},
		{
			name:    "Should reject a blank time range",
			input:   "Escort | LeaKiara | ClientOne | 01/15/2025 | ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReportFields(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/medic report")
	assert.Contains(t, help, "/medic leaderboard")
	assert.Contains(t, help, "/medic stats")
	assert.Contains(t, help, "/medic rebuild")
	assert.Contains(t, help, "/medic export")
}
