package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_bonusForRank(t *testing.T) {
	tests := []struct {
		name string
		rank string
		want float64
	}{
		{
			name: "Should pay doctor bonus",
			rank: "Doctor",
			want: 3.0,
		},
		{
			name: "Should pay paramedic bonus",
			rank: "Paramedic",
			want: 2.0,
		},
		{
			name: "Should pay senior bonus",
			rank: "Senior Medic",
			want: 1.5,
		},
		{
			name: "Should pay junior bonus",
			rank: "Junior Medic",
			want: 1.25,
		},
		{
			name: "Should pay field bonus",
			rank: "Field Medic",
			want: 1.15,
		},
		{
			name: "Should resolve senior before field",
			rank: "Senior Field Medic",
			want: 1.5,
		},
		{
			name: "Should resolve doctor before any other keyword",
			rank: "Junior Field Doctor",
			want: 3.0,
		},
		{
			name: "Should be case-insensitive",
			rank: "PARAMEDIC",
			want: 2.0,
		},
		{
			name: "Should pay no bonus for blank rank",
			rank: "",
			want: 1.0,
		},
		{
			name: "Should pay no bonus for unknown rank",
			rank: "Unranked",
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bonusForRank(tt.rank))
		})
	}
}
