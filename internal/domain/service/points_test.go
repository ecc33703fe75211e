package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_calculatePoints(t *testing.T) {
	type args struct {
		jobName  string
		duration int
		clients  int
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "Should score raid by duration blocks",
			args: args{jobName: "Raid/Defend", duration: 47, clients: 3},
			want: 9, // 3 + 2*(47/15)
		},
		{
			name: "Should score raid with zero duration at the base",
			args: args{jobName: "Village Raid", duration: 0, clients: 10},
			want: 3,
		},
		{
			name: "Should score criminal flat",
			args: args{jobName: "Criminal Capture", duration: 120, clients: 4},
			want: 3,
		},
		{
			name: "Should score lmpf flat",
			args: args{jobName: "LMPF Patrol", duration: 45, clients: 2},
			want: 3,
		},
		{
			name: "Should score healing by clients plus duration blocks",
			args: args{jobName: "Lowbie Healing", duration: 30, clients: 4},
			want: 6, // 4 + 30/15
		},
		{
			name: "Should score farm jobs as healing",
			args: args{jobName: "Farm Support", duration: 15, clients: 1},
			want: 2,
		},
		{
			name: "Should score rev/spar by clients plus duration blocks",
			args: args{jobName: "Rev and Spar", duration: 60, clients: 2},
			want: 6, // 2 + 60/15
		},
		{
			name: "Should score escort flat",
			args: args{jobName: "Escort to Sand", duration: 90, clients: 1},
			want: 2,
		},
		{
			name: "Should score world boss by clients",
			args: args{jobName: "World Boss", duration: 20, clients: 4},
			want: 12,
		},
		{
			name: "Should score arc by clients",
			args: args{jobName: "Arc Run", duration: 180, clients: 2},
			want: 60,
		},
		{
			name: "Should score missions by clients",
			args: args{jobName: "Daily Missions", duration: 25, clients: 3},
			want: 9,
		},
		{
			name: "Should pay hosted event meeting both thresholds",
			args: args{jobName: "Hosted Event: Trivia", duration: 60, clients: 5},
			want: 30,
		},
		{
			name: "Should pay nothing for a short hosted event",
			args: args{jobName: "Hosted Event: Trivia", duration: 59, clients: 5},
			want: 0,
		},
		{
			name: "Should pay nothing for a hosted event with too few clients",
			args: args{jobName: "Hosted Event: Trivia", duration: 90, clients: 4},
			want: 0,
		},
		{
			name: "Should score unknown job types as zero",
			args: args{jobName: "Bake Sale", duration: 120, clients: 8},
			want: 0,
		},
		{
			name: "Should be case-insensitive on the job name",
			args: args{jobName: "RAID ON THE VILLAGE", duration: 15, clients: 1},
			want: 5,
		},
		{
			name: "Should ignore surrounding whitespace",
			args: args{jobName: "  escort  ", duration: 10, clients: 1},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculatePoints(tt.args.jobName, tt.args.duration, tt.args.clients)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func Test_calculatePoints_RaidWinsOverHealing(t *testing.T) {
	// "raid" is checked before "healing", so a name matching both scores as
	// a raid.
	got := calculatePoints("Raid Healing Support", 30, 4)
	assert.Equal(t, 3+2*(30/15), got)
}

func Test_containsAny(t *testing.T) {
	assert.True(t, containsAny("world boss hunt", "boss", "world"))
	assert.True(t, containsAny("escort", "escort"))
	assert.False(t, containsAny("bake sale", "raid", "escort"))
	assert.False(t, containsAny("anything"))
}
