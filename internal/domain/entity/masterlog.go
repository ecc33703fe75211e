package entity

// MasterLogRow is one medic's cumulative lifetime ledger entry. Rank is the
// single source of truth for a medic's rank title: it is carried forward from
// the master log's own prior state on every rebuild, so a manually edited rank
// survives until changed.
type MasterLogRow struct {
	Medic               string
	Rank                string
	TotalJobs           int
	TotalRawPoints      int
	TotalAdjustedPoints float64
	TotalHours          float64
	RaidHours           float64
	LMPFHours           float64
	HealingHours        float64
	RevSparHours        float64
	EscortHours         float64
	WorldBossHours      float64
	ArcHours            float64
	MissionHours        float64
	HostedEventHours    float64
}
