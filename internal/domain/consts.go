package domain

// DefaultPool is the payout pool (in ryo) written to a monthly leaderboard
// sheet when it is first created. It is never re-applied to an existing
// sheet, so an operator-edited pool survives rebuilds.
const DefaultPool = 5000

// DefaultRank is the rank title used for medics with no master-log entry.
const DefaultRank = "Unranked"

// MasterLogTitle is the fixed name of the lifetime ledger sheet.
const MasterLogTitle = "Leaf Master Medical Log"

// HourBuckets lists the job-category buckets for the master log's hours
// breakdown, in sheet column order.
var HourBuckets = []string{
	"Raid",
	"LMPF",
	"Healing",
	"Rev/Spar",
	"Escort",
	"World Boss",
	"Arc",
	"Mission",
	"Hosted Event",
}

// JobTypes are the job categories offered by the report command, matching the
// options of the original report form.
var JobTypes = []string{
	"Raid / Defend",
	"LMPF",
	"Healing Lowbies",
	"Rev Spar",
	"Escort",
	"World Boss",
	"Arc",
	"Daily Mission",
	"Hosted Event",
}
