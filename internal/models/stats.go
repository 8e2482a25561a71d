package models

// HistoryPoint is one day's overall progress percentage, in [0,100].
// At most one point exists per calendar date.
type HistoryPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// StatsRow is the singleton per-tenant stats record upserted to the remote
// store on a unique wallet_id constraint.
type StatsRow struct {
	WalletID         string         `json:"wallet_id"`
	OverallProgress  float64        `json:"OverallProgress"`
	WeeklyCompletion float64        `json:"WeeklyCompletion"`
	TaskCompletion   float64        `json:"TaskCompletion"`
	ProgressOverTime []HistoryPoint `json:"ProgressOverTime"`
}
