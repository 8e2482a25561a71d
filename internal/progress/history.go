package progress

import (
	"sort"
	"time"

	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
	"github.com/jivana-app/jivana/internal/utils"
)

// RollingHistory upserts today's value into the series keyed by calendar
// date, sorts ascending, and trims to the most recent 30 entries.
func RollingHistory(series []models.HistoryPoint, todayValue float64, today time.Time) []models.HistoryPoint {
	date := today.Format(constants.DateFormat)

	out := make([]models.HistoryPoint, 0, len(series)+1)
	replaced := false
	for _, p := range series {
		if p.Date == date {
			p.Value = todayValue
			replaced = true
		}
		out = append(out, p)
	}
	if !replaced {
		out = append(out, models.HistoryPoint{Date: date, Value: todayValue})
	}

	return sortAndTrim(out)
}

// MergeHistory unions the two series by date with local winning on
// conflicts, sorted ascending and trimmed to 30. It is idempotent.
func MergeHistory(local, remote []models.HistoryPoint) []models.HistoryPoint {
	byDate := make(map[string]models.HistoryPoint, len(local)+len(remote))
	for _, p := range remote {
		byDate[p.Date] = p
	}
	for _, p := range local {
		byDate[p.Date] = p
	}

	out := make([]models.HistoryPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, p)
	}
	return sortAndTrim(out)
}

// WeeklyCompletion averages the series values over the last 7 calendar
// days, counting missing days as zero. 0 for an empty series.
func WeeklyCompletion(series []models.HistoryPoint, today time.Time) float64 {
	if len(series) == 0 {
		return 0
	}

	byDate := make(map[string]float64, len(series))
	for _, p := range series {
		byDate[p.Date] = p.Value
	}

	sum := 0.0
	for _, day := range utils.LastNDays(7, today) {
		sum += byDate[day]
	}
	return sum / 7
}

// PriorWeekCompletion averages the series over days 7 through 13 back,
// for the week-over-week delta on the stats view.
func PriorWeekCompletion(series []models.HistoryPoint, today time.Time) float64 {
	return WeeklyCompletion(series, today.AddDate(0, 0, -7))
}

func sortAndTrim(series []models.HistoryPoint) []models.HistoryPoint {
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	if len(series) > constants.HistoryWindowDays {
		series = series[len(series)-constants.HistoryWindowDays:]
	}
	return series
}
