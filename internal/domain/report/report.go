package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"troupe-app-go/internal/domain/availability"
	"troupe-app-go/internal/domain/user"
)

var ErrInvalidRange = errors.New("invalid report range")

const (
	dateLayout = "2006-01-02"

	// EmptyCell marks a date/slot cell with no unavailable users.
	EmptyCell = "-"
)

type Row struct {
	Date      string `json:"date"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Night     string `json:"night"`
	FullDay   string `json:"full_day"`
}

type recordKey struct {
	userID string
	date   string
}

// Build produces one row per calendar date in [start, end], each cell listing
// the users whose record for that date explicitly includes the column's slot.
// A full_day record does not bleed into the partial columns. With includeStats
// every user label carries their range-scoped absence percentage: days with
// any record divided by the days in the range, one decimal place. Records
// referencing unknown users are skipped.
//
// Build is a pure projection of its inputs; it performs no authorization.
func Build(start, end string, users []user.User, records []availability.Record, includeStats bool) ([]Row, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, ErrInvalidRange
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	totalDays := int(to.Sub(from).Hours()/24) + 1

	known := make(map[string]struct{}, len(users))
	for _, u := range users {
		known[u.ID] = struct{}{}
	}

	byUserDate := make(map[recordKey]availability.SlotList)
	absentDays := make(map[string]int, len(users))
	for _, rec := range records {
		if _, ok := known[rec.UserID]; !ok {
			continue
		}
		key := recordKey{userID: rec.UserID, date: rec.Date}
		if _, seen := byUserDate[key]; !seen && rec.Date >= start && rec.Date <= end {
			absentDays[rec.UserID]++
		}
		byUserDate[key] = rec.Slots
	}

	percentages := make(map[string]string, len(users))
	if includeStats {
		for _, u := range users {
			pct := float64(absentDays[u.ID]) / float64(totalDays) * 100
			percentages[u.ID] = fmt.Sprintf("%.1f%%", pct)
		}
	}

	rows := make([]Row, 0, totalDays)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(dateLayout)

		cell := func(slot availability.Slot) string {
			var labels []string
			for _, u := range users {
				slots, ok := byUserDate[recordKey{userID: u.ID, date: date}]
				if !ok || !slots.Contains(slot) {
					continue
				}
				label := fmt.Sprintf("%s (%s)", u.Name, u.ID)
				if includeStats {
					label += " " + percentages[u.ID]
				}
				labels = append(labels, label)
			}
			if len(labels) == 0 {
				return EmptyCell
			}
			return strings.Join(labels, ", ")
		}

		rows = append(rows, Row{
			Date:      date,
			Morning:   cell(availability.SlotMorning),
			Afternoon: cell(availability.SlotAfternoon),
			Night:     cell(availability.SlotNight),
			FullDay:   cell(availability.SlotFullDay),
		})
	}

	return rows, nil
}
