package report

import (
	"errors"
	"reflect"
	"testing"

	"troupe-app-go/internal/domain/availability"
	"troupe-app-go/internal/domain/user"
)

func testUsers() []user.User {
	return []user.User{
		{ID: "u01", Name: "Ana", Role: user.RoleMember},
		{ID: "u02", Name: "Bruno", Role: user.RoleMember},
	}
}

func record(userID, date string, slots ...availability.Slot) availability.Record {
	return availability.Record{
		ID:     userID + "-" + date,
		UserID: userID,
		Date:   date,
		Slots:  availability.SlotList(slots),
	}
}

func TestBuildInvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"start after end", "2024-03-10", "2024-03-01"},
		{"unparseable start", "not-a-date", "2024-03-01"},
		{"unparseable end", "2024-03-01", "03/10/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Build(tt.start, tt.end, testUsers(), nil, false)
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
			if rows != nil {
				t.Fatalf("expected no rows, got %d", len(rows))
			}
		})
	}
}

func TestBuildSingleDayRange(t *testing.T) {
	rows, err := Build("2024-03-01", "2024-03-01", testUsers(), nil, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(rows))
	}
	want := Row{Date: "2024-03-01", Morning: "-", Afternoon: "-", Night: "-", FullDay: "-"}
	if rows[0] != want {
		t.Fatalf("expected %+v, got %+v", want, rows[0])
	}
}

func TestBuildAbsencePercentage(t *testing.T) {
	users := []user.User{{ID: "u01", Name: "Ana", Role: user.RoleMember}}
	records := []availability.Record{record("u01", "2024-03-05", availability.SlotMorning)}

	rows, err := Build("2024-03-01", "2024-03-05", users, records, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	last := rows[4]
	if last.Morning != "Ana (u01) 20.0%" {
		t.Fatalf("unexpected morning cell: %q", last.Morning)
	}
	if last.Afternoon != "-" || last.Night != "-" || last.FullDay != "-" {
		t.Fatalf("expected placeholder cells, got %+v", last)
	}
}

func TestBuildWithoutStatsOmitsPercentage(t *testing.T) {
	users := []user.User{{ID: "u01", Name: "Ana", Role: user.RoleMember}}
	records := []availability.Record{record("u01", "2024-03-05", availability.SlotMorning)}

	rows, err := Build("2024-03-05", "2024-03-05", users, records, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows[0].Morning != "Ana (u01)" {
		t.Fatalf("unexpected morning cell: %q", rows[0].Morning)
	}
}

func TestBuildFullDayDoesNotBleedIntoPartialColumns(t *testing.T) {
	users := []user.User{{ID: "u01", Name: "Ana", Role: user.RoleMember}}
	records := []availability.Record{record("u01", "2024-03-05", availability.SlotFullDay)}

	rows, err := Build("2024-03-05", "2024-03-05", users, records, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := rows[0]
	if got.FullDay != "Ana (u01)" {
		t.Fatalf("unexpected full day cell: %q", got.FullDay)
	}
	if got.Morning != "-" || got.Afternoon != "-" || got.Night != "-" {
		t.Fatalf("full_day leaked into partial columns: %+v", got)
	}
}

func TestBuildMultipleUsersKeepUserListOrder(t *testing.T) {
	records := []availability.Record{
		record("u02", "2024-03-05", availability.SlotNight),
		record("u01", "2024-03-05", availability.SlotNight),
	}

	rows, err := Build("2024-03-05", "2024-03-05", testUsers(), records, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows[0].Night != "Ana (u01), Bruno (u02)" {
		t.Fatalf("unexpected night cell: %q", rows[0].Night)
	}
}

func TestBuildSkipsRecordsForUnknownUsers(t *testing.T) {
	records := []availability.Record{
		record("deleted", "2024-03-05", availability.SlotMorning),
		record("u01", "2024-03-05", availability.SlotMorning),
	}

	rows, err := Build("2024-03-05", "2024-03-05", testUsers(), records, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows[0].Morning != "Ana (u01)" {
		t.Fatalf("unexpected morning cell: %q", rows[0].Morning)
	}
}

func TestBuildPercentageCountsDaysNotSlots(t *testing.T) {
	// A partial-slot day weighs the same as a full day.
	users := []user.User{{ID: "u01", Name: "Ana", Role: user.RoleMember}}
	records := []availability.Record{
		record("u01", "2024-03-01", availability.SlotMorning),
		record("u01", "2024-03-02", availability.SlotFullDay),
	}

	rows, err := Build("2024-03-01", "2024-03-04", users, records, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows[0].Morning != "Ana (u01) 50.0%" {
		t.Fatalf("unexpected morning cell: %q", rows[0].Morning)
	}
	if rows[1].FullDay != "Ana (u01) 50.0%" {
		t.Fatalf("unexpected full day cell: %q", rows[1].FullDay)
	}
}

func TestBuildOutOfRangeRecordsDoNotCount(t *testing.T) {
	users := []user.User{{ID: "u01", Name: "Ana", Role: user.RoleMember}}
	records := []availability.Record{
		record("u01", "2024-02-28", availability.SlotMorning),
		record("u01", "2024-03-02", availability.SlotMorning),
	}

	rows, err := Build("2024-03-01", "2024-03-02", users, records, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows[1].Morning != "Ana (u01) 50.0%" {
		t.Fatalf("unexpected morning cell: %q", rows[1].Morning)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	records := []availability.Record{
		record("u01", "2024-03-02", availability.SlotMorning, availability.SlotNight),
		record("u02", "2024-03-03", availability.SlotFullDay),
	}

	first, err := Build("2024-03-01", "2024-03-04", testUsers(), records, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := Build("2024-03-01", "2024-03-04", testUsers(), records, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical inputs")
	}
}
