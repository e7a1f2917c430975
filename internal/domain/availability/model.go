package availability

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotNight     Slot = "night"
	SlotFullDay   Slot = "full_day"
)

// AllSlots is the display order used by calendars and report columns.
var AllSlots = []Slot{SlotMorning, SlotAfternoon, SlotNight, SlotFullDay}

func ParseSlot(value string) (Slot, error) {
	switch Slot(strings.TrimSpace(value)) {
	case SlotMorning:
		return SlotMorning, nil
	case SlotAfternoon:
		return SlotAfternoon, nil
	case SlotNight:
		return SlotNight, nil
	case SlotFullDay:
		return SlotFullDay, nil
	}
	return "", fmt.Errorf("unknown slot %q", value)
}

// Normalize dedupes slots and collapses any set containing full_day down to
// exactly {full_day}. The result keeps AllSlots order.
func Normalize(slots []Slot) []Slot {
	present := make(map[Slot]struct{}, len(slots))
	for _, s := range slots {
		present[s] = struct{}{}
	}
	if _, ok := present[SlotFullDay]; ok {
		return []Slot{SlotFullDay}
	}

	result := make([]Slot, 0, len(present))
	for _, s := range AllSlots {
		if _, ok := present[s]; ok {
			result = append(result, s)
		}
	}
	return result
}

// SlotList is stored as a comma separated text column.
type SlotList []Slot

func (l SlotList) Value() (driver.Value, error) {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = string(s)
	}
	return strings.Join(parts, ","), nil
}

func (l *SlotList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into SlotList", value)
	}

	if raw == "" {
		*l = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make(SlotList, 0, len(parts))
	for _, part := range parts {
		result = append(result, Slot(part))
	}
	*l = result
	return nil
}

func (l SlotList) Contains(slot Slot) bool {
	for _, s := range l {
		if s == slot {
			return true
		}
	}
	return false
}

type Record struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index:idx_unavailability_user_date" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;index:idx_unavailability_user_date" json:"date"`
	Slots     SlotList  `gorm:"type:text;not null" json:"slots"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Record) TableName() string { return "unavailability_records" }
