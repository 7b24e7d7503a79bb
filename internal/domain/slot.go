package domain

import (
	"fmt"
	"time"

	"github.com/kamile-nails/booking-service/pkg/types"
)

// AllSlots returns the fixed daily slot grid in ascending order.
func AllSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, LastSlotHour-FirstSlotHour+1)
	for hour := FirstSlotHour; hour <= LastSlotHour; hour++ {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return slots
}

// IsBusinessDay returns true if date falls on Monday through Friday.
func IsBusinessDay(date time.Time) bool {
	weekday := date.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}
