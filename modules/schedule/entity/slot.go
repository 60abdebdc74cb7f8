package entity

// TimeSlots is the fixed, ordered set of named demo windows. Slots are
// process-wide constants; they are not created or destroyed at runtime.
var TimeSlots = []string{
	"09:00 AM - 11:00 AM",
	"11:00 AM - 01:00 PM",
	"01:00 PM - 03:00 PM",
	"03:00 PM - 05:00 PM",
	"05:00 PM - 07:00 PM",
}

// ValidSlot reports whether slot is one of the configured windows.
func ValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
