package service

import (
	"strconv"
	"strings"

	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/constants"
)

// IsTimeCompatible reports whether a requested demo time fits a slot window,
// with a tolerance of constants.SlotTimeBufferMinutes on each side.
//
// The check fails open: an empty or unparseable requested time, or an
// unparseable window, never blocks placement. Sales enter times free-form and
// formatting noise must not stop the head chef from scheduling. The same
// function gates both the drag affordance and the drop itself, so the UI
// never offers a cell the drop would then reject.
func IsTimeCompatible(requestedTime, slotWindow string) bool {
	requested, ok := parseClockMinutes(requestedTime)
	if !ok {
		return true
	}
	start, end, ok := parseSlotWindow(slotWindow)
	if !ok {
		return true
	}
	buffer := constants.SlotTimeBufferMinutes
	return requested >= start-buffer && requested <= end+buffer
}

// parseClockMinutes parses a 12-hour clock expression such as "10:00 AM" into
// minutes since midnight.
func parseClockMinutes(s string) (int, bool) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, false
	}

	var meridiem string
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
	default:
		return 0, false
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, meridiem))

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, false
	}

	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return hour*60 + minute, true
}

// parseSlotWindow splits a window like "09:00 AM - 11:00 AM" into start and
// end minutes since midnight.
func parseSlotWindow(window string) (start, end int, ok bool) {
	parts := strings.SplitN(window, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok = parseClockMinutes(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok = parseClockMinutes(parts[1])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}
