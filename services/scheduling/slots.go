package scheduling

// GenerateSlots cuts a working window into candidate session start times.
// Starting at startTime, a slot is emitted whenever the full session still
// fits before endTime, then the cursor advances by session plus break. The
// output is strictly increasing and empty when the window is shorter than one
// session. The trailing break never has to fit, so back-to-back windows keep
// their last slot.
func GenerateSlots(startTime, endTime string, sessionMinutes, breakMinutes int) ([]string, error) {
	if sessionMinutes <= 0 {
		return nil, newError(CodeInvalidInput, "session duration must be positive")
	}
	if breakMinutes < 0 {
		return nil, newError(CodeInvalidInput, "break duration must not be negative")
	}

	start, err := parseClock(startTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, err
	}

	var slots []string
	for cur := start; cur+sessionMinutes <= end; cur += sessionMinutes + breakMinutes {
		slots = append(slots, formatClock(cur))
	}
	return slots, nil
}
