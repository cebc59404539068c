package gamification

// Evaluate determines which not-yet-unlocked achievements now qualify.
// It is a total, pure function: it performs no writes and raises no
// errors. All qualifying entries are returned together along with the
// sum of their point values. Callers persist the unlock records and
// apply the XP (atomically per achievement, see Engine.RecordActivity).
func Evaluate(counters Counters, catalog []Definition, alreadyUnlocked map[uint]bool) ([]Definition, int) {
	var newly []Definition
	gained := 0

	for _, def := range catalog {
		if alreadyUnlocked[def.ID] {
			continue
		}
		if !qualifies(counters, def) {
			continue
		}
		newly = append(newly, def)
		gained += def.Points
	}

	return newly, gained
}

// qualifies reports whether every listed threshold is met. Entries with
// no conditions are manually granted and never auto-qualify.
func qualifies(counters Counters, def Definition) bool {
	if len(def.Conditions) == 0 {
		return false
	}
	for key, threshold := range def.Conditions {
		value, ok := counters.Value(key)
		if !ok || value < threshold {
			return false
		}
	}
	return true
}
