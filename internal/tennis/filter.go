package tennis

// matchesTeam reports whether every non-empty filter name is present in the
// team roster. A side with no active filters is automatically satisfied.
func matchesTeam(teamA, teamB string, firstFilter, secondFilter string) bool {
	for _, name := range []string{firstFilter, secondFilter} {
		if name == "" {
			continue
		}
		if name != teamA && name != teamB {
			return false
		}
	}
	return true
}

// matchRecord tests a record against the filters, normal orientation first.
// The normal match short-circuits the flipped check, so a record can match
// only once.
func matchRecord(r Record, f Filters) (flipped, ok bool) {
	if matchesTeam(r.Player1, r.Player2, f.Player1, f.Player2) &&
		matchesTeam(r.Player3, r.Player4, f.Player3, f.Player4) {
		return false, true
	}
	if matchesTeam(r.Player3, r.Player4, f.Player1, f.Player2) &&
		matchesTeam(r.Player1, r.Player2, f.Player3, f.Player4) {
		return true, true
	}
	return false, false
}
