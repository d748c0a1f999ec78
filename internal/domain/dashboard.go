package domain

// Dashboard is the read-only aggregate snapshot: mutual matches,
// per-profile likes keyed by profile label, and rejected names. Fetched
// on demand, never mutated client-side.
type Dashboard struct {
	Matches      []Name
	PerUserLikes map[string][]Name
	Rejected     []Name
}

// Empty reports whether the snapshot has nothing to show
func (d *Dashboard) Empty() bool {
	if len(d.Matches) > 0 || len(d.Rejected) > 0 {
		return false
	}
	for _, likes := range d.PerUserLikes {
		if len(likes) > 0 {
			return false
		}
	}
	return true
}
