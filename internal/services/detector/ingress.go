package detector

import "github.com/minhvu-dev/ephemeris/internal/domain"

// IngressDetector emits sign-transition events between consecutive
// snapshots. It is a pure one-step finite difference: the previous snapshot
// is an explicit parameter, not hidden state.
type IngressDetector struct{}

// Detect compares sign indices per body. Bodies missing from either
// snapshot are skipped, so upstream omissions suppress events instead of
// corrupting them. A nil previous snapshot (first sample of a run) yields
// no events.
func (IngressDetector) Detect(current, previous *domain.Snapshot) []domain.IngressEvent {
	if previous == nil {
		return nil
	}

	var events []domain.IngressEvent
	for _, planet := range current.Planets() {
		cur, _ := current.Get(planet)
		prev, ok := previous.Get(planet)
		if !ok || cur.SignIndex == prev.SignIndex {
			continue
		}

		events = append(events, domain.IngressEvent{
			Event:     "Ingress",
			Planet:    planet,
			FromSign:  prev.Sign,
			ToSign:    cur.Sign,
			Degree:    cur.Degree,
			Longitude: domain.Round(cur.Longitude, 6),
		})
	}

	return events
}
