package engine

// SessionOutcome classifies how a session ended.
type SessionOutcome int

const (
	OutcomeInProgress SessionOutcome = iota
	OutcomeWon
	OutcomeLost
)

func (o SessionOutcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeInProgress:
		return "in_progress"
	default:
		return "unknown"
	}
}

type SessionOutcomeReason struct {
	Outcome      SessionOutcome
	Damage       float64
	Score        int
	Extinguished int
	WinTarget    int
	ActiveFires  int
	Elapsed      float64
	Description  string
}

// DetermineOutcome grades a snapshot. Won sessions are graded by how much of
// the structure survived, lost sessions by how close the player came.
func DetermineOutcome(sn Snapshot) SessionOutcomeReason {
	r := SessionOutcomeReason{
		Damage:       sn.Damage,
		Score:        sn.Score,
		Extinguished: sn.Extinguished,
		WinTarget:    sn.WinTarget,
		ActiveFires:  len(sn.Fires),
		Elapsed:      sn.Elapsed,
	}

	switch sn.State {
	case StateWon:
		r.Outcome = OutcomeWon
		switch sn.Condition {
		case ConditionIntact:
			r.Description = "won_clean"
		case ConditionScorched:
			r.Description = "won_scorched"
		case ConditionBurning:
			r.Description = "won_burning"
		default:
			r.Description = "won_narrowly"
		}
	case StateLost:
		r.Outcome = OutcomeLost
		remaining := sn.WinTarget - sn.Extinguished
		switch {
		case remaining <= 1:
			r.Description = "lost_one_short"
		case r.ActiveFires >= 5:
			r.Description = "lost_overwhelmed"
		case sn.Extinguished == 0:
			r.Description = "lost_no_response"
		default:
			r.Description = "lost_burned_down"
		}
	default:
		r.Outcome = OutcomeInProgress
		r.Description = "in_progress_" + sn.Condition.String()
	}
	return r
}
