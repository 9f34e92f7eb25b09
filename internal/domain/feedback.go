package domain

type FeedbackClass string

const (
	FeedbackAvailable FeedbackClass = "available"
	FeedbackExcluded  FeedbackClass = "excluded"
	FeedbackCorrect   FeedbackClass = "correct"
	FeedbackIncorrect FeedbackClass = "incorrect"
	FeedbackLost      FeedbackClass = "lost"
)

// ResolveFeedback classifies every roster entry for presentation. It is a
// pure function of the current state and the most recent pending action and
// must be recomputed on every state change, never cached.
//
// The pending candidate is matched on the compound (id, form) key; two forms
// of the same base id never share feedback. A lost phase always classifies
// the pending candidate as lost, since a losing guess is by definition an
// incorrect one.
func ResolveFeedback(state SessionState, pending *PendingAction) map[CandidateKey]FeedbackClass {
	feedback := make(map[CandidateKey]FeedbackClass, len(state.Roster))

	for _, candidate := range state.Roster {
		key := candidate.Key()

		if pending != nil && key == pending.Key {
			feedback[key] = classifyPending(state)
			continue
		}

		if candidate.Status == CandidateExcluded {
			feedback[key] = FeedbackExcluded
		} else {
			feedback[key] = FeedbackAvailable
		}
	}

	return feedback
}

func classifyPending(state SessionState) FeedbackClass {
	switch {
	case state.Phase == PhaseLost:
		return FeedbackLost
	case state.LastGuessValid:
		return FeedbackCorrect
	default:
		return FeedbackIncorrect
	}
}
