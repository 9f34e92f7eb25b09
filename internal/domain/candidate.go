package domain

type CandidateStatus string

const (
	CandidateAvailable CandidateStatus = "available"
	CandidateExcluded  CandidateStatus = "excluded"
)

// CandidateKey is the compound identity of a roster entry. The same base ID
// can appear in several forms within one roster, so ID alone is not unique.
type CandidateKey struct {
	ID   int
	Form string
}

type Candidate struct {
	ID          int
	Form        string
	DisplayName string
	ImageRef    string
	Status      CandidateStatus
}

func (c Candidate) Key() CandidateKey {
	return CandidateKey{ID: c.ID, Form: c.Form}
}

func (c Candidate) Available() bool {
	return c.Status == CandidateAvailable
}
