package models

// MatchRequest is the payload for the coach-match endpoint
type MatchRequest struct {
	Query string `json:"query"`
}

// CoachMatch pairs a coach from the candidate set with a model-assigned score
type CoachMatch struct {
	CoachID     string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Score       int      `json:"score"`
}

// MatchResponse is returned by the coach-match endpoint
type MatchResponse struct {
	Explanation string       `json:"explanation"`
	Matches     []CoachMatch `json:"matches"`
}

// FallbackExplanation is the fixed explanation returned when the
// language-model call or its parsing fails
const FallbackExplanation = "These coaches were selected based on their specialties and your request."
