package entities

// ExtractedExam is one exam name the AI read from a doctor's order.
// Matched carries the AI's suggested canonical name, empty when it had none.
type ExtractedExam struct {
	Name    string `json:"name"`
	Matched string `json:"matched,omitempty"`
}

// ExtractionResult is the parsed output of an order analysis. When the model
// response could not be parsed as JSON, Exams is empty and Raw carries the
// whole response text for the operator to read.
type ExtractionResult struct {
	Exams []ExtractedExam `json:"exams,omitempty"`
	Raw   string          `json:"raw,omitempty"`
}

// MatchStatus classifies a match attempt
type MatchStatus string

const (
	MatchStatusMatched   MatchStatus = "matched"
	MatchStatusUnmatched MatchStatus = "unmatched"
)

// MatchResult is the outcome of reconciling one extracted exam name against
// the canonical procedure list
type MatchResult struct {
	ExtractedName    string           `json:"extracted_name"`
	MatchedProcedure *ProcedureRecord `json:"matched_procedure,omitempty"`
	Status           MatchStatus      `json:"status"`
}
