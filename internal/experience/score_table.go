package experience

import "sort"

const (
	// LeadCreditConstant is awarded to the first auditor of a record.
	LeadCreditConstant = 1.0
	// CoAuditorCreditConstant is awarded to every subsequent auditor of a record.
	CoAuditorCreditConstant = 0.5
)

// ScoreTable accumulates experience scores keyed by auditor name for a single ranking run.
type ScoreTable struct {
	scores map[string]float64
}

// NewScoreTable constructs an empty table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{scores: make(map[string]float64)}
}

// Add inserts the auditor with a zero score when absent and then increments the score.
func (table *ScoreTable) Add(auditorName string, credit float64) {
	if _, exists := table.scores[auditorName]; !exists {
		table.scores[auditorName] = 0
	}
	table.scores[auditorName] += credit
}

// Score returns the accumulated score and whether the auditor has an entry.
func (table *ScoreTable) Score(auditorName string) (float64, bool) {
	score, exists := table.scores[auditorName]
	return score, exists
}

// Len reports how many auditors have an entry.
func (table *ScoreTable) Len() int {
	return len(table.scores)
}

// Auditors lists the auditors with an entry in ascending order.
func (table *ScoreTable) Auditors() []string {
	auditorNames := make([]string, 0, len(table.scores))
	for auditorName := range table.scores {
		auditorNames = append(auditorNames, auditorName)
	}
	sort.Strings(auditorNames)
	return auditorNames
}
