package experience

import (
	"sort"
	"strings"

	"github.com/temirov/las/internal/records"
)

const (
	auditorSeparatorConstant = ","
)

// RankedAuditor pairs a candidate with its experience score.
type RankedAuditor struct {
	Auditor string
	Score   float64
}

// FieldTally counts how often one raw auditor field occurs in the filtered history.
type FieldTally struct {
	AuditorField string
	Occurrences  int
}

// Contribution is the credit one named auditor earns from a tallied field.
type Contribution struct {
	Auditor string
	Credit  float64
}

// FilterByCategory keeps the records whose category contains the query, ignoring case.
func FilterByCategory(parsedRecords []records.ParsedRecord, category string) []records.ParsedRecord {
	normalizedQuery := strings.ToLower(strings.TrimSpace(category))
	matchingRecords := make([]records.ParsedRecord, 0, len(parsedRecords))
	for _, parsedRecord := range parsedRecords {
		if strings.Contains(strings.ToLower(parsedRecord.Category), normalizedQuery) {
			matchingRecords = append(matchingRecords, parsedRecord)
		}
	}
	return matchingRecords
}

// TallyAuditorFields counts occurrences per distinct trimmed auditor field, keeping first-seen order.
func TallyAuditorFields(parsedRecords []records.ParsedRecord) []FieldTally {
	tallyIndex := make(map[string]int)
	tallies := make([]FieldTally, 0)
	for _, parsedRecord := range parsedRecords {
		auditorField := strings.TrimSpace(parsedRecord.AuditorField)
		if len(auditorField) == 0 {
			continue
		}
		if existingIndex, exists := tallyIndex[auditorField]; exists {
			tallies[existingIndex].Occurrences++
			continue
		}
		tallyIndex[auditorField] = len(tallies)
		tallies = append(tallies, FieldTally{AuditorField: auditorField, Occurrences: 1})
	}
	return tallies
}

// SplitAuditorField separates a comma-separated field into trimmed, non-empty names. The first name is the lead.
func SplitAuditorField(auditorField string) []string {
	rawNames := strings.Split(auditorField, auditorSeparatorConstant)
	auditorNames := make([]string, 0, len(rawNames))
	for _, rawName := range rawNames {
		trimmedName := strings.TrimSpace(rawName)
		if len(trimmedName) == 0 {
			continue
		}
		auditorNames = append(auditorNames, trimmedName)
	}
	return auditorNames
}

// Contributions expands one tallied field into per-auditor credit. Each occurrence credits the lead with
// LeadCreditConstant and every co-auditor with CoAuditorCreditConstant; a single-name field credits only its lead.
func Contributions(tally FieldTally) []Contribution {
	auditorNames := SplitAuditorField(tally.AuditorField)
	contributions := make([]Contribution, 0, len(auditorNames))
	occurrences := float64(tally.Occurrences)
	for auditorPosition, auditorName := range auditorNames {
		credit := CoAuditorCreditConstant
		if auditorPosition == 0 {
			credit = LeadCreditConstant
		}
		contributions = append(contributions, Contribution{Auditor: auditorName, Credit: credit * occurrences})
	}
	return contributions
}

// Expand converts tallied raw fields into a table holding only individual auditors.
// Combined fields never appear in the result; their credit flows to the named individuals.
func Expand(tallies []FieldTally) *ScoreTable {
	scoreTable := NewScoreTable()
	for _, tally := range tallies {
		for _, contribution := range Contributions(tally) {
			scoreTable.Add(contribution.Auditor, contribution.Credit)
		}
	}
	return scoreTable
}

// ScoreCategory builds the expanded score table for every auditor with history in the category.
func ScoreCategory(parsedRecords []records.ParsedRecord, category string) *ScoreTable {
	return Expand(TallyAuditorFields(FilterByCategory(parsedRecords, category)))
}

// Rank scores the candidates against the category and orders them by descending score.
// Candidates without any matching history are omitted. Ties are broken by ascending auditor name.
func Rank(parsedRecords []records.ParsedRecord, category string, candidateAuditors []string) []RankedAuditor {
	scoreTable := ScoreCategory(parsedRecords, category)

	seenCandidates := make(map[string]struct{}, len(candidateAuditors))
	rankedAuditors := make([]RankedAuditor, 0, len(candidateAuditors))
	for _, candidateAuditor := range candidateAuditors {
		normalizedCandidate := strings.TrimSpace(candidateAuditor)
		if _, seen := seenCandidates[normalizedCandidate]; seen {
			continue
		}
		seenCandidates[normalizedCandidate] = struct{}{}

		score, exists := scoreTable.Score(normalizedCandidate)
		if !exists {
			continue
		}
		rankedAuditors = append(rankedAuditors, RankedAuditor{Auditor: normalizedCandidate, Score: score})
	}

	sort.SliceStable(rankedAuditors, func(leftIndex int, rightIndex int) bool {
		leftAuditor := rankedAuditors[leftIndex]
		rightAuditor := rankedAuditors[rightIndex]
		if leftAuditor.Score != rightAuditor.Score {
			return leftAuditor.Score > rightAuditor.Score
		}
		return leftAuditor.Auditor < rightAuditor.Auditor
	})

	return rankedAuditors
}
