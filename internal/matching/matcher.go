package matching

import (
	"strings"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
)

// Match reconciles extracted exam names against the price list in two phases.
// Phase one trusts the extractor: when it already proposed a row in the
// "MNEM - DESC" form, an exact normalized comparison wins. Phase two falls
// back to heuristics over the records in sheet order: a mnemonic hit, or
// every significant word of the extracted name appearing in the description.
//
// Each extraction is matched independently. Two extracted lines may resolve
// to the same row; the caller decides whether duplicates collapse into a
// single cart line.
func Match(exams []entities.ExtractedExam, records []entities.ProcedureRecord) []entities.MatchResult {
	results := make([]entities.MatchResult, 0, len(exams))
	for _, exam := range exams {
		results = append(results, matchOne(exam, records))
	}
	return results
}

func matchOne(exam entities.ExtractedExam, records []entities.ProcedureRecord) entities.MatchResult {
	result := entities.MatchResult{
		ExtractedName: exam.Name,
		Status:        entities.MatchStatusUnmatched,
	}

	if suggestion := Normalize(exam.Matched); suggestion != "" {
		for i := range records {
			if Normalize(records[i].MatchKey()) == suggestion {
				result.MatchedProcedure = &records[i]
				result.Status = entities.MatchStatusMatched
				return result
			}
		}
	}

	name := Normalize(exam.Name)
	if name == "" {
		return result
	}
	words := SignificantWords(exam.Name)

	for i := range records {
		if candidateMatches(name, words, records[i]) {
			result.MatchedProcedure = &records[i]
			result.Status = entities.MatchStatusMatched
			return result
		}
	}
	return result
}

func candidateMatches(name string, words []string, record entities.ProcedureRecord) bool {
	if mnemonic := Normalize(record.MnemonicCode); mnemonic != "" {
		if mnemonic == name || containsWord(name, mnemonic) {
			return true
		}
	}
	if len(words) == 0 {
		return false
	}
	description := Normalize(record.Description)
	for _, w := range words {
		if !strings.Contains(description, w) {
			return false
		}
	}
	return true
}

// containsWord reports whether word appears as a whole whitespace-delimited
// token of s. A substring hit is not enough: the mnemonic "TGO" must not
// match inside "ELETROCARDIOGRAMA".
func containsWord(s, word string) bool {
	for _, token := range strings.Fields(s) {
		if token == word {
			return true
		}
	}
	return false
}
