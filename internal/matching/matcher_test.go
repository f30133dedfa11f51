package matching

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Erudhir101/Tabela-Particular/internal/domain/entities"
)

func record(mnemonic, description string) entities.ProcedureRecord {
	return entities.ProcedureRecord{
		MnemonicCode: mnemonic,
		Description:  description,
		BasePrice:    decimal.NewFromInt(10),
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Dosagem de Glicose ", "dosagem de glicose"},
		{"CORDÃO", "cordao"},
		{"HEMOGRAMA", "hemograma"},
		{"Ácido Úrico", "acido urico"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSignificantWords(t *testing.T) {
	got := SignificantWords("Dosagem de Ácido Úrico no Sangue")
	want := []string{"dosagem", "acido", "urico", "sangue"}
	if len(got) != len(want) {
		t.Fatalf("SignificantWords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMatch_SuggestionExactKey(t *testing.T) {
	records := []entities.ProcedureRecord{
		record("TSH", "TSH ULTRA SENSIVEL"),
		record("HMG", "HEMOGRAMA COMPLETO"),
	}
	exams := []entities.ExtractedExam{
		{Name: "hemograma", Matched: "HMG - HEMOGRAMA COMPLETO"},
	}

	results := Match(exams, records)
	if results[0].Status != entities.MatchStatusMatched {
		t.Fatal("expected a match from the extractor suggestion")
	}
	if results[0].MatchedProcedure.MnemonicCode != "HMG" {
		t.Errorf("matched %q, want HMG", results[0].MatchedProcedure.MnemonicCode)
	}
}

func TestMatch_SignificantWordFallback(t *testing.T) {
	records := []entities.ProcedureRecord{
		record("HDL", "COLESTEROL HDL"),
		record("COL", "COLESTEROL TOTAL E FRACOES"),
	}
	exams := []entities.ExtractedExam{
		{Name: "colesterol total"},
	}

	results := Match(exams, records)
	if results[0].Status != entities.MatchStatusMatched {
		t.Fatal("expected a word-based match")
	}
	// "total" is absent from "COLESTEROL HDL", so the second record wins even
	// though the first comes earlier in sheet order.
	if results[0].MatchedProcedure.MnemonicCode != "COL" {
		t.Errorf("matched %q, want COL", results[0].MatchedProcedure.MnemonicCode)
	}
}

func TestMatch_FirstCandidateInSheetOrder(t *testing.T) {
	records := []entities.ProcedureRecord{
		record("GLI", "GLICOSE"),
		record("GLIP", "GLICOSE POS PRANDIAL"),
	}
	results := Match([]entities.ExtractedExam{{Name: "glicose"}}, records)
	if results[0].MatchedProcedure.MnemonicCode != "GLI" {
		t.Errorf("matched %q, want first candidate GLI", results[0].MatchedProcedure.MnemonicCode)
	}
}

func TestMatch_MnemonicWholeWord(t *testing.T) {
	records := []entities.ProcedureRecord{
		record("TGO", "TRANSAMINASE OXALACETICA"),
	}

	results := Match([]entities.ExtractedExam{{Name: "dosagem TGO soro"}}, records)
	if results[0].Status != entities.MatchStatusMatched {
		t.Error("expected whole-word mnemonic hit")
	}

	// Mnemonic buried inside another word is not a hit
	results = Match([]entities.ExtractedExam{{Name: "eletgoencefalograma"}}, records)
	if results[0].Status != entities.MatchStatusUnmatched {
		t.Error("substring mnemonic should not match")
	}
}

func TestMatch_AccentInsensitive(t *testing.T) {
	records := []entities.ProcedureRecord{
		record("AUR", "ACIDO URICO"),
	}
	results := Match([]entities.ExtractedExam{{Name: "Ácido Úrico"}}, records)
	if results[0].Status != entities.MatchStatusMatched {
		t.Error("expected accent-insensitive match")
	}
}

func TestMatch_Unmatched(t *testing.T) {
	records := []entities.ProcedureRecord{
		record("HMG", "HEMOGRAMA COMPLETO"),
	}
	results := Match([]entities.ExtractedExam{{Name: "ressonancia magnetica"}}, records)
	if results[0].Status != entities.MatchStatusUnmatched {
		t.Error("expected unmatched result")
	}
	if results[0].MatchedProcedure != nil {
		t.Error("unmatched result must carry no procedure")
	}
	if results[0].ExtractedName != "ressonancia magnetica" {
		t.Errorf("ExtractedName = %q", results[0].ExtractedName)
	}
}

func TestMatch_RowReuseAcrossExtractions(t *testing.T) {
	records := []entities.ProcedureRecord{
		record("HMG", "HEMOGRAMA COMPLETO"),
	}
	exams := []entities.ExtractedExam{
		{Name: "hemograma"},
		{Name: "hemograma completo"},
	}
	results := Match(exams, records)
	for i, r := range results {
		if r.Status != entities.MatchStatusMatched {
			t.Errorf("extraction %d should match independently", i)
		}
	}
}
