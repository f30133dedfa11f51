package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func record(mnemonic, description string, price int64) ProcedureRecord {
	return ProcedureRecord{
		MnemonicCode: mnemonic,
		Description:  description,
		BasePrice:    decimal.NewFromInt(price),
	}
}

func TestCartState_AddLine_Deduplicates(t *testing.T) {
	hmg := record("HMG", "HEMOGRAMA COMPLETO", 25)

	cart := NewCartState().AddLine(hmg).AddLine(hmg)
	if cart.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", cart.Len())
	}
	if cart.Lines()[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", cart.Lines()[0].Quantity)
	}
}

func TestCartState_Toggle_RemovesSelected(t *testing.T) {
	hmg := record("HMG", "HEMOGRAMA COMPLETO", 25)
	tsh := record("TSH", "TSH ULTRA SENSIVEL", 40)

	cart := NewCartState().Toggle(hmg).Toggle(tsh)
	if cart.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", cart.Len())
	}

	cart = cart.Toggle(hmg)
	if cart.Len() != 1 {
		t.Fatalf("expected 1 line after toggle, got %d", cart.Len())
	}
	if cart.Contains(hmg.Identity()) {
		t.Error("expected hmg to be deselected")
	}
}

func TestCartState_SetQuantity_ClampsToOne(t *testing.T) {
	hmg := record("HMG", "HEMOGRAMA COMPLETO", 25)

	cart := NewCartState().AddLine(hmg).SetQuantity(hmg.Identity(), 0)
	if got := cart.Lines()[0].Quantity; got != 1 {
		t.Errorf("expected quantity clamped to 1, got %d", got)
	}

	cart = cart.SetQuantity(hmg.Identity(), 3)
	if got := cart.Lines()[0].Quantity; got != 3 {
		t.Errorf("expected quantity 3, got %d", got)
	}
}

func TestCartState_Immutability(t *testing.T) {
	hmg := record("HMG", "HEMOGRAMA COMPLETO", 25)
	empty := NewCartState()

	_ = empty.AddLine(hmg)
	if empty.Len() != 0 {
		t.Error("AddLine mutated the receiver")
	}

	one := empty.AddLine(hmg)
	_ = one.SetQuantity(hmg.Identity(), 5)
	if one.Lines()[0].Quantity != 1 {
		t.Error("SetQuantity mutated the receiver")
	}
}

func TestProcedureRecord_Identity(t *testing.T) {
	withMnemonic := record("HMG", "HEMOGRAMA COMPLETO", 25)
	withoutMnemonic := record("", "HEMOGRAMA COMPLETO", 25)

	if withMnemonic.Identity() == withoutMnemonic.Identity() {
		t.Error("identities should differ when one record has a mnemonic")
	}
	if withoutMnemonic.Identity() != "HEMOGRAMA COMPLETO" {
		t.Errorf("unexpected identity %q", withoutMnemonic.Identity())
	}
}

func TestProcedureRecord_MatchKey(t *testing.T) {
	withMnemonic := record("HMG", "HEMOGRAMA COMPLETO", 25)
	if withMnemonic.MatchKey() != "HMG - HEMOGRAMA COMPLETO" {
		t.Errorf("unexpected match key %q", withMnemonic.MatchKey())
	}

	withoutMnemonic := record("", "HEMOGRAMA COMPLETO", 25)
	if withoutMnemonic.MatchKey() != "HEMOGRAMA COMPLETO" {
		t.Errorf("unexpected match key %q", withoutMnemonic.MatchKey())
	}
}
