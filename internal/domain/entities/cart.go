package entities

// CartLine is a selected procedure plus a quantity (always >= 1)
type CartLine struct {
	Procedure ProcedureRecord `json:"procedure"`
	Quantity  int             `json:"quantity"`
}

// CartState is an immutable selection of procedures. Every transition returns
// a new state; callers own the only mutable reference. At most one line exists
// per procedure identity.
type CartState struct {
	lines []CartLine
}

// NewCartState returns an empty cart
func NewCartState() CartState {
	return CartState{}
}

// Lines returns a copy of the cart lines in selection order
func (s CartState) Lines() []CartLine {
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of distinct lines
func (s CartState) Len() int {
	return len(s.lines)
}

// Contains reports whether a procedure with the given identity is selected
func (s CartState) Contains(identity string) bool {
	for _, line := range s.lines {
		if line.Procedure.Identity() == identity {
			return true
		}
	}
	return false
}

// AddLine returns a state with the procedure selected at quantity 1.
// Adding an already-selected procedure is a no-op.
func (s CartState) AddLine(p ProcedureRecord) CartState {
	if s.Contains(p.Identity()) {
		return s
	}
	lines := make([]CartLine, len(s.lines), len(s.lines)+1)
	copy(lines, s.lines)
	lines = append(lines, CartLine{Procedure: p, Quantity: 1})
	return CartState{lines: lines}
}

// RemoveLine returns a state without the line matching the identity
func (s CartState) RemoveLine(identity string) CartState {
	lines := make([]CartLine, 0, len(s.lines))
	for _, line := range s.lines {
		if line.Procedure.Identity() != identity {
			lines = append(lines, line)
		}
	}
	return CartState{lines: lines}
}

// Toggle selects the procedure, or deselects it when already present
func (s CartState) Toggle(p ProcedureRecord) CartState {
	if s.Contains(p.Identity()) {
		return s.RemoveLine(p.Identity())
	}
	return s.AddLine(p)
}

// SetQuantity returns a state with the line's quantity updated, clamped to 1.
// Unknown identities are left untouched.
func (s CartState) SetQuantity(identity string, quantity int) CartState {
	if quantity < 1 {
		quantity = 1
	}
	lines := make([]CartLine, len(s.lines))
	copy(lines, s.lines)
	for i := range lines {
		if lines[i].Procedure.Identity() == identity {
			lines[i].Quantity = quantity
		}
	}
	return CartState{lines: lines}
}
