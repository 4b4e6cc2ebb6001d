package search

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/symsearch/antideriv/pkg/ast"
	"github.com/symsearch/antideriv/pkg/postfix"
)

// Report is the outcome of one Search call, with the infix rendering filled
// in once a winner is found. It is the unit the CLI serialises to text or
// JSON.
type Report struct {
	RawPostfix string `json:"raw_postfix"`
	Infix      string `json:"infix,omitempty"`
	Attempts   uint64 `json:"attempts"`
	Found      bool   `json:"found"`
}

// NewReport renders raw into infix notation (when non-empty) and packages
// the result alongside the attempt count.
func NewReport(raw postfix.Program, attempts uint64) (Report, error) {
	r := Report{RawPostfix: string(raw), Attempts: attempts, Found: raw != ""}
	if !r.Found {
		return r, nil
	}
	infix, err := ast.InfixFromPostfix(string(raw))
	if err != nil {
		return Report{}, fmt.Errorf("search: rendering winning postfix %q: %w", raw, err)
	}
	r.Infix = infix
	return r, nil
}

// WriteText writes a short human-readable summary.
func WriteText(w io.Writer, r Report) error {
	if !r.Found {
		_, err := fmt.Fprintf(w, "no antiderivative found after %d attempts\n", r.Attempts)
		return err
	}
	_, err := fmt.Fprintf(w, "found after %d attempts\npostfix: %s\ninfix:   %s\n", r.Attempts, r.RawPostfix, r.Infix)
	return err
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
