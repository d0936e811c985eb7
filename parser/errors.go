package parser

import (
	"encoding/json"
	"fmt"

	"github.com/idlkit/webidl2/token"
)

// ParseError is the single failure value surfaced by Parse. Input
// holds up to five upcoming tokens rejoined with their trivia; Tokens
// is a shallow copy of the same token records.
type ParseError struct {
	Message string        `json:"message"`
	Line    int           `json:"line"`
	Input   string        `json:"input"`
	Tokens  []token.Token `json:"tokens"`
}

func (e *ParseError) Error() string {
	excerpt, err := json.Marshal(e.Input)
	if err != nil {
		excerpt = []byte(`""`)
	}
	records, err := json.MarshalIndent(e.Tokens, "", "    ")
	if err != nil {
		records = []byte("[]")
	}
	return fmt.Sprintf("%s, line %d (tokens: %s)\n%s", e.Message, e.Line, excerpt, records)
}
