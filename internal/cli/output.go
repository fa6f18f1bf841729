package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/gamestats/internal/console"
	"github.com/mcoot/gamestats/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RegisterResult:
		console.WriteRegistered(o.w, v.Player.Name, v.password)
	case DeleteResult:
		fmt.Fprintln(o.w, "Document deleted!")
	case RecordResult:
		fmt.Fprintf(o.w, "Recorded %s for %s\n", v.Outcome, v.Name)
	case *model.Leaderboard:
		console.WriteLeaderboard(o.w, v)
	case []*model.Leaderboard:
		for i, board := range v {
			if i > 0 {
				fmt.Fprintln(o.w, "---")
			}
			console.WriteLeaderboard(o.w, board)
		}
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RegisterResult is printed after an account is created
type RegisterResult struct {
	Player *model.Player `json:"player"`

	// password echoes the submitted value in text output only
	password string
}

// DeleteResult is printed after accounts are removed
type DeleteResult struct {
	Name    string `json:"name"`
	Deleted int64  `json:"deleted"`
}

// RecordResult is printed after an outcome is recorded
type RecordResult struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Matched int64  `json:"matched"`
}
