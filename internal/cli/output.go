package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ffcommunity/banwatch/internal/model"
)

// Output renders check results as text or JSON
type Output struct {
	asJSON bool
}

// NewOutput creates a new Output formatter
func NewOutput(asJSON bool) *Output {
	return &Output{asJSON: asJSON}
}

// PrintResult writes one resolved status to stdout
func (o *Output) PrintResult(record *model.PlayerStatus, payload *model.EmbedPayload) {
	if o.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(record)
		return
	}

	fmt.Println(payload.Title)
	if payload.Description != "" {
		fmt.Println(payload.Description)
	}
	for _, field := range payload.Fields {
		fmt.Printf("%s: %s\n", field.Label, field.Value)
	}
	if payload.Footer != "" {
		fmt.Println(payload.Footer)
	}
}
