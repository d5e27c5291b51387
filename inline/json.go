package inline

import (
	"encoding/json"
	"io"
)

// Output is the document written for every JSON operation.
type Output struct {
	Source    string    `json:"source"`
	Operation Operation `json:"operation" jsonschema:"enum=popular,enum=latest,enum=search,enum=manga,enum=chapters,enum=pages"`
	Query     string    `json:"query,omitempty"`
	Result    any       `json:"result"`
}

func writeJson(out io.Writer, output *Output, pretty bool) error {
	encoder := json.NewEncoder(out)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(output)
}
