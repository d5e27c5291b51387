package shinigami

import (
	"encoding/json"

	"github.com/samber/lo"
)

// payload decodes raw JSON the same way the upstream client does.
func payload(raw string) any {
	var v any
	lo.Must0(json.Unmarshal([]byte(raw), &v))
	return v
}
