package control

import (
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"
)

// InitArg is the module-init argument: size and bucket both default to
// zero, which Init treats as "use the documented default".
type InitArg struct {
	Size   uint64 `json:"size,omitempty"`
	Bucket uint64 `json:"bucket,omitempty"`
}

// ParseInitArg parses a JSONC (JSON with comments and trailing commas)
// module-init argument document, following the same
// hujson.Standardize-then-json.Unmarshal pipeline used elsewhere in
// this codebase for config files.
func ParseInitArg(data []byte) (InitArg, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return InitArg{}, fmt.Errorf("%w: invalid JSONC: %v", ErrMalformedCommand, err)
	}

	var arg InitArg
	if err := json.Unmarshal(standardized, &arg); err != nil {
		return InitArg{}, fmt.Errorf("%w: invalid init argument: %v", ErrMalformedCommand, err)
	}

	return arg, nil
}
