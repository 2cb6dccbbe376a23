package schema

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// Hint is one advisory note about a raw input. Hints never block a
// submission — the server is the authority on validity — they only give the
// user a chance to fix obvious typos before a round-trip.
type Hint struct {
	Param   string
	Message string
}

// Lint inspects the raw inputs against their schemas and returns advisory
// hints for values that look malformed.
func Lint(schemas []ParamSchema, inputs map[string]string) []Hint {
	var hints []Hint
	for _, p := range schemas {
		raw := strings.TrimSpace(inputs[p.Name])
		if raw == "" {
			continue
		}
		switch Classify(p).Kind {
		case KindPassThrough:
			switch {
			case p.TypeTag == "address" && !common.IsHexAddress(raw):
				hints = append(hints, Hint{p.Name, fmt.Sprintf("%q does not look like a 20-byte hex address", raw)})
			case IsNumeric(p.TypeTag):
				if _, ok := math.ParseBig256(raw); !ok {
					hints = append(hints, Hint{p.Name, fmt.Sprintf("%q is not a decimal or 0x-hex integer", raw)})
				}
			}
		case KindArray, KindStructure:
			if Coerce(p, raw).Degraded {
				hints = append(hints, Hint{p.Name, fmt.Sprintf("%s expects a JSON literal; %q will be sent as plain text", p.TypeTag, raw)})
			}
		}
	}
	return hints
}

// ParseValue validates a transaction value (wei) for payable calls. Accepts
// decimal or 0x-hex text and returns the canonical decimal spelling.
func ParseValue(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	n, ok := math.ParseBig256(raw)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("invalid value %q — expected a non-negative wei amount", raw)
	}
	return n.String(), nil
}
