package normalize

import "strings"

var affirmativeTokens = map[string]struct{}{
	"yes": {}, "y": {}, "true": {}, "1": {}, "✓": {}, "✔": {}, "x": {},
}

var negativeTokens = map[string]struct{}{
	"no": {}, "n": {}, "false": {}, "0": {},
}

// Boolean maps an enumerated set of affirmative/negative/checkmark tokens to
// a boolean. Unknown tokens yield nil, not false.
func Boolean(value string) *bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if _, ok := affirmativeTokens[v]; ok {
		b := true
		return &b
	}
	if _, ok := negativeTokens[v]; ok {
		b := false
		return &b
	}
	return nil
}
