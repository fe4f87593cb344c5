package quiz

import (
	"fmt"
	"strings"
)

// ParseBoolToken normalizes the boolean spellings that appear in upstream
// exports. The generator that produced the legacy scripts leaked bare
// identifiers such as False into contexts expecting a literal; ingestion
// rejects anything outside the recognised vocabulary instead of propagating
// the token.
func ParseBoolToken(token string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("quiz: invalid boolean token %q", token)
	}
}
