package filters

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// ParseStringFilter creates a case-insensitive matcher for one filter entry.
// Entries with * are globs that must match the whole value, others match any substring.
func ParseStringFilter(rule string) (func(string) bool, error) {
	rule = strings.ToLower(strings.TrimSpace(rule))

	if rule == "" {
		return func(s string) bool {
			return true
		}, nil

	} else if strings.Contains(rule, "*") {
		g, err := glob.Compile(rule)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid area filter: %v", rule)
		}

		return func(s string) bool {
			return g.Match(strings.ToLower(s))
		}, nil

	} else {
		return func(s string) bool {
			return strings.Contains(strings.ToLower(s), rule)
		}, nil
	}
}

func isAll(values []string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), "all") {
			return true
		}
	}

	return false
}
