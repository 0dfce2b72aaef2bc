package fields

import (
	"fmt"
	"strings"

	"github.com/autofiler/autofiler/pkg/errors"
)

// FieldRule describes one dash-delimited filename component. Position
// in the rule sequence maps to position in the split filename stem.
// A non-empty Allowed list is a closed, case-insensitive value set.
type FieldRule struct {
	Name    string   `koanf:"name" yaml:"name" toml:"name"`
	Allowed []string `koanf:"allowed" yaml:"allowed" toml:"allowed"`
}

// Accepts reports whether the trimmed segment satisfies this rule
func (r FieldRule) Accepts(value string) bool {
	if len(r.Allowed) == 0 {
		return true
	}
	upper := strings.ToUpper(value)
	for _, allowed := range r.Allowed {
		if strings.ToUpper(allowed) == upper {
			return true
		}
	}
	return false
}

// Rules is the ordered set of field rules a filename must satisfy
type Rules []FieldRule

// Validate checks the rule set is usable: at least one rule, no empty
// or duplicate names
func (rs Rules) Validate() error {
	if len(rs) == 0 {
		return errors.New(errors.ErrConfigValid, "fields config is empty")
	}
	seen := make(map[string]bool, len(rs))
	for i, rule := range rs {
		name := strings.TrimSpace(rule.Name)
		if name == "" {
			return errors.Newf(errors.ErrConfigValid, "field in position %d has no name", i+1)
		}
		if seen[name] {
			return errors.Newf(errors.ErrConfigValid, "duplicate field name %q", name)
		}
		seen[name] = true
	}
	return nil
}

// Names returns the field names in declaration order
func (rs Rules) Names() []string {
	names := make([]string, len(rs))
	for i, rule := range rs {
		names[i] = rule.Name
	}
	return names
}

// Has reports whether a field with the given name is declared
func (rs Rules) Has(name string) bool {
	for _, rule := range rs {
		if rule.Name == name {
			return true
		}
	}
	return false
}

// Format renders the expected filename shape, e.g. "[client] - [year]",
// used when reporting skipped files
func (rs Rules) Format() string {
	parts := make([]string, len(rs))
	for i, rule := range rs {
		parts[i] = "[" + rule.Name + "]"
	}
	return strings.Join(parts, " - ")
}

func (rs Rules) String() string {
	return fmt.Sprintf("Rules(%s)", strings.Join(rs.Names(), ", "))
}
