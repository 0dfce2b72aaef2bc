package fields

import (
	"path/filepath"
	"strings"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/types"
)

// Parse splits the filename (extension stripped) on "-" and matches
// each segment against the rule at its position. It is a pure function
// over its inputs.
//
// Fewer segments than rules yields INSUFFICIENT_FIELDS, which callers
// treat as "file does not follow the naming convention" rather than a
// hard failure. A segment outside a rule's allowed set yields
// INVALID_FIELD_VALUE. Segments beyond the declared rules are ignored.
// Values are stored trimmed but in their original case.
func (rs Rules) Parse(filename string) (types.Record, error) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	segments := strings.Split(stem, "-")

	if len(segments) < len(rs) {
		return nil, errors.Newf(errors.ErrInsufficientFields,
			"filename %q has %d of %d required fields", filename, len(segments), len(rs)).
			WithDetail("filename", filename).
			WithDetail("format", rs.Format())
	}

	record := make(types.Record, len(rs))
	for i, rule := range rs {
		value := strings.TrimSpace(segments[i])
		if !rule.Accepts(value) {
			return nil, errors.Newf(errors.ErrInvalidFieldValue,
				"wrong value %q for field %s in position %d, should be one of %v",
				value, strings.ToUpper(rule.Name), i+1, rule.Allowed).
				WithDetail("field", rule.Name).
				WithDetail("position", i+1).
				WithDetail("value", value)
		}
		record[rule.Name] = value
	}

	return record, nil
}
