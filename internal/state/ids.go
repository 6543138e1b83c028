package state

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixPoint = "pt"
	PrefixLine  = "line"
	PrefixCurve = "curve"
	PrefixShape = "shape"
)

func newID(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

// ValidateID checks that id is a well formed identifier of the given kind.
func ValidateID(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
