package render

import "fmt"

// Feature names reported in UnsupportedFeatureError.
const (
	FeaturePagedQueries    = "paged queries"
	FeatureUnorderedWindow = "OFFSET/FETCH without ORDER BY"
)

// UnsupportedFeatureError reports a row window the dialect cannot express.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	msg := fmt.Sprintf("%s does not support %s", e.Dialect, e.Feature)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// NewUnsupportedFeatureError creates an UnsupportedFeatureError with an optional hint.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
