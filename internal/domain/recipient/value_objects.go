package recipient

import "strings"

const MaxNameLength = 200

// IntentionName is the free-text label of the bouquet's intention or person.
type IntentionName struct {
	value string
}

func NewIntentionName(s string) (IntentionName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return IntentionName{}, ErrEmptyName
	}
	if len(t) > MaxNameLength {
		return IntentionName{}, ErrNameTooLong
	}
	return IntentionName{value: t}, nil
}

func (n IntentionName) String() string { return n.value }
