package offering

import (
	"strings"
	"time"
)

// Type is one of the five fixed categories of spiritual act. The set is
// closed and shared with every client; anything else is rejected before
// persistence.
type Type string

const (
	TypeEucaristia Type = "eucaristia"
	TypeRosario    Type = "rosario"
	TypeAyuno      Type = "ayuno"
	TypeHoraSanta  Type = "horaSanta"
	TypeOtro       Type = "otro"
)

func AllTypes() []Type {
	return []Type{TypeEucaristia, TypeRosario, TypeAyuno, TypeHoraSanta, TypeOtro}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeEucaristia, TypeRosario, TypeAyuno, TypeHoraSanta, TypeOtro:
		return t, nil
	}
	return "", ErrInvalidType
}

func (t Type) String() string { return string(t) }

const MaxUserNameLength = 100

// ContributorName identifies who made the offering.
type ContributorName struct {
	value string
}

func NewContributorName(s string) (ContributorName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ContributorName{}, ErrEmptyUserName
	}
	if len(t) > MaxUserNameLength {
		return ContributorName{}, ErrUserNameTooLong
	}
	return ContributorName{value: t}, nil
}

func (n ContributorName) String() string { return n.value }

// ParseOfferedAt parses the client-supplied timestamp. It is the feed
// ordering key, not the insertion time, so it is kept exactly as sent.
func ParseOfferedAt(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidTimestamp
	}
	return ts, nil
}
