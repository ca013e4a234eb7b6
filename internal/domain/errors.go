package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStandupNotFound = errors.New("standup not found")
	ErrMemberExists    = errors.New("member is already in the standup")
	ErrMemberNotFound  = errors.New("member is not in the standup")
	ErrNotMember       = errors.New("not a member of any standup")
)

// AmbiguousStandupError is returned when a member belongs to several
// standups and did not say which one a reply is for.
type AmbiguousStandupError struct {
	TenantIDs []string
}

func (e *AmbiguousStandupError) Error() string {
	return fmt.Sprintf("member belongs to %d standups: %s", len(e.TenantIDs), strings.Join(e.TenantIDs, ", "))
}
