package entity

import "time"

// Standup is the per-tenant check-in record. ID is the tenant id itself
// (Discord guild id or Slack team id).
type Standup struct {
	ID        string
	ChannelID string
	Members   []string
	Responses map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStandup returns an empty record for a freshly joined tenant.
func NewStandup(tenantID, channelID string) *Standup {
	return &Standup{
		ID:        tenantID,
		ChannelID: channelID,
		Members:   []string{},
		Responses: map[string]string{},
	}
}

func (s *Standup) HasMember(memberID string) bool {
	for _, id := range s.Members {
		if id == memberID {
			return true
		}
	}
	return false
}

func (s *Standup) HasResponded(memberID string) bool {
	_, ok := s.Responses[memberID]
	return ok
}
