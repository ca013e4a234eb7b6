package contract

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

type StandupService interface {
	TenantJoined(ctx context.Context, tenantID string) error
	TenantLeft(ctx context.Context, tenantID string) error

	GetStandup(ctx context.Context, tenantID string) (*entity.Standup, error)
	AddMember(ctx context.Context, tenantID, memberID string) error
	RemoveMember(ctx context.Context, tenantID, memberID string) error

	// SubmitResponse records the member's update and returns the tenant it was stored for.
	// tenantID may be empty when the member belongs to a single standup.
	SubmitResponse(ctx context.Context, memberID, tenantID, text string) (string, error)
	MemberResponses(ctx context.Context, memberID string) (map[string]string, error)
	ResetResponses(ctx context.Context, tenantID string) error
}
