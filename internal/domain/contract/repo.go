package contract

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Standup() StandupRepo
}

// StandupRepo defines the contract for the standup record store.
// Lookups return nil, nil when the record does not exist.
type StandupRepo interface {
	Create(ctx context.Context, standup *entity.Standup) error
	GetByID(ctx context.Context, id string) (*entity.Standup, error)
	ListIDs(ctx context.Context) ([]string, error)
	FindByMember(ctx context.Context, memberID string) ([]*entity.Standup, error)
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, id, memberID string) error
	RemoveMember(ctx context.Context, id, memberID string) (bool, error)

	SetResponse(ctx context.Context, id, memberID, response string) error
	DeleteResponse(ctx context.Context, id, memberID string) error
	ClearResponses(ctx context.Context, id string) error
}
