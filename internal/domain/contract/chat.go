package contract

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

// ChatClient is the outbound side of the chat platform (Discord or Slack).
type ChatClient interface {
	// ResolveDirect returns the id of a direct-message channel with the user.
	ResolveDirect(ctx context.Context, userID string) (string, error)

	SendText(ctx context.Context, channelID, text string) error
	SendCard(ctx context.Context, channelID string, card entity.Card) error

	// CreateTextChannel provisions a text channel in the tenant and returns its id.
	CreateTextChannel(ctx context.Context, tenantID, name, topic string) (string, error)
}
