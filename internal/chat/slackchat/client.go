package slackchat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// api is the subset of *slack.Client used by the client.
type api interface {
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	CreateConversationContext(ctx context.Context, params slack.CreateConversationParams) (*slack.Channel, error)
	SetTopicOfConversationContext(ctx context.Context, channelID, topic string) (*slack.Channel, error)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string, error)
}

type Client struct {
	api api
}

func New(client *slack.Client) *Client {
	return &Client{api: client}
}

var _ contract.ChatClient = (*Client)(nil)

func (c *Client) ResolveDirect(ctx context.Context, userID string) (string, error) {
	channel, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{userID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to open dm with %s: %w", userID, err)
	}
	return channel.ID, nil
}

func (c *Client) SendText(ctx context.Context, channelID, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	return nil
}

func (c *Client) SendCard(ctx context.Context, channelID string, card entity.Card) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(card.Title, false),
		slack.MsgOptionAttachments(ToAttachment(card)),
	)
	if err != nil {
		return fmt.Errorf("failed to post card: %w", err)
	}
	return nil
}

// CreateTextChannel creates a public channel in the workspace. When the
// name is already taken the existing channel is reused.
func (c *Client) CreateTextChannel(ctx context.Context, teamID, name, topic string) (string, error) {
	channel, err := c.api.CreateConversationContext(ctx, slack.CreateConversationParams{
		ChannelName: name,
		TeamID:      teamID,
	})
	if isSlackError(err, "name_taken") {
		return c.findChannel(ctx, teamID, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create channel in team %s: %w", teamID, err)
	}

	if _, err := c.api.SetTopicOfConversationContext(ctx, channel.ID, topic); err != nil {
		return "", fmt.Errorf("failed to set channel topic: %w", err)
	}

	return channel.ID, nil
}

func (c *Client) findChannel(ctx context.Context, teamID, name string) (string, error) {
	params := &slack.GetConversationsParameters{
		Types:           []string{"public_channel"},
		ExcludeArchived: true,
		Limit:           200,
		TeamID:          teamID,
	}
	for {
		channels, cursor, err := c.api.GetConversationsContext(ctx, params)
		if err != nil {
			return "", fmt.Errorf("failed to list channels: %w", err)
		}
		for _, ch := range channels {
			if ch.Name == name {
				return ch.ID, nil
			}
		}
		if cursor == "" {
			return "", fmt.Errorf("channel %s exists but is not visible to the bot", name)
		}
		params.Cursor = cursor
	}
}

// ToAttachment renders a card as a legacy attachment, which keeps the
// color bar and fields Slack blocks do not have.
func ToAttachment(card entity.Card) slack.Attachment {
	att := slack.Attachment{
		Color:     card.Color,
		Title:     card.Title,
		TitleLink: card.URL,
		Text:      card.Description,
		Footer:    card.Footer,
	}
	if !card.Timestamp.IsZero() {
		att.Ts = json.Number(strconv.FormatInt(card.Timestamp.Unix(), 10))
	}
	for _, f := range card.Fields {
		att.Fields = append(att.Fields, slack.AttachmentField{
			Title: f.Name,
			Value: f.Value,
			Short: f.Inline,
		})
	}
	return att
}

func isSlackError(err error, code string) bool {
	if err == nil {
		return false
	}
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err == code
	}
	return err.Error() == code
}
