package discordchat

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

// api is the subset of *discordgo.Session used by the client.
type api interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

type Client struct {
	session api
}

func New(session *discordgo.Session) *Client {
	return &Client{session: session}
}

var _ contract.ChatClient = (*Client)(nil)

func (c *Client) ResolveDirect(ctx context.Context, userID string) (string, error) {
	channel, err := c.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to open dm with %s: %w", userID, err)
	}
	return channel.ID, nil
}

func (c *Client) SendText(ctx context.Context, channelID, text string) error {
	if _, err := c.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (c *Client) SendCard(ctx context.Context, channelID string, card entity.Card) error {
	if _, err := c.session.ChannelMessageSendEmbed(channelID, toEmbed(card), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}
	return nil
}

func (c *Client) CreateTextChannel(ctx context.Context, guildID, name, topic string) (string, error) {
	channel, err := c.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:  name,
		Type:  discordgo.ChannelTypeGuildText,
		Topic: topic,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create channel in guild %s: %w", guildID, err)
	}
	return channel.ID, nil
}

func toEmbed(card entity.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		URL:         card.URL,
		Description: card.Description,
		Color:       parseColor(card.Color),
	}
	if card.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: card.Footer}
	}
	if !card.Timestamp.IsZero() {
		embed.Timestamp = card.Timestamp.UTC().Format(time.RFC3339)
	}
	for _, f := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return embed
}

// parseColor turns "#rrggbb" into the integer Discord expects. Invalid
// values fall back to no color.
func parseColor(hex string) int {
	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}
