package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"go.uber.org/zap"
)

const discordEventTimeout = 30 * time.Second

type DiscordHandler struct {
	commands *CommandHandler
	standup  contract.StandupService
	chat     contract.ChatClient
	log      *zap.Logger
}

func NewDiscordHandler(standup contract.StandupService, chat contract.ChatClient, log *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		commands: NewCommandHandler(standup, domain.DiscordPrefix, true, log),
		standup:  standup,
		chat:     chat,
		log:      log,
	}
}

// Register adds the gateway event handlers to the session.
func (h *DiscordHandler) Register(s *discordgo.Session) {
	s.AddHandler(h.OnGuildCreate)
	s.AddHandler(h.OnGuildDelete)
	s.AddHandler(h.OnMessageCreate)
}

// OnGuildCreate also fires for every guild the bot is already in when the
// gateway connects; TenantJoined ignores guilds that have a record.
func (h *DiscordHandler) OnGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Guild == nil || g.Unavailable {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), discordEventTimeout)
	defer cancel()

	// failures are logged by the service
	_ = h.standup.TenantJoined(ctx, g.ID)
}

// OnGuildDelete is also sent during outages with Unavailable set; only a
// real removal deletes the record.
func (h *DiscordHandler) OnGuildDelete(_ *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Guild == nil || g.Unavailable {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), discordEventTimeout)
	defer cancel()

	_ = h.standup.TenantLeft(ctx, g.ID)
}

func (h *DiscordHandler) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Message == nil || s.State == nil || s.State.User == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), discordEventTimeout)
	defer cancel()

	h.handleMessage(ctx, s.State.User.ID, m.Message)
}

func (h *DiscordHandler) handleMessage(ctx context.Context, botID string, m *discordgo.Message) {
	if m.Author == nil || m.Author.Bot || !strings.HasPrefix(m.Content, domain.DiscordPrefix) {
		return
	}

	reply := h.commands.Handle(ctx, Invocation{
		TenantID: m.GuildID,
		AuthorID: m.Author.ID,
		Direct:   m.GuildID == "",
		BotID:    botID,
		Text:     strings.TrimPrefix(m.Content, domain.DiscordPrefix),
	})
	if reply == nil {
		return
	}

	var err error
	if reply.Card != nil {
		err = h.chat.SendCard(ctx, m.ChannelID, *reply.Card)
	} else {
		err = h.chat.SendText(ctx, m.ChannelID, reply.Text)
	}
	if err != nil {
		h.log.Warn("failed to send command reply",
			zap.String("channel_id", m.ChannelID),
			zap.String("member_id", m.Author.ID),
			zap.Error(err),
		)
	}
}
