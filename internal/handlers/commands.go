package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/command"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/diegoclair/standup-bot/internal/domain/message"
	"go.uber.org/zap"
)

const (
	replyRobot      = ":robot:"
	replyNotInDM    = "Hmm, that command cannot be used in a dm!"
	replyUnexpected = "Error 8008135: Something went wrong!"
)

// Invocation is a command typed by a user, already stripped of the platform prefix.
type Invocation struct {
	TenantID string
	AuthorID string
	// Direct is true when the command was sent in a direct message.
	Direct bool
	BotID  string
	Text   string
}

// Reply is what the bot answers to an invocation. Public replies are
// visible to the whole channel where the platform distinguishes it.
type Reply struct {
	Text   string
	Card   *entity.Card
	Public bool
}

func textReply(format string, args ...any) *Reply {
	return &Reply{Text: fmt.Sprintf(format, args...)}
}

// CommandHandler routes parsed commands to the standup service. It knows
// nothing about the transport: adapters turn platform events into
// Invocations and deliver the Reply.
type CommandHandler struct {
	standup contract.StandupService
	prefix  string
	// directReplies requires reply and view to be sent privately
	directReplies bool
	log           *zap.Logger
}

func NewCommandHandler(standup contract.StandupService, prefix string, directReplies bool, log *zap.Logger) *CommandHandler {
	return &CommandHandler{
		standup:       standup,
		prefix:        prefix,
		directReplies: directReplies,
		log:           log,
	}
}

// Handle runs the invocation. It returns nil for text that is not a known command.
func (h *CommandHandler) Handle(ctx context.Context, inv Invocation) *Reply {
	cmd, err := command.ParseCommand(inv.Text)
	if err != nil {
		return nil
	}

	if inv.BotID != "" && cmd.MentionsUser(inv.BotID) {
		return &Reply{Text: replyRobot, Public: true}
	}

	if cmd.GuildOnly() && inv.Direct {
		return &Reply{Text: replyNotInDM}
	}

	reply, err := h.route(ctx, cmd, inv)
	if err != nil {
		h.log.Error("command failed",
			zap.String("command", string(cmd.Type)),
			zap.String("tenant_id", inv.TenantID),
			zap.String("member_id", inv.AuthorID),
			zap.Error(err),
		)
		return &Reply{Text: replyUnexpected}
	}
	return reply
}

func (h *CommandHandler) route(ctx context.Context, cmd *command.Command, inv Invocation) (*Reply, error) {
	switch cmd.Type {
	case command.CmdAddMember:
		return h.handleAddMembers(ctx, cmd, inv)
	case command.CmdRemoveMember:
		return h.handleRemoveMembers(ctx, cmd, inv)
	case command.CmdList:
		return h.handleList(ctx, inv)
	case command.CmdReply:
		return h.handleReply(ctx, cmd, inv)
	case command.CmdView:
		return h.handleView(ctx, inv)
	case command.CmdReset:
		return h.handleReset(ctx, inv)
	default:
		card := message.HelpCard(h.prefix)
		return &Reply{Card: &card}, nil
	}
}

func (h *CommandHandler) handleAddMembers(ctx context.Context, cmd *command.Command, inv Invocation) (*Reply, error) {
	if len(cmd.Mentions) == 0 {
		return textReply("❌ Please mention the members to add: `%sam @user`", h.prefix), nil
	}

	var added, existing []string
	for _, id := range cmd.Mentions {
		err := h.standup.AddMember(ctx, inv.TenantID, id)
		switch {
		case err == nil:
			added = append(added, mention(id))
		case errors.Is(err, domain.ErrMemberExists):
			existing = append(existing, mention(id))
		case errors.Is(err, domain.ErrStandupNotFound):
			return textReply("❌ This server has no standup yet."), nil
		default:
			return nil, err
		}
	}

	var b strings.Builder
	switch len(added) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "✅ %s has been added to the standup!", added[0])
	default:
		fmt.Fprintf(&b, "✅ %d members added to the standup: %s", len(added), strings.Join(added, ", "))
	}
	if len(existing) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "ℹ️ Already in the standup: %s", strings.Join(existing, ", "))
	}

	return &Reply{Text: b.String(), Public: len(added) > 0}, nil
}

func (h *CommandHandler) handleRemoveMembers(ctx context.Context, cmd *command.Command, inv Invocation) (*Reply, error) {
	if len(cmd.Mentions) == 0 {
		return textReply("❌ Please mention the members to remove: `%srm @user`", h.prefix), nil
	}

	var removed, unknown []string
	for _, id := range cmd.Mentions {
		err := h.standup.RemoveMember(ctx, inv.TenantID, id)
		switch {
		case err == nil:
			removed = append(removed, mention(id))
		case errors.Is(err, domain.ErrMemberNotFound):
			unknown = append(unknown, mention(id))
		default:
			return nil, err
		}
	}

	var b strings.Builder
	if len(removed) > 0 {
		fmt.Fprintf(&b, "✅ Removed from the standup: %s", strings.Join(removed, ", "))
	}
	if len(unknown) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "ℹ️ Not in the standup: %s", strings.Join(unknown, ", "))
	}

	return &Reply{Text: b.String(), Public: len(removed) > 0}, nil
}

func (h *CommandHandler) handleList(ctx context.Context, inv Invocation) (*Reply, error) {
	standup, err := h.standup.GetStandup(ctx, inv.TenantID)
	if errors.Is(err, domain.ErrStandupNotFound) {
		return textReply("❌ This server has no standup yet."), nil
	}
	if err != nil {
		return nil, err
	}

	if len(standup.Members) == 0 {
		return textReply("There are no members in the standup! Add one with `%sam @user`.", h.prefix), nil
	}

	var b strings.Builder
	b.WriteString("*Standup members:*\n")
	for i, id := range standup.Members {
		status := "⏳"
		if standup.HasResponded(id) {
			status = "✅"
		}
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, status, mention(id))
	}

	return &Reply{Text: strings.TrimSuffix(b.String(), "\n")}, nil
}

func (h *CommandHandler) handleReply(ctx context.Context, cmd *command.Command, inv Invocation) (*Reply, error) {
	if h.directReplies && !inv.Direct {
		return textReply("Send me your update in a direct message: `%sreply <message>`", h.prefix), nil
	}
	if cmd.Text == "" {
		return textReply("❌ Your update is empty! Try `%sreply <message>`", h.prefix), nil
	}

	tenantID := cmd.TenantID
	if tenantID == "" && !inv.Direct {
		tenantID = inv.TenantID
	}

	saved, err := h.standup.SubmitResponse(ctx, inv.AuthorID, tenantID, cmd.Text)

	var ambiguous *domain.AmbiguousStandupError
	switch {
	case err == nil:
		return textReply("✅ Your update for `%s` has been recorded!", saved), nil
	case errors.As(err, &ambiguous):
		return textReply("You are in more than one standup, tell me which one: `%sreply @<id> <message>`\nAvailable: %s",
			h.prefix, strings.Join(quote(ambiguous.TenantIDs), ", ")), nil
	case errors.Is(err, domain.ErrNotMember):
		return textReply("❌ You are not a member of that standup."), nil
	default:
		return nil, err
	}
}

func (h *CommandHandler) handleView(ctx context.Context, inv Invocation) (*Reply, error) {
	if h.directReplies && !inv.Direct {
		return textReply("Ask me in a direct message: `%sview`", h.prefix), nil
	}

	responses, err := h.standup.MemberResponses(ctx, inv.AuthorID)
	if errors.Is(err, domain.ErrNotMember) {
		return textReply("❌ You are not a member of any standup."), nil
	}
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return textReply("You have not posted an update yet. Try `%sreply <message>`", h.prefix), nil
	}

	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "`%s`\n%s\n", id, responses[id])
	}
	return &Reply{Text: strings.TrimSuffix(b.String(), "\n")}, nil
}

func (h *CommandHandler) handleReset(ctx context.Context, inv Invocation) (*Reply, error) {
	err := h.standup.ResetResponses(ctx, inv.TenantID)
	if errors.Is(err, domain.ErrStandupNotFound) {
		return textReply("❌ This server has no standup yet."), nil
	}
	if err != nil {
		return nil, err
	}
	return &Reply{Text: "✅ All updates of this standup have been cleared.", Public: true}, nil
}

func mention(id string) string {
	return "<@" + id + ">"
}

func quote(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "`" + id + "`"
	}
	return out
}
