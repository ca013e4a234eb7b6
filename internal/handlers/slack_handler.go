package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/standup-bot/internal/chat/slackchat"
	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/go-chi/chi/v5"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// slackDirectChannel is the channel_name Slack sends for slash commands typed in a DM.
const slackDirectChannel = "directmessage"

type SlackHandler struct {
	commands      *CommandHandler
	standup       contract.StandupService
	signingSecret string
	botUserID     string
	log           *zap.Logger
}

func NewSlackHandler(standup contract.StandupService, signingSecret, botUserID string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		commands:      NewCommandHandler(standup, domain.SlackPrefix, false, log),
		standup:       standup,
		signingSecret: signingSecret,
		botUserID:     botUserID,
		log:           log,
	}
}

func (h *SlackHandler) Routes(r chi.Router) {
	r.Post("/slack/commands", h.HandleSlashCommand)
	r.Post("/slack/events", h.HandleEvents)
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.verify(w, r); !ok {
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// there is no install event without OAuth, so the first command
	// from a workspace provisions its standup
	if err := h.standup.TenantJoined(r.Context(), s.TeamID); err != nil {
		h.respond(w, h.createErrorResponse("Could not set up the standup for this workspace"))
		return
	}

	reply := h.commands.Handle(r.Context(), Invocation{
		TenantID: s.TeamID,
		AuthorID: s.UserID,
		Direct:   s.ChannelName == slackDirectChannel,
		BotID:    h.botUserID,
		Text:     s.Text,
	})
	if reply == nil {
		h.respond(w, h.createErrorResponse(fmt.Sprintf("Unknown command. Try `%shelp`", domain.SlackPrefix)))
		return
	}

	h.respond(w, toSlackMsg(reply))
}

// HandleEvents serves the Events API: the URL verification handshake and
// app_uninstalled, which removes the workspace's standup.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verify(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		if event.InnerEvent.Type == "app_uninstalled" {
			// failures are logged by the service; Slack does not retry on 200
			_ = h.standup.TenantLeft(r.Context(), event.TeamID)
		}
	}

	w.WriteHeader(http.StatusOK)
}

// verify checks the request signature and returns the raw body.
func (h *SlackHandler) verify(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.Debug("rejected unsigned request", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Debug("rejected request with bad signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func toSlackMsg(reply *Reply) *slack.Msg {
	msg := &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         reply.Text,
	}
	if reply.Public {
		msg.ResponseType = slack.ResponseTypeInChannel
	}
	if reply.Card != nil {
		msg.Attachments = []slack.Attachment{slackchat.ToAttachment(*reply.Card)}
	}
	return msg
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", strings.TrimPrefix(message, "❌ ")),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Warn("failed to write slack response", zap.Error(err))
	}
}
