package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/internal/handlers"
	"github.com/diegoclair/standup-bot/mocks"
	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	SigningSecret = "test-signing-secret"
	BotUserID     = "UBOT"
)

type ServiceMocks struct {
	StandupServiceMock *mocks.MockStandupService
}

// GetHandlerTest returns a chi router serving the Slack routes backed by mocks.
func GetHandlerTest(t *testing.T) (ServiceMocks, http.Handler, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := ServiceMocks{StandupServiceMock: mocks.NewMockStandupService(ctrl)}

	r := chi.NewRouter()
	handlers.NewSlackHandler(m.StandupServiceMock, SigningSecret, BotUserID, zap.NewNop()).Routes(r)

	return m, r, ctrl
}

// CreateSlackRequest builds a signed /standup slash command invocation.
func CreateSlackRequest(t *testing.T, text, channelName, userID, teamID string) *http.Request {
	t.Helper()

	form := url.Values{}
	form.Set("command", "/standup")
	form.Set("text", text)
	form.Set("team_id", teamID)
	form.Set("channel_id", "C123456789")
	form.Set("channel_name", channelName)
	form.Set("user_id", userID)
	form.Set("user_name", "test-user")
	form.Set("response_url", "https://hooks.slack.com/commands/test")
	form.Set("trigger_id", "test-trigger-id")

	return Sign(t, httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(form.Encode())),
		form.Encode(), "application/x-www-form-urlencoded")
}

// CreateSlackEventRequest builds a signed Events API delivery.
func CreateSlackEventRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	return Sign(t, httptest.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body)),
		body, "application/json")
}

// Sign stamps req with the v0 signature Slack computes over body.
func Sign(t *testing.T, req *http.Request, body, contentType string) *http.Request {
	t.Helper()

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	mac := hmac.New(sha256.New, []byte(SigningSecret))
	_, _ = mac.Write([]byte("v0:" + ts + ":" + body))

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	return req
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
