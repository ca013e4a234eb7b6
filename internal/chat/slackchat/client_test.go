package slackchat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	err        error
	createErr  error
	posted     map[string]int
	topics     map[string]string
	pages      [][]slack.Channel
	pageCalls  int
	openedWith []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{posted: make(map[string]int), topics: make(map[string]string)}
}

func (f *fakeAPI) OpenConversationContext(_ context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error) {
	if f.err != nil {
		return nil, false, false, f.err
	}
	f.openedWith = append(f.openedWith, params.Users...)
	ch := &slack.Channel{}
	ch.ID = "D-" + params.Users[0]
	return ch, false, false, nil
}

func (f *fakeAPI) PostMessageContext(_ context.Context, channelID string, _ ...slack.MsgOption) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	f.posted[channelID]++
	return channelID, "1700000000.000100", nil
}

func (f *fakeAPI) CreateConversationContext(_ context.Context, params slack.CreateConversationParams) (*slack.Channel, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	ch := &slack.Channel{}
	ch.ID = "C-" + params.ChannelName
	return ch, nil
}

func (f *fakeAPI) SetTopicOfConversationContext(_ context.Context, channelID, topic string) (*slack.Channel, error) {
	f.topics[channelID] = topic
	return &slack.Channel{}, nil
}

func (f *fakeAPI) GetConversationsContext(_ context.Context, _ *slack.GetConversationsParameters) ([]slack.Channel, string, error) {
	page := f.pages[f.pageCalls]
	f.pageCalls++
	cursor := ""
	if f.pageCalls < len(f.pages) {
		cursor = "next"
	}
	return page, cursor, nil
}

func channel(id, name string) slack.Channel {
	ch := slack.Channel{}
	ch.ID = id
	ch.Name = name
	return ch
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("should open a dm and post text", func(t *testing.T) {
		fake := newFakeAPI()
		c := &Client{api: fake}

		channelID, err := c.ResolveDirect(ctx, "U1")
		require.NoError(t, err)
		assert.Equal(t, "D-U1", channelID)

		require.NoError(t, c.SendText(ctx, channelID, "hello"))
		assert.Equal(t, 1, fake.posted["D-U1"])
	})

	t.Run("should create channel and set topic", func(t *testing.T) {
		fake := newFakeAPI()
		c := &Client{api: fake}

		channelID, err := c.CreateTextChannel(ctx, "T1", "daily-standups", "Scrum")

		require.NoError(t, err)
		assert.Equal(t, "C-daily-standups", channelID)
		assert.Equal(t, "Scrum", fake.topics["C-daily-standups"])
	})

	t.Run("should reuse existing channel when name is taken", func(t *testing.T) {
		fake := newFakeAPI()
		fake.createErr = slack.SlackErrorResponse{Err: "name_taken"}
		fake.pages = [][]slack.Channel{
			{channel("C1", "general")},
			{channel("C2", "daily-standups")},
		}
		c := &Client{api: fake}

		channelID, err := c.CreateTextChannel(ctx, "T1", "daily-standups", "Scrum")

		require.NoError(t, err)
		assert.Equal(t, "C2", channelID)
		assert.Equal(t, 2, fake.pageCalls)
		assert.Empty(t, fake.topics)
	})

	t.Run("should fail on other create errors", func(t *testing.T) {
		fake := newFakeAPI()
		fake.createErr = slack.SlackErrorResponse{Err: "missing_scope"}
		c := &Client{api: fake}

		_, err := c.CreateTextChannel(ctx, "T1", "daily-standups", "Scrum")

		assert.Error(t, err)
	})

	t.Run("should wrap post errors", func(t *testing.T) {
		fake := newFakeAPI()
		fake.err = errors.New("channel_not_found")
		c := &Client{api: fake}

		assert.ErrorIs(t, c.SendCard(ctx, "C1", entity.Card{Title: "x"}), fake.err)
	})
}

func TestToAttachment(t *testing.T) {
	ts := time.Unix(1704110400, 0)

	att := ToAttachment(entity.Card{
		Title:       "Daily Standup",
		URL:         "https://example.com",
		Description: "Hooligans: <@U2>",
		Color:       "#ff9900",
		Timestamp:   ts,
		Fields:      []entity.CardField{{Name: "-", Value: "<@U1>\ndone", Inline: true}},
	})

	assert.Equal(t, "#ff9900", att.Color)
	assert.Equal(t, "https://example.com", att.TitleLink)
	assert.Equal(t, "Hooligans: <@U2>", att.Text)
	assert.Equal(t, "1704110400", att.Ts.String())
	require.Len(t, att.Fields, 1)
	assert.True(t, att.Fields[0].Short)
}
