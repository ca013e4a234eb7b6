package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

const (
	memberPlaceholder = "{member}"
	prefixPlaceholder = "{prefix}"
)

const DefaultColor = "#ff9900"

// Templates holds every user-facing text the bot sends on its own.
// It can be overridden from a YAML file, see config.LoadTemplates.
type Templates struct {
	Reminder string          `yaml:"reminder"`
	Intro    IntroTemplate   `yaml:"intro"`
	Summary  SummaryTemplate `yaml:"summary"`
}

type IntroTemplate struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Fields      []FieldConfig `yaml:"fields"`
	Footer      string        `yaml:"footer"`
}

type SummaryTemplate struct {
	Title         string `yaml:"title"`
	URL           string `yaml:"url"`
	MissingPrefix string `yaml:"missing_prefix"`
	Footer        string `yaml:"footer"`
}

type FieldConfig struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func Default() Templates {
	return Templates{
		Reminder: "Hey <@{member}>! Are you ready for today's standup? Send `{prefix}reply <your update>` to check in.",
		Intro: IntroTemplate{
			Title:       "Daily Standup",
			Description: "This is the newly generated text channel used for the team's daily standups!",
			Fields: []FieldConfig{
				{
					Name:  "Introduction",
					Value: "Hi! I'm a bot that will run your daily standups from now on.\nTo see all available commands, type `{prefix}help`.",
				},
				{
					Name:  "How does this work?",
					Value: "Every weekday at `09:00 AM` and `02:00 PM` (UTC-3) I will send you a DM if you have not posted your update yet. Your answer is kept until the end of the day.",
				},
				{
					Name:  "Getting started",
					Value: "*Currently*, there are no members in the standup! To add a member, try `{prefix}am <User>`.",
				},
			},
		},
		Summary: SummaryTemplate{
			Title:         "Daily Standup",
			MissingPrefix: "Hooligans: ",
		},
	}
}

// ReminderFor renders the direct-message reminder for a member.
func (t Templates) ReminderFor(memberID, prefix string) string {
	return render(t.Reminder, memberID, prefix)
}

// IntroCard is posted once in the channel created when the bot joins a tenant.
func (t Templates) IntroCard(prefix string, now time.Time) entity.Card {
	card := entity.Card{
		Title:       t.Intro.Title,
		Description: render(t.Intro.Description, "", prefix),
		Color:       DefaultColor,
		Footer:      t.Intro.Footer,
		Timestamp:   now,
	}
	for _, f := range t.Intro.Fields {
		card.Fields = append(card.Fields, entity.CardField{
			Name:  render(f.Name, "", prefix),
			Value: render(f.Value, "", prefix),
		})
	}
	return card
}

// SummaryCard reports the collected responses and who is still missing.
// responded follows roster order.
func (t Templates) SummaryCard(standup *entity.Standup, responded, missing []string, now time.Time) entity.Card {
	var desc strings.Builder
	desc.WriteString(t.Summary.MissingPrefix)
	if len(missing) == 0 {
		desc.WriteString(":man_shrugging:")
	}
	for _, id := range missing {
		fmt.Fprintf(&desc, "<@%s> ", id)
	}

	card := entity.Card{
		Title:       t.Summary.Title,
		URL:         t.Summary.URL,
		Description: strings.TrimSpace(desc.String()),
		Color:       DefaultColor,
		Footer:      t.Summary.Footer,
		Timestamp:   now,
	}
	for _, id := range responded {
		card.Fields = append(card.Fields, entity.CardField{
			Name:  "-",
			Value: fmt.Sprintf("<@%s>\n%s", id, standup.Responses[id]),
		})
	}
	return card
}

// HelpCard lists the available commands.
func HelpCard(prefix string) entity.Card {
	line := func(cmd, desc string) string {
		return fmt.Sprintf("`%s%s` - %s", prefix, cmd, desc)
	}
	return entity.Card{
		Title: "Standup commands",
		Color: DefaultColor,
		Fields: []entity.CardField{
			{Name: "Members", Value: strings.Join([]string{
				line("am @user ...", "add members to the standup"),
				line("rm @user ...", "remove members from the standup"),
				line("list", "show the roster and who has checked in"),
			}, "\n")},
			{Name: "Check-in", Value: strings.Join([]string{
				line("reply [@serverId] <message>", "post your update"),
				line("view", "show your current update"),
			}, "\n")},
			{Name: "Admin", Value: line("reset", "clear every update of this standup")},
		},
	}
}

func render(tmpl, memberID, prefix string) string {
	return strings.NewReplacer(memberPlaceholder, memberID, prefixPlaceholder, prefix).Replace(tmpl)
}
