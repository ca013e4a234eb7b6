package command

import (
	"fmt"
	"regexp"
	"strings"
)

type CommandType string

const (
	CmdHelp         CommandType = "help"
	CmdAddMember    CommandType = "am"
	CmdRemoveMember CommandType = "rm"
	CmdList         CommandType = "list"
	CmdReply        CommandType = "reply"
	CmdView         CommandType = "view"
	CmdReset        CommandType = "reset"
)

// guildOnly commands need a tenant channel and are rejected in direct messages.
var guildOnly = map[CommandType]bool{
	CmdAddMember:    true,
	CmdRemoveMember: true,
	CmdList:         true,
	CmdReset:        true,
}

// mentionPattern matches Discord (<@123>, <@!123>) and Slack (<@U123|name>) user mentions.
var mentionPattern = regexp.MustCompile(`<@!?([A-Za-z0-9]+)(?:\|[^>]*)?>`)

type Command struct {
	Type     CommandType
	Args     []string
	Mentions []string
	// TenantID is the optional "@<id>" target of a reply.
	TenantID string
	// Text is the free text after the command name (and reply target).
	Text string
	Raw  string
}

func (c *Command) GuildOnly() bool {
	return guildOnly[c.Type]
}

func (c *Command) MentionsUser(userID string) bool {
	for _, id := range c.Mentions {
		if id == userID {
			return true
		}
	}
	return false
}

// ParseCommand parses the text that follows the platform prefix.
func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.Fields(trimmed)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
		Text: strings.TrimSpace(strings.TrimPrefix(trimmed, parts[0])),
	}
	for _, m := range mentionPattern.FindAllStringSubmatch(cmd.Text, -1) {
		cmd.Mentions = append(cmd.Mentions, m[1])
	}

	switch strings.ToLower(parts[0]) {
	case "am", "add":
		cmd.Type = CmdAddMember
	case "rm", "remove":
		cmd.Type = CmdRemoveMember
	case "list", "ls", "members":
		cmd.Type = CmdList
	case "reply":
		cmd.Type = CmdReply
		if len(cmd.Args) > 0 && isTenantTarget(cmd.Args[0]) {
			cmd.TenantID = strings.TrimPrefix(cmd.Args[0], "@")
			cmd.Text = strings.TrimSpace(strings.TrimPrefix(cmd.Text, cmd.Args[0]))
		}
	case "view", "show":
		cmd.Type = CmdView
	case "reset":
		cmd.Type = CmdReset
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// isTenantTarget reports whether arg looks like "@<tenant id>" rather than a mention.
func isTenantTarget(arg string) bool {
	if !strings.HasPrefix(arg, "@") || len(arg) < 2 {
		return false
	}
	for _, r := range arg[1:] {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
