package entity

import "time"

// Card is a platform-neutral rich message. Discord renders it as an embed,
// Slack as an attachment.
type Card struct {
	Title       string
	URL         string
	Description string
	Color       string // hex, e.g. "#ff9900"
	Fields      []CardField
	Footer      string
	Timestamp   time.Time
}

type CardField struct {
	Name   string
	Value  string
	Inline bool
}
