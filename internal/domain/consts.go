package domain

// Weekdays use ISO 8601 numbering.
const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Workdays are the days check-ins and summaries fire on.
var Workdays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// ValidWeekday reports whether d is an ISO 8601 weekday number.
func ValidWeekday(d int) bool {
	return d >= Monday && d <= Sunday
}

// Check-in reminders fire at 09:00 and 14:00 in UTC-3.
const (
	MorningCheckinHour   = 12
	AfternoonCheckinHour = 17
	SummaryHour          = 15
	SummaryMinute        = 30
)

const (
	StandupChannelName  = "daily-standups"
	StandupChannelTopic = "Scrum Standup Meeting Channel"
)

// Command prefixes per platform
const (
	DiscordPrefix = "!"
	SlackPrefix   = "/standup "
)
