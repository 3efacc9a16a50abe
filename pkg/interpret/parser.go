package interpret

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts free-form task descriptions into structured Drafts using
// regex heuristics. Parsing is total: every unmatched pattern falls back to
// a default, so Parse never fails.
type Parser struct {
	location *time.Location
}

// NewParser creates a new task parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// priorityKeywords are scanned as literal substrings, first match wins.
var priorityKeywords = []string{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// categoryGroups are each tested independently in declared order; the LAST
// matching group wins. This intentionally differs from priority's
// first-match rule; both behaviors are load-bearing for categorization.
var categoryGroups = []struct {
	label string
	re    *regexp.Regexp
}{
	{CategoryMeeting, regexp.MustCompile(`(?i)call|meet|zoom|chat`)},
	{CategoryReview, regexp.MustCompile(`(?i)review|check|analyze`)},
	{CategoryDevelopment, regexp.MustCompile(`(?i)create|make|build|develop`)},
	{CategoryCommunication, regexp.MustCompile(`(?i)email|send|write`)},
}

var (
	relativeDateRe = regexp.MustCompile(`(?i)\b(today|tomorrow|next week)\b`)
	weekdayRe      = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	monthDayRe     = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:,?\s*(\d{4}))?`)
	numericDateRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`)

	clockRe    = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	hourOnlyRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
)

var weekdaysByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var monthsByName = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// Parse converts a raw task description into a Draft. The due date/time is
// resolved relative to now, in the parser's timezone.
func (p *Parser) Parse(raw string, now time.Time) Draft {
	now = now.In(p.location)

	due := p.resolveDate(raw, now)
	hour, minute, token := extractClock(raw)
	due = time.Date(due.Year(), due.Month(), due.Day(), hour, minute, 0, 0, p.location)

	label := fmt.Sprintf("%s %d, %d", due.Month().String(), due.Day(), due.Year())
	if token != "" {
		label += " at " + token
	}

	return Draft{
		Text:             raw,
		Category:         extractCategory(raw),
		Priority:         extractPriority(raw),
		DueDate:          label,
		DueDateTimestamp: due.UnixMilli(),
		Completed:        false,
	}
}

// extractPriority scans for the priority keywords in precedence order;
// the first literal substring found wins.
func extractPriority(raw string) string {
	lowered := strings.ToLower(raw)
	for _, kw := range priorityKeywords {
		if strings.Contains(lowered, kw) {
			return kw
		}
	}
	return PriorityMedium
}

// extractCategory tests every keyword group; later matches overwrite
// earlier ones.
func extractCategory(raw string) string {
	category := CategoryGeneral
	for _, group := range categoryGroups {
		if group.re.MatchString(raw) {
			category = group.label
		}
	}
	return category
}

// resolveDate finds the first date pattern in raw and resolves it against
// now. Absence of any pattern means today.
func (p *Parser) resolveDate(raw string, now time.Time) time.Time {
	if m := relativeDateRe.FindStringSubmatch(raw); m != nil {
		switch strings.ToLower(m[1]) {
		case "tomorrow":
			return now.AddDate(0, 0, 1)
		case "next week":
			return now.AddDate(0, 0, 7)
		default: // today
			return now
		}
	}

	if m := weekdayRe.FindStringSubmatch(raw); m != nil {
		target := weekdaysByName[strings.ToLower(m[1])]
		daysUntil := int(target - now.Weekday())
		// Same weekday today resolves to next week, never today.
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return now.AddDate(0, 0, daysUntil)
	}

	if m := monthDayRe.FindStringSubmatch(raw); m != nil {
		month := monthsByName[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return time.Date(year, month, day, 0, 0, 0, 0, p.location)
	}

	if m := numericDateRe.FindStringSubmatch(raw); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	}

	return now
}

// extractClock finds a time-of-day token and converts it to 24-hour
// hour/minute. Returns the original matched token for display, or ("", 0, 0)
// semantics of midnight when no time is present.
func extractClock(raw string) (hour, minute int, token string) {
	if m := clockRe.FindStringSubmatch(raw); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		hour = to24Hour(hour, m[3])
		return hour, minute, strings.TrimSpace(m[0])
	}

	if m := hourOnlyRe.FindStringSubmatch(raw); m != nil {
		hour, _ = strconv.Atoi(m[1])
		hour = to24Hour(hour, m[2])
		return hour, 0, strings.TrimSpace(m[0])
	}

	return 0, 0, ""
}

// to24Hour applies standard 12-hour disambiguation: 12am is midnight,
// 12pm stays noon, any other pm hour gains 12.
func to24Hour(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}
