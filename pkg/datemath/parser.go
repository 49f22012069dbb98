package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts natural-language date phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var inDurationRe = regexp.MustCompile(`^in (\S+) (day|days|week|weeks|month|months)$`)

// numberWords maps spoken small numbers to their values, matching how
// speech-to-text usually renders them ("in two days").
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"a": 1, "an": 1,
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// timesOfDay are the clock hours assigned to spoken day-part words.
var timesOfDay = map[string]int{
	"morning":   9,
	"noon":      12,
	"midday":    12,
	"afternoon": 15,
	"evening":   18,
	"night":     20,
	"tonight":   20,
	"midnight":  0,
	"eod":       17,
}

// Parse converts a date phrase to an absolute time.Time relative to baseTime.
// The same phrase with the same baseTime always yields the same result.
// A phrase the parser cannot interpret returns an error; callers decide
// whether that is fatal.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	normalized := p.normalize(phrase)
	if normalized == "" {
		return time.Time{}, fmt.Errorf("empty date phrase")
	}

	day, rest, err := p.parseDay(normalized, baseTime)
	if err != nil {
		return time.Time{}, err
	}

	if rest != "" {
		hour, ok := timesOfDay[rest]
		if !ok {
			return time.Time{}, fmt.Errorf("unknown time of day: %q", rest)
		}
		return day.Add(time.Duration(hour) * time.Hour), nil
	}

	return day, nil
}

// normalize lowercases the phrase and strips connective prefixes that
// transcripts carry ("by tomorrow evening", "on next monday").
func (p *Parser) normalize(phrase string) string {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	for _, prefix := range []string{"by ", "on ", "at ", "due ", "until ", "before "} {
		if strings.HasPrefix(phrase, prefix) {
			phrase = strings.TrimSpace(strings.TrimPrefix(phrase, prefix))
			break
		}
	}
	return strings.Join(strings.Fields(phrase), " ")
}

// parseDay resolves the date part of the phrase and returns midnight of the
// target day plus any unconsumed trailing words (a time-of-day qualifier).
func (p *Parser) parseDay(phrase string, baseTime time.Time) (time.Time, string, error) {
	// Standalone day-part words imply today ("tonight", "this evening").
	if _, ok := timesOfDay[phrase]; ok {
		return p.startOfDay(baseTime), phrase, nil
	}
	if rest, ok := strings.CutPrefix(phrase, "this "); ok {
		if _, isTime := timesOfDay[rest]; isTime {
			return p.startOfDay(baseTime), rest, nil
		}
	}

	head, rest := splitHead(phrase)

	switch head {
	case "today":
		return p.startOfDay(baseTime), rest, nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), rest, nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), rest, nil
	}

	// "in X days/weeks/months"
	if strings.HasPrefix(phrase, "in ") {
		t, err := p.parseInDuration(phrase, baseTime)
		return t, "", err
	}

	// "next <weekday>" / "next week"
	if head == "next" {
		return p.parseNext(rest, baseTime)
	}

	// Bare weekday: next occurrence, optionally followed by a day part
	// ("friday evening").
	if wd, ok := weekdays[head]; ok {
		return p.nextWeekday(wd, baseTime), rest, nil
	}

	// Last resort: absolute date layouts.
	for _, layout := range []string{"2006-01-02", "january 2", "january 2 2006", "2 january", "2 january 2006"} {
		if t, err := time.ParseInLocation(layout, phrase, p.location); err == nil {
			if t.Year() == 0 {
				t = t.AddDate(baseTime.Year(), 0, 0)
				if t.Before(p.startOfDay(baseTime)) {
					t = t.AddDate(1, 0, 0)
				}
			}
			return t, "", nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unrecognized date phrase: %q", phrase)
}

// parseInDuration handles patterns like "in 3 days", "in two weeks", "in 1 month".
func (p *Parser) parseInDuration(phrase string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", phrase)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		word, ok := numberWords[matches[1]]
		if !ok {
			return baseTime, fmt.Errorf("invalid duration amount: %q", matches[1])
		}
		amount = word
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", matches[2])
}

// parseNext handles "next monday", "next friday evening", "next week".
func (p *Parser) parseNext(rest string, baseTime time.Time) (time.Time, string, error) {
	if rest == "week" {
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), "", nil
	}

	dayName, trailing := splitHead(rest)
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, "", fmt.Errorf("unknown weekday: %q", dayName)
	}

	return p.nextWeekday(targetWeekday, baseTime), trailing, nil
}

// nextWeekday returns midnight of the next occurrence of the weekday,
// always strictly after the base day.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func splitHead(s string) (head, rest string) {
	head, rest, _ = strings.Cut(s, " ")
	return head, rest
}
