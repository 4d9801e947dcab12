package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	spaceRe      = regexp.MustCompile(`\s+`)
	rankBeforeRe = regexp.MustCompile(`^\((\d+)\.\)\s*(.+)$`)
	rankAfterRe  = regexp.MustCompile(`^(.+?)\s*\((\d+)\.\)$`)
	spriteRe     = regexp.MustCompile(`-(\d+)(?:px)?\s+-(\d+)(?:px)?`)
)

// NormalizeSpace collapses whitespace runs to single spaces and trims.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// NormalizeColumnName turns a header cell's text into a lower-camel-case
// identifier ("Home team" -> "homeTeam"). An empty header maps to
// "column{position}", position being 1-based.
func NormalizeColumnName(text string, position int) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(text)), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
	if len(fields) == 0 {
		return fmt.Sprintf("column%d", position)
	}
	var b strings.Builder
	b.WriteString(fields[0])
	for _, f := range fields[1:] {
		r := []rune(f)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

// RankedTeam is a team name with an optional parenthesized league standing.
type RankedTeam struct {
	Team string `json:"team"`
	Rank *int   `json:"rank"`
}

// ParseRankedTeam splits strings like "(11.) Bari" or "Hellas Verona (10.)"
// into name and rank. Without a rank marker the rank stays nil; it never fails.
func ParseRankedTeam(s string) RankedTeam {
	if m := rankBeforeRe.FindStringSubmatch(s); m != nil {
		rank, _ := strconv.Atoi(m[1])
		return RankedTeam{Team: strings.TrimSpace(m[2]), Rank: &rank}
	}
	if m := rankAfterRe.FindStringSubmatch(s); m != nil {
		rank, _ := strconv.Atoi(m[2])
		return RankedTeam{Team: strings.TrimSpace(m[1]), Rank: &rank}
	}
	return RankedTeam{Team: strings.TrimSpace(s)}
}

// MinuteFromSpriteOffset decodes a match minute from the clock icon's CSS
// background-position. The sprite sheet is a 36px grid where minute 1 sits
// at row 0, column 0, so minute = row*10 + column + 1. Unparseable input
// returns "".
func MinuteFromSpriteOffset(backgroundPosition string) string {
	m := spriteRe.FindStringSubmatch(backgroundPosition)
	if m == nil {
		return ""
	}
	x, _ := strconv.Atoi(m[1])
	y, _ := strconv.Atoi(m[2])
	return strconv.Itoa((y/36)*10 + x/36 + 1)
}

// ParseKickoffUTC combines a US slash date (M/D/YY or M/D/YYYY, two-digit
// years assumed 20xx) and a "h:mm AM/PM" time into a UTC instant. The
// wall-clock is interpreted in the given IANA zone using that zone's offset
// at the historical instant, so DST is honored. Any parse failure returns
// ok=false; it never panics.
func ParseKickoffUTC(dateStr, timeStr, zone string) (time.Time, bool) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, false
	}

	dateParts := strings.Split(dateStr, "/")
	if len(dateParts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(dateParts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(dateParts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(dateParts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if len(strings.TrimSpace(dateParts[2])) == 2 {
		year += 2000
	}

	timeFields := strings.Fields(timeStr)
	if len(timeFields) == 0 {
		return time.Time{}, false
	}
	clock := strings.Split(timeFields[0], ":")
	if len(clock) != 2 {
		return time.Time{}, false
	}
	hour, err1 := strconv.Atoi(strings.TrimSpace(clock[0]))
	minute, err2 := strconv.Atoi(strings.TrimSpace(clock[1]))
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	if len(timeFields) > 1 {
		switch strings.ToUpper(timeFields[1]) {
		case "PM":
			if hour != 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		}
	}
	if hour > 23 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc).UTC(), true
}
