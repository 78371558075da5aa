package quickparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Token patterns, one fixed alternation set per category. German forms
// first, English alternates after. Leading \b is deliberately absent in
// front of "übermorgen": Go's \b is ASCII-only and never matches before ü.
var (
	reMinuteToken = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:minuten|minutes|minute|mins|min)\b`)
	reHourToken   = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:stunden|stunde|hours|hour|hrs|std|hr|h)\b`)

	reDayAfterTomorrow = regexp.MustCompile(`(?i)(?:über|ueber)morgen\b|\bday\s+after\s+tomorrow\b`)
	reTomorrow         = regexp.MustCompile(`(?i)\bmorgen\b|\btomorrow\b`)
	reToday            = regexp.MustCompile(`(?i)\bheute\b|\btoday\b`)

	// D.M, D.M.YY or D.M.YYYY with dot separators. Month is restricted to
	// 1-12 so that dot times like "9.30" stay available to the time pass;
	// day/month combinations that miss the calendar (31.02) are accepted
	// here and normalized by time.Date.
	reExplicitDate = regexp.MustCompile(`\b(3[01]|[12]\d|0?[1-9])\.(1[0-2]|0?[1-9])(?:\.(\d{4}|\d{2}))?\b`)

	reClockToken = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\b`)
	reBareHour   = regexp.MustCompile(`(?:^|\s)(\d{1,2})(?:\s|$)`)

	reWhitespace = regexp.MustCompile(`\s+`)
)

// titleStripPatterns covers every token category, winning or not, so a
// leftover alternative never leaks into the residual title. The patterns
// overlap (the clock pattern matches inside "24.1.27"), so the order must
// mirror the scanner's pass order: duration, day, then time. Longer day
// keywords come before "morgen"/"tomorrow" can split them.
var titleStripPatterns = []*regexp.Regexp{
	reMinuteToken,
	reHourToken,
	reDayAfterTomorrow,
	reTomorrow,
	reToday,
	reExplicitDate,
	reClockToken,
}

// Parser extracts a schedule proposal from a free-text phrase. It is bound
// to one IANA time zone; the reference "now" is always passed in by the
// caller, which keeps Parse a pure function.
type Parser struct {
	location *time.Location
}

// NewParser creates a phrase parser for the given IANA timezone string,
// e.g. "Europe/Zurich".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's configured time zone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse scans text in fixed passes — duration, day, time-of-day, title
// residual — and composes start/end in the parser's zone. defaultMinutes is
// used when no duration token is present (non-positive falls back to 60).
// The only error is ErrEmptyInput; missing or malformed tokens resolve to
// defaults so the caller always gets a usable proposal.
func (p *Parser) Parse(text string, defaultMinutes int, now time.Time) (Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}, ErrEmptyInput
	}
	now = now.In(p.location)

	sc := newScanner(trimmed)

	minutes := p.resolveDuration(sc, defaultMinutes)
	year, month, day := p.resolveDay(sc, now)
	hour, minute, bareToken := p.resolveClock(sc)
	title := resolveTitle(trimmed, bareToken)

	start := time.Date(year, month, day, hour, minute, 0, 0, p.location)
	return Result{
		Title:           title,
		Start:           start,
		End:             start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
	}, nil
}

// resolveDuration consumes both duration token forms so neither can be
// re-read as a time-of-day later. The minute token always wins over the
// hour token, regardless of position: minute-level phrasing is the more
// specific signal.
func (p *Parser) resolveDuration(sc *scanner, defaultMinutes int) int {
	minTok, hasMin := sc.take(reMinuteToken)
	hourTok, hasHour := sc.take(reHourToken)

	switch {
	case hasMin:
		n, _ := strconv.Atoi(minTok[1])
		return clampDuration(n)
	case hasHour:
		n, _ := strconv.Atoi(hourTok[1])
		return clampDuration(n * 60)
	}

	if defaultMinutes <= 0 {
		defaultMinutes = DefaultDurationMinutes
	}
	return clampDuration(defaultMinutes)
}

// resolveDay checks the relative keywords in fixed priority order and only
// then the explicit numeric date, so a phrase carrying both a keyword and a
// coincidental D.M token is resolved by the keyword. No token means the
// reference day.
func (p *Parser) resolveDay(sc *scanner, now time.Time) (int, time.Month, int) {
	switch {
	case sc.takeAny(reDayAfterTomorrow):
		return ymd(now.AddDate(0, 0, 2))
	case sc.takeAny(reTomorrow):
		return ymd(now.AddDate(0, 0, 1))
	case sc.takeAny(reToday):
		return ymd(now)
	}

	if tok, ok := sc.take(reExplicitDate); ok {
		day, _ := strconv.Atoi(tok[1])
		month, _ := strconv.Atoi(tok[2])
		year := now.Year()
		if tok[3] != "" {
			y, _ := strconv.Atoi(tok[3])
			if y < 100 {
				y += 2000
			}
			year = y
		}
		return year, time.Month(month), day
	}

	return ymd(now)
}

// resolveClock prefers an explicit HH:MM / HH.MM token, then a single bare
// one-or-two-digit number not consumed by an earlier pass (read as a full
// hour), then 09:00. Out-of-range digits are clamped, never rejected.
// The winning bare token, if any, is returned for title stripping.
func (p *Parser) resolveClock(sc *scanner) (int, int, string) {
	if tok, ok := sc.take(reClockToken); ok {
		h, _ := strconv.Atoi(tok[1])
		m, _ := strconv.Atoi(tok[2])
		return clampRange(h, 0, 23), clampRange(m, 0, 59), ""
	}
	if tok, ok := sc.take(reBareHour); ok {
		h, _ := strconv.Atoi(tok[1])
		return clampRange(h, 0, 23), 0, tok[1]
	}
	return DefaultHour, 0, ""
}

// resolveTitle strips every occurrence of every token pattern from the
// original-case phrase, plus the bare-hour token when one was used, then
// collapses whitespace. An all-token phrase yields the placeholder.
func resolveTitle(trimmed, bareToken string) string {
	title := trimmed
	for _, re := range titleStripPatterns {
		title = re.ReplaceAllString(title, " ")
	}
	if bareToken != "" {
		// The category strips above mirror the scanner's consumption, so
		// the first remaining bare number is the one used as the hour.
		if loc := reBareHour.FindStringIndex(title); loc != nil {
			title = title[:loc[0]] + " " + title[loc[1]:]
		}
	}

	title = strings.TrimSpace(reWhitespace.ReplaceAllString(title, " "))
	if title == "" {
		return DefaultTitle
	}
	return title
}

// scanner holds a lower-cased working copy of the phrase in which consumed
// tokens are blanked out, so later passes never re-read the same characters.
type scanner struct {
	text string
}

func newScanner(trimmed string) *scanner {
	return &scanner{text: strings.ToLower(trimmed)}
}

// take consumes the first match of re and returns its submatches. The
// matched span is replaced with spaces of equal length, preserving the
// offsets of everything around it.
func (s *scanner) take(re *regexp.Regexp) ([]string, bool) {
	idx := re.FindStringSubmatchIndex(s.text)
	if idx == nil {
		return nil, false
	}

	groups := make([]string, 0, len(idx)/2)
	for i := 0; i < len(idx); i += 2 {
		if idx[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, s.text[idx[i]:idx[i+1]])
	}

	s.text = s.text[:idx[0]] + strings.Repeat(" ", idx[1]-idx[0]) + s.text[idx[1]:]
	return groups, true
}

// takeAny consumes the first match of re, ignoring submatches.
func (s *scanner) takeAny(re *regexp.Regexp) bool {
	_, ok := s.take(re)
	return ok
}

func ymd(t time.Time) (int, time.Month, int) {
	return t.Year(), t.Month(), t.Day()
}

func clampDuration(minutes int) int {
	return clampRange(minutes, MinDurationMinutes, MaxDurationMinutes)
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
