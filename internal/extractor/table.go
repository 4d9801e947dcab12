package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultLabelSelector = ".content-box-headline"
	defaultMatchTimezone = "Europe/Malta"
)

// FixtureTableOptions tunes ExtractFixtureTable. Zero values select the
// defaults the fixture pipeline has always used.
type FixtureTableOptions struct {
	// LabelSelector locates a page-wide heading whose leading integer (the
	// league matchday) is attached to every row. Default ".content-box-headline".
	LabelSelector string
	// Timezone is the IANA zone kickoff times are interpreted in.
	// Default "Europe/Malta".
	Timezone string
}

// temporalAnchor carries the last-seen date and time tokens across rows:
// fixture tables only repeat the date cell when the day changes.
type temporalAnchor struct {
	date string
	time string
}

// ExtractFixtureTable turns the table at selector into ordered fixture rows.
// Header cells define the column names; rows without a home team cell are
// decoration and silently dropped. A selector matching no table at all is a
// StructuralError.
func ExtractFixtureTable(html, selector string, opts FixtureTableOptions) (rows []FixtureRow, err error) {
	defer recoverExtract("fixture table", &err)

	if opts.LabelSelector == "" {
		opts.LabelSelector = defaultLabelSelector
	}
	if opts.Timezone == "" {
		opts.Timezone = defaultMatchTimezone
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table := doc.Find(selector)
	if table.Length() == 0 {
		return nil, &StructuralError{Selector: selector}
	}

	leagueWeek := parseLeadingNumber(NormalizeSpace(doc.Find(opts.LabelSelector).Text()))

	var headers []string
	table.Find("thead tr th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, NormalizeColumnName(th.Text(), len(headers)+1))
	})

	rows = []FixtureRow{}
	anchor := temporalAnchor{}
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		row := FixtureRow{Extra: map[string]string{}}

		tr.Find("td").Each(func(i int, td *goquery.Selection) {
			name := fmt.Sprintf("column%d", i+1)
			if i < len(headers) {
				name = headers[i]
			}

			text := NormalizeSpace(td.Text())
			anchorEl := td.Find("a").First()
			link, _ := anchorEl.Attr("href")
			title, _ := anchorEl.Attr("title")

			switch {
			case name == "homeTeam":
				row.HomeTeamOriginal = text
				parsed := ParseRankedTeam(text)
				row.HomeTeam = parsed.Team
				row.HomeTeamPosition = parsed.Rank
			case name == "away" || name == "awayTeam":
				name = "away"
				row.AwayOriginal = text
				parsed := ParseRankedTeam(text)
				row.Away = parsed.Team
				row.AwayPosition = parsed.Rank
			case name == "date":
				row.Date = text
				// A date cell may hold a time when the table folds both into
				// one column; only "Sat 9/30/00" shaped labels move the anchor.
				if !strings.Contains(text, " AM") && !strings.Contains(text, " PM") {
					if fields := strings.Fields(text); len(fields) == 2 {
						anchor.date = fields[1]
					}
				}
			case name == "time":
				row.Time = text
				if text != "" {
					anchor.time = text
				}
				if anchor.date != "" && anchor.time != "" {
					if dt, ok := ParseKickoffUTC(anchor.date, anchor.time, opts.Timezone); ok {
						row.DateTime = &dt
					}
				}
			default:
				row.Extra[name] = text
			}

			if link != "" {
				row.Extra[name+"Link"] = link
			}
			if title != "" {
				row.Extra[name+"Title"] = title
			}
		})

		if row.HomeTeamOriginal != "" && row.populated() > 1 {
			row.Idx = len(rows) + 1
			row.LeagueWeek = leagueWeek
			rows = append(rows, row)
		}
	})

	return rows, nil
}

// parseLeadingNumber reads the integer before the first dot of a heading
// like "5. Matchday". Anything else yields 0.
func parseLeadingNumber(text string) int {
	head, _, _ := strings.Cut(text, ".")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0
	}
	return n
}
