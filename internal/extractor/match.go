package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var attendanceRe = regexp.MustCompile(`Attendance: ([\d.,]+)`)

// formationPositions maps a starting-lineup slot index to the position a
// 4-3-3-ish formation graphic lays out. Indexes past the eleventh slot are
// "Unknown".
var formationPositions = [...]string{
	"GK", "CB", "CB", "CB", "LM", "RM", "CM", "CM", "CM", "FW", "FW",
}

func positionForSlot(i int) string {
	if i >= 0 && i < len(formationPositions) {
		return formationPositions[i]
	}
	return "Unknown"
}

// ExtractMatchReport parses a match report page: result, venue info, both
// lineups and the goal/substitution/card timelines. Sections missing from
// the page simply stay at their zero values.
func ExtractMatchReport(html string) (report *MatchReport, err error) {
	defer recoverExtract("match report", &err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	report = &MatchReport{
		Goals:         []Goal{},
		Substitutions: []Substitution{},
		Cards:         []Card{},
	}
	report.HomeTeam.Players = []LineupPlayer{}
	report.HomeTeam.Substitutes = []LineupPlayer{}
	report.AwayTeam.Players = []LineupPlayer{}
	report.AwayTeam.Substitutes = []LineupPlayer{}

	score := strings.TrimSpace(doc.Find(".sb-endstand").First().Text())
	report.MatchResult = strings.TrimSpace(strings.SplitN(score, "(", 2)[0])
	halfTime := strings.TrimSpace(doc.Find(".sb-halbzeit").First().Text())
	report.FirstHalfResult = strings.NewReplacer("(", "", ")", "").Replace(halfTime)

	stadiumEl := doc.Find(".sb-zusatzinfos a").First()
	report.Stadium = strings.TrimSpace(stadiumEl.Text())
	report.StadiumLink = stadiumEl.AttrOr("href", "")

	if m := attendanceRe.FindStringSubmatch(doc.Find(".sb-zusatzinfos").Text()); m != nil {
		report.Attendance = m[1]
	}

	doc.Find(".sb-zusatzinfos strong").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), "Referee:") {
			return true
		}
		refereeEl := s.Next().NextFiltered("a")
		report.Referee = strings.TrimSpace(refereeEl.Text())
		report.RefereeLink = refereeEl.AttrOr("href", "")
		return false
	})

	homeSection := doc.Find(".large-6.columns.aufstellung-box").First()
	awaySection := doc.Find(".large-6.columns").Last()
	extractMatchTeam(homeSection, &report.HomeTeam)
	extractMatchTeam(awaySection, &report.AwayTeam)

	// Team names must be resolved before the event lists: each event only
	// carries a home/away container class, the display name comes from here.
	doc.Find("#sb-tore li").Each(func(_ int, li *goquery.Selection) {
		actionText := li.Find(".sb-aktion-aktion").Text()
		scorerEl := li.Find(".sb-aktion-aktion a").First()
		assistEl := li.Find(".sb-aktion-aktion a").Last()
		team, side := eventSide(li, report)

		goal := Goal{
			Minute:     eventMinute(li),
			Score:      strings.TrimSpace(li.Find(".sb-aktion-spielstand b").Text()),
			Scorer:     strings.TrimSpace(scorerEl.Text()),
			ScorerLink: scorerEl.AttrOr("href", ""),
			Team:       team,
			Side:       side,
			Assist:     "No assist",
		}
		if strings.Contains(actionText, "Assist:") {
			goal.Assist = strings.TrimSpace(assistEl.Text())
			goal.AssistLink = assistEl.AttrOr("href", "")
		}
		report.Goals = append(report.Goals, goal)
	})

	doc.Find("#sb-wechsel li").Each(func(_ int, li *goquery.Selection) {
		inEl := li.Find(".sb-aktion-wechsel-ein a")
		outEl := li.Find(".sb-aktion-wechsel-aus a")
		team, side := eventSide(li, report)

		sub := Substitution{
			Minute:        eventMinute(li),
			PlayerIn:      strings.TrimSpace(inEl.Text()),
			PlayerInLink:  inEl.AttrOr("href", ""),
			PlayerOut:     strings.TrimSpace(outEl.Text()),
			PlayerOutLink: outEl.AttrOr("href", ""),
			Team:          team,
			Side:          side,
			Reason:        li.Find(".sb-aktion-spielstand span").AttrOr("title", "Tactical"),
		}
		report.Substitutions = append(report.Substitutions, sub)
	})

	doc.Find("#sb-karten li").Each(func(_ int, li *goquery.Selection) {
		actionText := li.Find(".sb-aktion-aktion").Text()
		playerEl := li.Find(".sb-aktion-aktion a").First()
		team, side := eventSide(li, report)

		card := Card{
			Minute:     eventMinute(li),
			Player:     strings.TrimSpace(playerEl.Text()),
			PlayerLink: playerEl.AttrOr("href", ""),
			Team:       team,
			Side:       side,
			Type:       "Red",
			Reason:     "Not specified",
		}
		if strings.Contains(actionText, "Yellow card") {
			card.Type = "Yellow"
		}
		if parts := strings.Split(actionText, ","); len(parts) > 1 {
			if reason := strings.TrimSpace(parts[1]); reason != "" {
				card.Reason = reason
			}
		}
		report.Cards = append(report.Cards, card)
	})

	return report, nil
}

func extractMatchTeam(section *goquery.Selection, team *MatchTeam) {
	linkEl := section.Find(".sb-vereinslink").First()
	team.Name = strings.TrimSpace(linkEl.Text())
	team.Link = linkEl.AttrOr("href", "")
	team.Position = strings.TrimSpace(strings.ReplaceAll(section.Find(`[data-type="link"]`).Text(), "Position:", ""))
	team.StartingLineUp = strings.TrimSpace(section.Find(".aufstellung-unterueberschrift").First().Text())

	section.Find(".aufstellung-spieler-container").Each(func(i int, el *goquery.Selection) {
		playerEl := el.Find(".aufstellung-rueckennummer-name a")
		team.Players = append(team.Players, LineupPlayer{
			Number:     strings.TrimSpace(el.Find(".tm-shirt-number").Text()),
			Name:       strings.TrimSpace(playerEl.Text()),
			PlayerLink: playerEl.AttrOr("href", ""),
			Position:   positionForSlot(i),
		})
	})

	section.Find(".ersatzbank tr").Each(func(_ int, tr *goquery.Selection) {
		if containsText(tr.Find("div"), "Manager:") {
			return
		}
		playerEl := tr.Find("td:nth-child(2) a").First()
		sub := LineupPlayer{
			Number:     strings.TrimSpace(tr.Find(".tm-shirt-number").Text()),
			Name:       strings.TrimSpace(playerEl.Text()),
			PlayerLink: playerEl.AttrOr("href", ""),
			Position:   strings.TrimSpace(tr.Find("td:last-child").Text()),
		}
		if sub.Name != "" {
			team.Substitutes = append(team.Substitutes, sub)
		}
	})

	managerEl := section.Find(".ersatzbank tr:last-child a")
	team.Manager = strings.TrimSpace(managerEl.Text())
	team.ManagerLink = managerEl.AttrOr("href", "")
}

// eventSide derives home/away from the container class, not from any text in
// the event, and resolves the display name from the already-extracted teams.
func eventSide(li *goquery.Selection, report *MatchReport) (team, side string) {
	if li.HasClass("sb-aktion-heim") {
		return report.HomeTeam.Name, "home"
	}
	return report.AwayTeam.Name, "away"
}

func eventMinute(li *goquery.Selection) string {
	style := li.Find(".sb-aktion-uhr span").AttrOr("style", "")
	_, offset, _ := strings.Cut(style, "background-position:")
	return MinuteFromSpriteOffset(offset)
}

func containsText(sel *goquery.Selection, substr string) bool {
	found := false
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), substr) {
			found = true
			return false
		}
		return true
	})
	return found
}
