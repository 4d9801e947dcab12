package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	numberRe  = regexp.MustCompile(`[\d.,]+`)
	percentRe = regexp.MustCompile(`[\d.,]+\s?%`)
	seasonRe  = regexp.MustCompile(`\d{2}/\d{2}|\d{4}`)
)

// ExtractTeamProfile parses a team overview page into a TeamProfile. Every
// section is optional: a page without, say, a transfer box still yields the
// full record shape with empty values.
func ExtractTeamProfile(html string) (profile *TeamProfile, err error) {
	defer recoverExtract("team profile", &err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	profile = &TeamProfile{
		Achievements: []Achievement{},
		Squad:        []SquadMember{},
		Transfers: TransferInfo{
			Arrivals:   []PlayerTransfer{},
			Departures: []PlayerTransfer{},
		},
		TopPlayers: TopScorers{
			Goals:   []TopPlayer{},
			Assists: []TopPlayer{},
		},
		Staff:        []StaffMember{},
		SeasonRecord: []SeasonRecordRow{},
		RelatedTeams: []RelatedTeam{},
	}

	extractTeamBasics(doc, &profile.Basics)
	profile.Achievements = extractBadgeAchievements(doc)
	extractTeamSquad(doc, profile)
	extractTeamTransfers(doc, &profile.Transfers)
	extractTopPlayers(doc, &profile.TopPlayers)
	extractTeamStaff(doc, profile)
	extractTeamFacts(doc, &profile.Facts)
	extractSeasonRecord(doc, profile)
	extractRelatedTeams(doc, profile)

	return profile, nil
}

func extractTeamBasics(doc *goquery.Document, b *TeamBasics) {
	nameEl := doc.Find(".data-header__headline-wrapper a").First()
	b.Name = strings.TrimSpace(nameEl.Text())
	b.NameLink = nameEl.AttrOr("href", "")
	if b.Name == "" {
		b.Name = NormalizeSpace(doc.Find(".data-header__headline-wrapper").Text())
	}

	crest := doc.Find(".data-header__profile-container img").First()
	b.Image.URL = crest.AttrOr("src", "")
	b.Image.Alt = crest.AttrOr("alt", "")

	leagueEl := doc.Find(".data-header__club a").First()
	b.League.Name = strings.TrimSpace(leagueEl.Text())
	b.League.Link = leagueEl.AttrOr("href", "")
	b.League.Logo = doc.Find(".data-header__box--big img").First().AttrOr("src", "")

	doc.Find(".data-header__label").Each(func(_ int, label *goquery.Selection) {
		text := NormalizeSpace(label.Text())
		content := label.Find(".data-header__content")
		link := content.Find("a").First()

		switch {
		case strings.HasPrefix(text, "League level:"):
			flag := content.Find("img.flaggenrahmen")
			b.League.Country.Name = flag.AttrOr("title", "")
			b.League.Country.Flag = flag.AttrOr("src", "")
			b.League.Level = NormalizeSpace(strings.TrimPrefix(text, "League level:"))
			if b.League.Country.Name != "" {
				b.League.Level = NormalizeSpace(strings.TrimSuffix(b.League.Level, b.League.Country.Name))
			}
		case strings.HasPrefix(text, "Table position:"):
			b.LeaguePosition.Position = NormalizeSpace(content.Text())
			b.LeaguePosition.Link = link.AttrOr("href", "")
		case strings.HasPrefix(text, "In league since:"):
			b.LeagueHistory.Years = NormalizeSpace(content.Text())
			b.LeagueHistory.Link = link.AttrOr("href", "")
		case strings.HasPrefix(text, "Squad size:"):
			b.CurrentStats.SquadSize = NormalizeSpace(content.Text())
		case strings.HasPrefix(text, "Average age:"):
			b.CurrentStats.AverageAge = NormalizeSpace(content.Text())
		case strings.HasPrefix(text, "Foreigners:"):
			b.CurrentStats.Foreigners.Count = strings.TrimSpace(link.Text())
			b.CurrentStats.Foreigners.Link = link.AttrOr("href", "")
			b.CurrentStats.Foreigners.Percentage = strings.TrimSpace(percentRe.FindString(content.Text()))
		case strings.HasPrefix(text, "National team players:"):
			b.CurrentStats.NationalTeamPlayers.Count = strings.TrimSpace(link.Text())
			b.CurrentStats.NationalTeamPlayers.Link = link.AttrOr("href", "")
		case strings.HasPrefix(text, "Stadium:"):
			b.CurrentStats.Stadium.Name = strings.TrimSpace(link.Text())
			b.CurrentStats.Stadium.NameLink = link.AttrOr("href", "")
			b.CurrentStats.Stadium.Capacity = NormalizeSpace(content.Find(".tabellenplatz").Text())
		case strings.HasPrefix(text, "Current transfer record:"):
			b.CurrentStats.CurrentTransferRecord.Value = strings.TrimSpace(link.Text())
			b.CurrentStats.CurrentTransferRecord.Link = link.AttrOr("href", "")
		}
	})

	mv := doc.Find("a.data-header__market-value-wrapper").First()
	b.MarketValue.Link = mv.AttrOr("href", "")
	b.MarketValue.Currency = strings.TrimSpace(mv.Find(".waehrung").First().Text())
	b.MarketValue.Total = numberRe.FindString(NormalizeSpace(mv.Text()))
}

// extractBadgeAchievements reads the trophy badges in the page header; team
// and player pages share this markup.
func extractBadgeAchievements(doc *goquery.Document) []Achievement {
	achievements := []Achievement{}
	doc.Find(".data-header__badge-container a").Each(func(_ int, a *goquery.Selection) {
		img := a.Find("img").First()
		achievements = append(achievements, Achievement{
			Title:     img.AttrOr("title", img.AttrOr("alt", "")),
			TitleLink: a.AttrOr("href", ""),
			Count:     strings.TrimSpace(a.Find(".data-header__success-number").Text()),
			ImageURL:  img.AttrOr("src", ""),
		})
	})
	return achievements
}

func extractTeamSquad(doc *goquery.Document, profile *TeamProfile) {
	doc.Find("#yw1 table.items > tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		nameEl := tr.Find("table.inline-table .hauptlink a").First()
		name := strings.TrimSpace(nameEl.Text())
		if name == "" {
			return
		}

		cells := tr.ChildrenFiltered("td")
		member := SquadMember{
			Number:           strings.TrimSpace(tr.Find(".rn_nummer").Text()),
			Name:             name,
			Link:             nameEl.AttrOr("href", ""),
			Position:         NormalizeSpace(tr.Find("table.inline-table tr").Last().Text()),
			Age:              NormalizeSpace(cells.Eq(2).Text()),
			Nationality:      []string{},
			MarketValue:      strings.TrimSpace(tr.Find("td.rechts a").First().Text()),
			MarketValueTrend: marketValueTrend(tr),
			Captain:          tr.Find(".kapitaenicon-table").Length() > 0,
			Injured:          tr.Find(".verletzt-table").Length() > 0,
			Suspended:        tr.Find(".gesperrt-table").Length() > 0,
		}
		tr.Find("img.flaggenrahmen").Each(func(_ int, img *goquery.Selection) {
			if title := img.AttrOr("title", ""); title != "" {
				member.Nationality = append(member.Nationality, title)
			}
		})
		profile.Squad = append(profile.Squad, member)
	})
}

// marketValueTrend picks the trend from the three mutually exclusive arrow
// icons; none of them present means unknown.
func marketValueTrend(s *goquery.Selection) string {
	switch {
	case s.Find(".green-arrow-ten").Length() > 0:
		return "up"
	case s.Find(".red-arrow-ten").Length() > 0:
		return "down"
	case s.Find(".grey-block-ten").Length() > 0:
		return "stable"
	}
	return "unknown"
}

func extractTeamTransfers(doc *goquery.Document, info *TransferInfo) {
	info.Season = seasonRe.FindString(doc.Find("#transfers .content-box-headline").First().Text())

	doc.Find("#zugaenge table.items > tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		if t, ok := extractTransferRow(tr); ok {
			info.Arrivals = append(info.Arrivals, t)
		}
	})
	doc.Find("#abgaenge table.items > tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		if t, ok := extractTransferRow(tr); ok {
			info.Departures = append(info.Departures, t)
		}
	})

	// Income is what departures brought in, expenditure what arrivals cost.
	record := doc.Find(".transfer-record")
	info.Stats.Income = TransferVolume{
		Count: len(info.Departures),
		Value: strings.TrimSpace(record.Find(".transfer-record__total--positive").Text()),
	}
	info.Stats.Expenditure = TransferVolume{
		Count: len(info.Arrivals),
		Value: strings.TrimSpace(record.Find(".transfer-record__total--negative").Text()),
	}
	info.Stats.Balance = strings.TrimSpace(record.Find(".transfer-record__total--balance").Text())
}

func extractTransferRow(tr *goquery.Selection) (PlayerTransfer, bool) {
	nameEl := tr.Find("table.inline-table .hauptlink a").First()
	name := strings.TrimSpace(nameEl.Text())
	if name == "" {
		return PlayerTransfer{}, false
	}

	t := PlayerTransfer{}
	t.Player.Name = name
	t.Player.Link = nameEl.AttrOr("href", "")
	t.Player.Image = tr.Find("img.bilderrahmen-fixed").First().AttrOr("src", "")
	t.Player.Position = NormalizeSpace(tr.Find("table.inline-table tr").Last().Text())
	t.Player.Age = NormalizeSpace(tr.Find("td.alter-transfer-cell").Text())

	flags := tr.Find("td.nat-transfer-cell img.flaggenrahmen")
	if flags.Length() > 0 {
		first := flags.First()
		t.Nationality.Primary = NationalityRef{
			Name: first.AttrOr("title", ""),
			Flag: first.AttrOr("src", ""),
		}
	}
	if flags.Length() > 1 {
		second := flags.Eq(1)
		t.Nationality.Secondary = &NationalityRef{
			Name: second.AttrOr("title", ""),
			Flag: second.AttrOr("src", ""),
		}
	}

	clubCell := tr.Find("td.verein-flagge-transfer-cell")
	clubEl := clubCell.Find("a.vereinsprofil_tooltip").First()
	t.Club.Name = strings.TrimSpace(clubEl.Text())
	t.Club.Link = clubEl.AttrOr("href", "")
	t.Club.Logo = clubCell.Find("img").First().AttrOr("src", "")
	leagueEl := clubCell.Find("a").Last()
	if href := leagueEl.AttrOr("href", ""); href != "" && href != t.Club.Link {
		t.Club.League.Name = strings.TrimSpace(leagueEl.Text())
		t.Club.League.Link = href
	}

	feeEl := tr.Find("td.rechts a").First()
	t.Fee.Amount = strings.TrimSpace(feeEl.Text())
	t.Fee.Link = feeEl.AttrOr("href", "")

	return t, true
}

func extractTopPlayers(doc *goquery.Document, top *TopScorers) {
	top.Goals = extractTopPlayerRows(doc, ".top-goalscorers tbody tr")
	top.Assists = extractTopPlayerRows(doc, ".top-assists tbody tr")
}

func extractTopPlayerRows(doc *goquery.Document, selector string) []TopPlayer {
	players := []TopPlayer{}
	doc.Find(selector).Each(func(_ int, tr *goquery.Selection) {
		nameEl := tr.Find("td.hauptlink a").First()
		name := strings.TrimSpace(nameEl.Text())
		if name == "" {
			return
		}
		cells := tr.ChildrenFiltered("td")
		players = append(players, TopPlayer{
			Name:     name,
			Link:     nameEl.AttrOr("href", ""),
			Position: NormalizeSpace(cells.Eq(1).Text()),
			Value:    NormalizeSpace(cells.Last().Text()),
		})
	})
	return players
}

func extractTeamStaff(doc *goquery.Document, profile *TeamProfile) {
	doc.Find("#mitarbeiter table.items > tbody > tr").Each(func(_ int, tr *goquery.Selection) {
		nameEl := tr.Find("table.inline-table .hauptlink a").First()
		name := strings.TrimSpace(nameEl.Text())
		if name == "" {
			return
		}
		flag := tr.Find("img.flaggenrahmen").First()
		profile.Staff = append(profile.Staff, StaffMember{
			Name:            name,
			Link:            nameEl.AttrOr("href", ""),
			Role:            NormalizeSpace(tr.Find("table.inline-table tr").Last().Text()),
			Image:           tr.Find("img.bilderrahmen-fixed").First().AttrOr("src", ""),
			Nationality:     flag.AttrOr("title", ""),
			NationalityFlag: flag.AttrOr("src", ""),
		})
	})
}

func extractTeamFacts(doc *goquery.Document, facts *TeamFacts) {
	doc.Find(".profilheader tr").Each(func(_ int, tr *goquery.Selection) {
		label := NormalizeSpace(tr.Find("th").Text())
		value := NormalizeSpace(tr.Find("td").Text())
		switch label {
		case "Official club name:":
			facts.OfficialName = value
		case "Address:":
			facts.Address = value
		case "Postal code:":
			facts.PostalCode = value
		case "Country:":
			facts.Country = value
		case "Tel:":
			facts.Phone = value
		case "Fax:":
			facts.Fax = value
		case "Website:":
			facts.Website = value
		case "Founded:":
			facts.Founded = value
		case "Members:":
			facts.Members = value
		}
	})
}

func extractSeasonRecord(doc *goquery.Document, profile *TeamProfile) {
	doc.Find(".saisonbilanz tbody tr").Each(func(_ int, tr *goquery.Selection) {
		compEl := tr.Find("a").First()
		name := strings.TrimSpace(compEl.Text())
		if name == "" {
			return
		}
		profile.SeasonRecord = append(profile.SeasonRecord, SeasonRecordRow{
			Competition: CompetitionRef{
				Name: name,
				Link: compEl.AttrOr("href", ""),
			},
			Achievement: NormalizeSpace(tr.ChildrenFiltered("td").Last().Text()),
		})
	})
}

func extractRelatedTeams(doc *goquery.Document, profile *TeamProfile) {
	doc.Find(".related-clubs li a").Each(func(_ int, a *goquery.Selection) {
		img := a.Find("img").First()
		name := NormalizeSpace(a.Text())
		if name == "" {
			name = img.AttrOr("alt", "")
		}
		if name == "" {
			return
		}
		profile.RelatedTeams = append(profile.RelatedTeams, RelatedTeam{
			Name: name,
			Link: a.AttrOr("href", ""),
			Logo: img.AttrOr("src", ""),
		})
	})
}
