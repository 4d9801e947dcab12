package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var bracketAgeRe = regexp.MustCompile(`\((\d+)\)`)

// ExtractPlayerProfile parses a player profile page into a PlayerProfile.
// Pages of retired players, youth players etc. miss whole sections; those
// fields come back empty, never null.
func ExtractPlayerProfile(html string) (profile *PlayerProfile, err error) {
	defer recoverExtract("player profile", &err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	profile = &PlayerProfile{
		Achievements: []Achievement{},
		SocialMedia:  []SocialLink{},
	}
	profile.PersonalInfo.Position.Other = []string{}
	profile.PersonalInfo.Citizenship = []NationalityRef{}
	profile.Stats.NationalTeams = []NationalTeamStat{}

	extractPlayerHeader(doc, profile)
	extractPlayerInfoTable(doc, profile)
	extractPlayerPositions(doc, profile)
	extractNationalCareer(doc, profile)
	profile.Achievements = extractBadgeAchievements(doc)

	doc.Find(".socialmedia-icons a").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" {
			return
		}
		profile.SocialMedia = append(profile.SocialMedia, SocialLink{
			Type: a.AttrOr("title", ""),
			URL:  href,
		})
	})

	profile.YouthClubs = NormalizeSpace(doc.Find(`[data-viewport="Jugendvereine"] .content`).Text())
	profile.AdditionalInfo = NormalizeSpace(doc.Find(`[data-viewport="Sonstiges"] .content`).Text())
	profile.Pronunciation = doc.Find(".data-header audio source").First().AttrOr("src", "")

	return profile, nil
}

func extractPlayerHeader(doc *goquery.Document, p *PlayerProfile) {
	headline := doc.Find(".data-header__headline-wrapper").First()
	shirt := strings.TrimSpace(headline.Find(".data-header__shirt-number").Text())
	p.Basics.ShirtNumber = strings.TrimPrefix(shirt, "#")

	name := NormalizeSpace(headline.Text())
	if shirt != "" {
		name = NormalizeSpace(strings.Replace(name, shirt, "", 1))
	}
	p.Basics.Name = name
	if fields := strings.Fields(name); len(fields) > 1 {
		p.Basics.FirstName = strings.Join(fields[:len(fields)-1], " ")
		p.Basics.LastName = fields[len(fields)-1]
	} else {
		p.Basics.LastName = name
	}

	portrait := doc.Find(".data-header__profile-container img").First()
	p.Basics.Image.URL = portrait.AttrOr("src", "")
	p.Basics.Image.Source = portrait.AttrOr("title", "")

	clubEl := doc.Find(".data-header__club a").First()
	p.Basics.CurrentClub.Name = strings.TrimSpace(clubEl.Text())
	p.Basics.CurrentClub.Link = clubEl.AttrOr("href", "")

	doc.Find(".data-header__label").Each(func(_ int, label *goquery.Selection) {
		text := NormalizeSpace(label.Text())
		content := label.Find(".data-header__content")
		switch {
		case strings.HasPrefix(text, "Joined:"):
			p.Basics.CurrentClub.Joined = NormalizeSpace(content.Text())
		case strings.HasPrefix(text, "Contract expires:"):
			p.Basics.CurrentClub.ContractExpires = NormalizeSpace(content.Text())
		case strings.HasPrefix(text, "Current international:"):
			team := content.Find("a").First()
			p.NationalTeam.Current.Name = strings.TrimSpace(team.Text())
			p.NationalTeam.Current.Link = team.AttrOr("href", "")
		case strings.HasPrefix(text, "Caps/Goals:"):
			stats := content.Find("a")
			p.NationalTeam.Current.Appearances = strings.TrimSpace(stats.First().Text())
			p.NationalTeam.Current.Goals = strings.TrimSpace(stats.Last().Text())
		}
	})

	mv := doc.Find("a.data-header__market-value-wrapper").First()
	p.Basics.MarketValue.Value = numberRe.FindString(NormalizeSpace(mv.Text()))
	p.Basics.MarketValue.Currency = strings.TrimSpace(mv.Find(".waehrung").First().Text())
	lastUpdate := NormalizeSpace(doc.Find(".data-header__last-update").Text())
	p.Basics.MarketValue.LastUpdate = NormalizeSpace(strings.TrimPrefix(lastUpdate, "Last update:"))
}

func extractPlayerInfoTable(doc *goquery.Document, p *PlayerProfile) {
	doc.Find(".info-table span.info-table__content--regular").Each(func(_ int, label *goquery.Selection) {
		value := label.NextFiltered("span.info-table__content--bold")
		text := NormalizeSpace(value.Text())

		switch NormalizeSpace(label.Text()) {
		case "Full name:", "Name in home country:":
			p.Basics.FullName = text
		case "Date of birth/Age:":
			if m := bracketAgeRe.FindStringSubmatch(text); m != nil {
				p.PersonalInfo.Age = m[1]
				text = NormalizeSpace(bracketAgeRe.ReplaceAllString(text, ""))
			}
			p.PersonalInfo.DateOfBirth = text
		case "Date of birth:":
			p.PersonalInfo.DateOfBirth = text
		case "Age:":
			p.PersonalInfo.Age = text
		case "Place of birth:":
			flag := value.Find("img.flaggenrahmen").First()
			p.PersonalInfo.PlaceOfBirth.City = text
			p.PersonalInfo.PlaceOfBirth.Country = flag.AttrOr("title", "")
			p.PersonalInfo.PlaceOfBirth.CountryFlag = flag.AttrOr("src", "")
		case "Height:":
			p.PersonalInfo.Height = text
		case "Position:":
			p.PersonalInfo.Position.Main = text
		case "Foot:":
			p.PersonalInfo.Foot = text
		case "Shirt number:":
			if p.Basics.ShirtNumber == "" {
				p.Basics.ShirtNumber = strings.TrimPrefix(text, "#")
			}
		case "Citizenship:":
			flags := value.Find("img.flaggenrahmen")
			flags.Each(func(_ int, img *goquery.Selection) {
				p.PersonalInfo.Citizenship = append(p.PersonalInfo.Citizenship, NationalityRef{
					Name: img.AttrOr("title", ""),
					Flag: img.AttrOr("src", ""),
				})
			})
			if flags.Length() == 0 && text != "" {
				p.PersonalInfo.Citizenship = append(p.PersonalInfo.Citizenship, NationalityRef{Name: text})
			}
		}
	})
}

func extractPlayerPositions(doc *goquery.Document, p *PlayerProfile) {
	doc.Find(".detail-position__position").Each(func(_ int, dd *goquery.Selection) {
		text := NormalizeSpace(dd.Text())
		if text == "" {
			return
		}
		if p.PersonalInfo.Position.Main == "" {
			p.PersonalInfo.Position.Main = text
			return
		}
		if text != p.PersonalInfo.Position.Main {
			p.PersonalInfo.Position.Other = append(p.PersonalInfo.Position.Other, text)
		}
	})
}

func extractNationalCareer(doc *goquery.Document, p *PlayerProfile) {
	doc.Find("table.national-career tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("td")
		team := strings.TrimSpace(cells.First().Find("a").Text())
		if team == "" {
			team = NormalizeSpace(cells.First().Text())
		}
		if team == "" {
			return
		}
		p.Stats.NationalTeams = append(p.Stats.NationalTeams, NationalTeamStat{
			Team:    team,
			Debut:   NormalizeSpace(cells.Eq(1).Text()),
			Matches: NormalizeSpace(cells.Eq(2).Text()),
			Goals:   NormalizeSpace(cells.Eq(3).Text()),
		})
	})
}
