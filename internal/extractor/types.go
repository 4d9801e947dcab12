package extractor

import (
	"encoding/json"
	"time"
)

// FixtureRow is one accepted row of a fixture table. Recognized columns are
// promoted to fields; everything else (including per-column link/title
// values) lives in Extra and is flattened into the JSON object.
type FixtureRow struct {
	Idx              int
	LeagueWeek       int
	Date             string
	Time             string
	DateTime         *time.Time
	HomeTeam         string
	HomeTeamOriginal string
	HomeTeamPosition *int
	Away             string
	AwayOriginal     string
	AwayPosition     *int
	Extra            map[string]string
}

func (r FixtureRow) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+10)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["idx"] = r.Idx
	if r.LeagueWeek != 0 {
		out["leagueWeek"] = r.LeagueWeek
	}
	if r.Date != "" {
		out["date"] = r.Date
	}
	if r.Time != "" {
		out["time"] = r.Time
	}
	if r.DateTime != nil {
		out["dateTime"] = r.DateTime.UTC().Format(time.RFC3339)
	}
	if r.HomeTeamOriginal != "" {
		out["homeTeam"] = r.HomeTeam
		out["homeTeamOriginal"] = r.HomeTeamOriginal
		out["homeTeamPosition"] = r.HomeTeamPosition
	}
	if r.AwayOriginal != "" {
		out["away"] = r.Away
		out["awayOriginal"] = r.AwayOriginal
		out["awayPosition"] = r.AwayPosition
	}
	return json.Marshal(out)
}

// populated counts the fields the row would emit, idx and leagueWeek aside.
func (r FixtureRow) populated() int {
	n := len(r.Extra)
	if r.Date != "" {
		n++
	}
	if r.Time != "" {
		n++
	}
	if r.DateTime != nil {
		n++
	}
	if r.HomeTeamOriginal != "" {
		n += 3
	}
	if r.AwayOriginal != "" {
		n += 3
	}
	return n
}

// MatchReport is the structured form of a match report page.
type MatchReport struct {
	MatchResult     string         `json:"matchResult"`
	FirstHalfResult string         `json:"firstHalfResult"`
	Stadium         string         `json:"stadium"`
	StadiumLink     string         `json:"stadiumLink"`
	Attendance      string         `json:"attendance"`
	Referee         string         `json:"referee"`
	RefereeLink     string         `json:"refereeLink"`
	HomeTeam        MatchTeam      `json:"homeTeam"`
	AwayTeam        MatchTeam      `json:"awayTeam"`
	Goals           []Goal         `json:"goals"`
	Substitutions   []Substitution `json:"substitutions"`
	Cards           []Card         `json:"cards"`
}

type MatchTeam struct {
	Name           string         `json:"name"`
	Link           string         `json:"link"`
	Position       string         `json:"position"`
	StartingLineUp string         `json:"startingLineUp"`
	Players        []LineupPlayer `json:"players"`
	Substitutes    []LineupPlayer `json:"substitutes"`
	Manager        string         `json:"manager"`
	ManagerLink    string         `json:"managerLink"`
}

type LineupPlayer struct {
	Number     string `json:"number"`
	Name       string `json:"name"`
	PlayerLink string `json:"playerLink"`
	Position   string `json:"position"`
}

type Goal struct {
	Minute     string `json:"minute"`
	Score      string `json:"score"`
	Scorer     string `json:"scorer"`
	ScorerLink string `json:"scorerLink"`
	Team       string `json:"team"`
	Side       string `json:"side"`
	Assist     string `json:"assist"`
	AssistLink string `json:"assistLink"`
}

type Substitution struct {
	Minute        string `json:"minute"`
	PlayerIn      string `json:"playerIn"`
	PlayerInLink  string `json:"playerInLink"`
	PlayerOut     string `json:"playerOut"`
	PlayerOutLink string `json:"playerOutLink"`
	Team          string `json:"team"`
	Side          string `json:"side"`
	Reason        string `json:"reason"`
}

type Card struct {
	Minute     string `json:"minute"`
	Player     string `json:"player"`
	PlayerLink string `json:"playerLink"`
	Team       string `json:"team"`
	Side       string `json:"side"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`
}

// TeamProfile is the structured form of a team overview page.
type TeamProfile struct {
	Basics       TeamBasics        `json:"basics"`
	Achievements []Achievement     `json:"achievements"`
	Squad        []SquadMember     `json:"squad"`
	Transfers    TransferInfo      `json:"transfers"`
	TopPlayers   TopScorers        `json:"topPlayers"`
	Staff        []StaffMember     `json:"staff"`
	Facts        TeamFacts         `json:"facts"`
	SeasonRecord []SeasonRecordRow `json:"seasonRecord"`
	RelatedTeams []RelatedTeam     `json:"relatedTeams"`
}

type TeamBasics struct {
	Name           string         `json:"name"`
	NameLink       string         `json:"nameLink"`
	Image          TeamImage      `json:"image"`
	League         TeamLeague     `json:"league"`
	CurrentStats   CurrentStats   `json:"currentStats"`
	MarketValue    MarketValue    `json:"marketValue"`
	LeaguePosition LeaguePosition `json:"leaguePosition"`
	LeagueHistory  LeagueHistory  `json:"leagueHistory"`
}

type TeamImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type TeamLeague struct {
	Name    string        `json:"name"`
	Link    string        `json:"link"`
	Logo    string        `json:"logo"`
	Level   string        `json:"level"`
	Country LeagueCountry `json:"country"`
}

type LeagueCountry struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type CurrentStats struct {
	SquadSize             string                `json:"squadSize"`
	AverageAge            string                `json:"averageAge"`
	Foreigners            Foreigners            `json:"foreigners"`
	NationalTeamPlayers   NationalTeamPlayers   `json:"nationalTeamPlayers"`
	Stadium               Stadium               `json:"stadium"`
	CurrentTransferRecord CurrentTransferRecord `json:"currentTransferRecord"`
}

type Foreigners struct {
	Count      string `json:"count"`
	Percentage string `json:"percentage"`
	Link       string `json:"link"`
}

type NationalTeamPlayers struct {
	Count string `json:"count"`
	Link  string `json:"link"`
}

type Stadium struct {
	Name     string `json:"name"`
	NameLink string `json:"nameLink"`
	Capacity string `json:"capacity"`
}

type CurrentTransferRecord struct {
	Value string `json:"value"`
	Link  string `json:"link"`
}

type MarketValue struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
	Link     string `json:"link"`
}

type LeaguePosition struct {
	Position string `json:"position"`
	Link     string `json:"link"`
}

type LeagueHistory struct {
	Years string `json:"years"`
	Link  string `json:"link"`
}

type Achievement struct {
	Title     string `json:"title"`
	TitleLink string `json:"titleLink"`
	Count     string `json:"count"`
	ImageURL  string `json:"imageUrl"`
}

// SquadMember is one row of the squad table on the team overview page.
// MarketValueTrend is one of up, down, stable or unknown.
type SquadMember struct {
	Number           string   `json:"number"`
	Name             string   `json:"name"`
	Link             string   `json:"link"`
	Position         string   `json:"position"`
	Age              string   `json:"age"`
	Nationality      []string `json:"nationality"`
	MarketValue      string   `json:"marketValue"`
	MarketValueTrend string   `json:"marketValueTrend"`
	Captain          bool     `json:"captain"`
	Injured          bool     `json:"injured"`
	Suspended        bool     `json:"suspended"`
}

type TransferInfo struct {
	Season     string           `json:"season"`
	Arrivals   []PlayerTransfer `json:"arrivals"`
	Departures []PlayerTransfer `json:"departures"`
	Stats      TransferStats    `json:"stats"`
}

type PlayerTransfer struct {
	Player      TransferPlayer      `json:"player"`
	Nationality TransferNationality `json:"nationality"`
	Club        TransferClub        `json:"club"`
	Fee         TransferFee         `json:"fee"`
}

type TransferPlayer struct {
	Name     string `json:"name"`
	Link     string `json:"link"`
	Image    string `json:"image"`
	Position string `json:"position"`
	Age      string `json:"age"`
}

type TransferNationality struct {
	Primary   NationalityRef  `json:"primary"`
	Secondary *NationalityRef `json:"secondary,omitempty"`
}

type NationalityRef struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type TransferClub struct {
	Name   string            `json:"name"`
	Link   string            `json:"link"`
	Logo   string            `json:"logo"`
	League TransferClubLeague `json:"league"`
}

type TransferClubLeague struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type TransferFee struct {
	Amount string `json:"amount"`
	Link   string `json:"link"`
}

type TransferStats struct {
	Income      TransferVolume `json:"income"`
	Expenditure TransferVolume `json:"expenditure"`
	Balance     string         `json:"balance"`
}

type TransferVolume struct {
	Count int    `json:"count"`
	Value string `json:"value"`
}

type TopScorers struct {
	Goals   []TopPlayer `json:"goals"`
	Assists []TopPlayer `json:"assists"`
}

type TopPlayer struct {
	Name     string `json:"name"`
	Link     string `json:"link"`
	Position string `json:"position"`
	Value    string `json:"value"`
}

type StaffMember struct {
	Name            string `json:"name"`
	Link            string `json:"link"`
	Role            string `json:"role"`
	Image           string `json:"image"`
	Nationality     string `json:"nationality"`
	NationalityFlag string `json:"nationalityFlag"`
}

type TeamFacts struct {
	OfficialName string `json:"officialName"`
	Address      string `json:"address"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Fax          string `json:"fax"`
	Website      string `json:"website"`
	Founded      string `json:"founded"`
	Members      string `json:"members"`
}

type SeasonRecordRow struct {
	Competition CompetitionRef `json:"competition"`
	Achievement string         `json:"achievement"`
}

type CompetitionRef struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type RelatedTeam struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Logo string `json:"logo"`
}

// PlayerProfile is the structured form of a player profile page.
type PlayerProfile struct {
	Basics         PlayerBasics      `json:"basics"`
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	NationalTeam   NationalTeamInfo  `json:"nationalTeam"`
	Achievements   []Achievement     `json:"achievements"`
	Stats          PlayerStats       `json:"stats"`
	SocialMedia    []SocialLink      `json:"socialMedia"`
	YouthClubs     string            `json:"youthClubs"`
	AdditionalInfo string            `json:"additionalInfo"`
	Pronunciation  string            `json:"pronunciation"`
}

type PlayerBasics struct {
	FullName    string           `json:"fullName"`
	Name        string           `json:"name"`
	FirstName   string           `json:"firstName"`
	LastName    string           `json:"lastName"`
	ShirtNumber string           `json:"shirtNumber"`
	Image       PlayerImage      `json:"image"`
	CurrentClub CurrentClub      `json:"currentClub"`
	MarketValue PlayerMarketValue `json:"marketValue"`
}

type PlayerImage struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

type CurrentClub struct {
	Name            string `json:"name"`
	Link            string `json:"link"`
	Joined          string `json:"joined"`
	ContractExpires string `json:"contractExpires"`
}

type PlayerMarketValue struct {
	Value      string `json:"value"`
	Currency   string `json:"currency"`
	LastUpdate string `json:"lastUpdate"`
}

type PersonalInfo struct {
	DateOfBirth string         `json:"dateOfBirth"`
	Age         string         `json:"age"`
	PlaceOfBirth PlaceOfBirth  `json:"placeOfBirth"`
	Height      string         `json:"height"`
	Position    PlayerPosition `json:"position"`
	Foot        string         `json:"foot"`
	Citizenship []NationalityRef `json:"citizenship"`
}

type PlaceOfBirth struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryFlag string `json:"countryFlag"`
}

type PlayerPosition struct {
	Main  string   `json:"main"`
	Other []string `json:"other"`
}

type NationalTeamInfo struct {
	Current NationalTeamCurrent `json:"current"`
}

type NationalTeamCurrent struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Appearances string `json:"appearances"`
	Goals       string `json:"goals"`
}

type PlayerStats struct {
	NationalTeams []NationalTeamStat `json:"nationalTeams"`
}

type NationalTeamStat struct {
	Team    string `json:"team"`
	Matches string `json:"matches"`
	Goals   string `json:"goals"`
	Debut   string `json:"debut"`
}

type SocialLink struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
