package extractor

import (
	"encoding/json"
	"strings"
	"testing"
)

const matchReportHTML = `
<div class="box">
  <div class="sb-endstand">1:1 (1:0)</div>
  <div class="sb-halbzeit">(1:0)</div>
  <p class="sb-zusatzinfos">
    <span><a href="/stadio-san-nicola">Stadio San Nicola</a> | Attendance: 14.500</span>
    <strong>Referee:</strong> <span class="icon"></span> <a href="/collina">Pierluigi Collina</a>
  </p>
</div>
<div class="large-6 columns aufstellung-box">
  <a class="sb-vereinslink" href="/bari">Bari</a>
  <div data-type="link">Position: 11</div>
  <div class="aufstellung-unterueberschrift">Starting Line-up: 3-5-2</div>
  <div class="aufstellung-spieler-container">
    <div class="tm-shirt-number">1</div>
    <span class="aufstellung-rueckennummer-name"><a href="/gillet">Jean-François Gillet</a></span>
  </div>
  <div class="aufstellung-spieler-container">
    <div class="tm-shirt-number">5</div>
    <span class="aufstellung-rueckennummer-name"><a href="/innocenti">Innocenti</a></span>
  </div>
  <table class="ersatzbank">
    <tr>
      <td><div class="tm-shirt-number">12</div></td>
      <td><a href="/lorenzo">Lorenzo</a></td>
      <td>Goalkeeper</td>
    </tr>
    <tr>
      <td colspan="3"><div>Manager:</div> <a href="/fascetti">Eugenio Fascetti</a></td>
    </tr>
  </table>
</div>
<div class="large-6 columns">
  <a class="sb-vereinslink" href="/hellas-verona">Hellas Verona</a>
  <div data-type="link">Position: 10</div>
  <div class="aufstellung-unterueberschrift">Starting Line-up: 4-4-2</div>
  <div class="aufstellung-spieler-container">
    <div class="tm-shirt-number">1</div>
    <span class="aufstellung-rueckennummer-name"><a href="/ferron">Fabrizio Ferron</a></span>
  </div>
  <table class="ersatzbank">
    <tr>
      <td><div class="tm-shirt-number">22</div></td>
      <td><a href="/doardo">Doardo</a></td>
      <td>Goalkeeper</td>
    </tr>
    <tr>
      <td colspan="3"><div>Manager:</div> <a href="/perotti">Attilio Perotti</a></td>
    </tr>
  </table>
</div>
<div id="sb-tore"><ul>
  <li class="sb-aktion-heim">
    <span class="sb-aktion-uhr"><span style="background-position: -36px -0px;"></span></span>
    <div class="sb-aktion-spielstand"><b>1:0</b></div>
    <div class="sb-aktion-aktion"><a href="/osmanovski">Yksel Osmanovski</a>, Left-footed shot, Assist: <a href="/andersson">Andersson</a></div>
  </li>
  <li class="sb-aktion-gast">
    <span class="sb-aktion-uhr"><span style="background-position: -324px -252px;"></span></span>
    <div class="sb-aktion-spielstand"><b>1:1</b></div>
    <div class="sb-aktion-aktion"><a href="/mutu">Adrian Mutu</a>, Penalty</div>
  </li>
</ul></div>
<div id="sb-wechsel"><ul>
  <li class="sb-aktion-gast">
    <span class="sb-aktion-uhr"><span style="background-position: -0px -36px;"></span></span>
    <div class="sb-aktion-spielstand"><span title="Injury"></span></div>
    <span class="sb-aktion-wechsel-ein"><a href="/cossato">Michele Cossato</a></span>
    <span class="sb-aktion-wechsel-aus"><a href="/bonazzoli">Emiliano Bonazzoli</a></span>
  </li>
</ul></div>
<div id="sb-karten"><ul>
  <li class="sb-aktion-heim">
    <span class="sb-aktion-uhr"><span style="background-position: -108px -36px;"></span></span>
    <div class="sb-aktion-aktion"><a href="/innocenti">Innocenti</a> 1. Yellow card, Foul</div>
  </li>
</ul></div>`

func TestExtractMatchReport(t *testing.T) {
	report, err := ExtractMatchReport(matchReportHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.MatchResult != "1:1" {
		t.Errorf("expected matchResult 1:1, got %q", report.MatchResult)
	}
	if report.FirstHalfResult != "1:0" {
		t.Errorf("expected firstHalfResult 1:0, got %q", report.FirstHalfResult)
	}
	if report.Stadium != "Stadio San Nicola" || report.StadiumLink != "/stadio-san-nicola" {
		t.Errorf("unexpected stadium: %q (%q)", report.Stadium, report.StadiumLink)
	}
	if report.Attendance != "14.500" {
		t.Errorf("expected attendance 14.500, got %q", report.Attendance)
	}
	if report.Referee != "Pierluigi Collina" || report.RefereeLink != "/collina" {
		t.Errorf("unexpected referee: %q (%q)", report.Referee, report.RefereeLink)
	}
}

func TestExtractMatchReport_Teams(t *testing.T) {
	report, err := ExtractMatchReport(matchReportHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	home := report.HomeTeam
	if home.Name != "Bari" || home.Link != "/bari" {
		t.Errorf("unexpected home team: %q (%q)", home.Name, home.Link)
	}
	if home.Position != "11" {
		t.Errorf("expected home position 11, got %q", home.Position)
	}
	if home.StartingLineUp != "Starting Line-up: 3-5-2" {
		t.Errorf("unexpected starting line-up: %q", home.StartingLineUp)
	}
	if len(home.Players) != 2 {
		t.Fatalf("expected 2 home players, got %d", len(home.Players))
	}
	if home.Players[0].Name != "Jean-François Gillet" || home.Players[0].Position != "GK" {
		t.Errorf("unexpected first player: %+v", home.Players[0])
	}
	if home.Players[1].Position != "CB" {
		t.Errorf("expected second slot position CB, got %q", home.Players[1].Position)
	}
	if len(home.Substitutes) != 1 || home.Substitutes[0].Name != "Lorenzo" {
		t.Errorf("unexpected home substitutes: %+v", home.Substitutes)
	}
	if home.Substitutes[0].Position != "Goalkeeper" {
		t.Errorf("expected substitute position Goalkeeper, got %q", home.Substitutes[0].Position)
	}
	if home.Manager != "Eugenio Fascetti" || home.ManagerLink != "/fascetti" {
		t.Errorf("unexpected home manager: %q (%q)", home.Manager, home.ManagerLink)
	}

	away := report.AwayTeam
	if away.Name != "Hellas Verona" {
		t.Errorf("unexpected away team: %q", away.Name)
	}
	if away.Manager != "Attilio Perotti" {
		t.Errorf("unexpected away manager: %q", away.Manager)
	}
}

func TestExtractMatchReport_Events(t *testing.T) {
	report, err := ExtractMatchReport(matchReportHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(report.Goals))
	}
	opener := report.Goals[0]
	if opener.Minute != "2" {
		t.Errorf("expected minute 2, got %q", opener.Minute)
	}
	if opener.Side != "home" || opener.Team != "Bari" {
		t.Errorf("unexpected goal side/team: %q %q", opener.Side, opener.Team)
	}
	if opener.Scorer != "Yksel Osmanovski" || opener.ScorerLink != "/osmanovski" {
		t.Errorf("unexpected scorer: %q (%q)", opener.Scorer, opener.ScorerLink)
	}
	if opener.Assist != "Andersson" || opener.AssistLink != "/andersson" {
		t.Errorf("unexpected assist: %q (%q)", opener.Assist, opener.AssistLink)
	}
	if opener.Score != "1:0" {
		t.Errorf("unexpected score: %q", opener.Score)
	}

	equalizer := report.Goals[1]
	if equalizer.Minute != "80" {
		t.Errorf("expected minute 80, got %q", equalizer.Minute)
	}
	if equalizer.Side != "away" || equalizer.Team != "Hellas Verona" {
		t.Errorf("unexpected goal side/team: %q %q", equalizer.Side, equalizer.Team)
	}
	if equalizer.Assist != "No assist" || equalizer.AssistLink != "" {
		t.Errorf("expected no assist, got %q (%q)", equalizer.Assist, equalizer.AssistLink)
	}

	if len(report.Substitutions) != 1 {
		t.Fatalf("expected 1 substitution, got %d", len(report.Substitutions))
	}
	sub := report.Substitutions[0]
	if sub.Minute != "11" {
		t.Errorf("expected minute 11, got %q", sub.Minute)
	}
	if sub.PlayerIn != "Michele Cossato" || sub.PlayerOut != "Emiliano Bonazzoli" {
		t.Errorf("unexpected substitution players: %q / %q", sub.PlayerIn, sub.PlayerOut)
	}
	if sub.Side != "away" || sub.Team != "Hellas Verona" {
		t.Errorf("unexpected substitution side/team: %q %q", sub.Side, sub.Team)
	}
	if sub.Reason != "Injury" {
		t.Errorf("expected reason Injury, got %q", sub.Reason)
	}

	if len(report.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(report.Cards))
	}
	card := report.Cards[0]
	if card.Minute != "14" {
		t.Errorf("expected minute 14, got %q", card.Minute)
	}
	if card.Player != "Innocenti" || card.Side != "home" || card.Team != "Bari" {
		t.Errorf("unexpected card: %+v", card)
	}
	if card.Type != "Yellow" {
		t.Errorf("expected Yellow card, got %q", card.Type)
	}
	if card.Reason != "Foul" {
		t.Errorf("expected card reason Foul, got %q", card.Reason)
	}
}

func TestExtractMatchReport_EmptyDocument(t *testing.T) {
	report, err := ExtractMatchReport("<html><body></body></html>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.MatchResult != "" || report.Stadium != "" || report.Referee != "" {
		t.Errorf("expected empty fields, got %+v", report)
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	for _, want := range []string{`"goals":[]`, `"substitutions":[]`, `"cards":[]`, `"players":[]`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %s in JSON for an empty page: %s", want, data)
		}
	}
}
