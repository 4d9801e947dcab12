package extractor

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const fixtureTableHTML = `
<div>
<h2 class="content-box-headline"> 5. Matchday </h2>
<table class="fixtures">
<thead>
<tr><th>Date</th><th>Time</th><th>Home team</th><th>Result</th><th>Away team</th></tr>
</thead>
<tbody>
<tr><td colspan="5">Matchday</td></tr>
<tr>
  <td>Sat 9/30/00</td>
  <td>3:00 PM</td>
  <td><a href="/bari" title="Bari 1908">(11.) Bari</a></td>
  <td><a href="/report/1">1:1</a></td>
  <td>Hellas Verona (10.)</td>
</tr>
<tr>
  <td></td>
  <td>8:30 PM</td>
  <td>(15.) Napoli</td>
  <td>1:2</td>
  <td>Juventus (4.)</td>
</tr>
</tbody>
</table>
</div>`

func TestExtractFixtureTable(t *testing.T) {
	rows, err := ExtractFixtureTable(fixtureTableHTML, "table.fixtures", FixtureTableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Idx != 1 {
		t.Errorf("expected idx 1, got %d", first.Idx)
	}
	if first.LeagueWeek != 5 {
		t.Errorf("expected leagueWeek 5, got %d", first.LeagueWeek)
	}
	if first.HomeTeam != "Bari" || first.HomeTeamOriginal != "(11.) Bari" {
		t.Errorf("unexpected home team: %q (%q)", first.HomeTeam, first.HomeTeamOriginal)
	}
	if first.HomeTeamPosition == nil || *first.HomeTeamPosition != 11 {
		t.Errorf("expected homeTeamPosition 11, got %v", first.HomeTeamPosition)
	}
	if first.Away != "Hellas Verona" {
		t.Errorf("expected away Hellas Verona, got %q", first.Away)
	}
	if first.AwayPosition == nil || *first.AwayPosition != 10 {
		t.Errorf("expected awayPosition 10, got %v", first.AwayPosition)
	}
	if first.DateTime == nil || first.DateTime.Format("2006-01-02T15:04:05Z") != "2000-09-30T13:00:00Z" {
		t.Errorf("expected dateTime 2000-09-30T13:00:00Z, got %v", first.DateTime)
	}
	if first.Extra["homeTeamLink"] != "/bari" || first.Extra["homeTeamTitle"] != "Bari 1908" {
		t.Errorf("unexpected home team link fields: %v", first.Extra)
	}
	if first.Extra["result"] != "1:1" || first.Extra["resultLink"] != "/report/1" {
		t.Errorf("unexpected result fields: %v", first.Extra)
	}

	// Second row has an empty date cell: the anchor date carries over.
	second := rows[1]
	if second.Idx != 2 {
		t.Errorf("expected idx 2, got %d", second.Idx)
	}
	if second.DateTime == nil || second.DateTime.Format("2006-01-02T15:04:05Z") != "2000-09-30T18:30:00Z" {
		t.Errorf("expected carried-over date at 18:30Z, got %v", second.DateTime)
	}
	if second.Away != "Juventus" || second.AwayPosition == nil || *second.AwayPosition != 4 {
		t.Errorf("unexpected away: %q %v", second.Away, second.AwayPosition)
	}
}

func TestExtractFixtureTable_RowJSON(t *testing.T) {
	rows, err := ExtractFixtureTable(fixtureTableHTML, "table.fixtures", FixtureTableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(rows[0])
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	for _, want := range []string{
		`"idx":1`,
		`"leagueWeek":5`,
		`"homeTeam":"Bari"`,
		`"homeTeamPosition":11`,
		`"away":"Hellas Verona"`,
		`"awayPosition":10`,
		`"dateTime":"2000-09-30T13:00:00Z"`,
		`"resultLink":"/report/1"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("row JSON missing %s: %s", want, data)
		}
	}
}

func TestExtractFixtureTable_Idempotent(t *testing.T) {
	a, err := ExtractFixtureTable(fixtureTableHTML, "table.fixtures", FixtureTableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ExtractFixtureTable(fixtureTableHTML, "table.fixtures", FixtureTableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("re-running extraction on identical input changed the result")
	}
}

func TestExtractFixtureTable_MissingTable(t *testing.T) {
	_, err := ExtractFixtureTable(fixtureTableHTML, "table.standings", FixtureTableOptions{})
	if err == nil {
		t.Fatal("expected an error for a selector matching nothing")
	}
	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("expected StructuralError, got %T: %v", err, err)
	}
	if structural.Selector != "table.standings" {
		t.Errorf("unexpected selector in error: %q", structural.Selector)
	}
}

func TestExtractFixtureTable_DropsRowsWithoutHomeTeam(t *testing.T) {
	html := `
<table class="fixtures">
<thead><tr><th>Date</th><th>Time</th><th>Home team</th><th>Result</th><th>Away team</th></tr></thead>
<tbody>
<tr><td>Sat 9/30/00</td><td>3:00 PM</td><td></td><td>1:1</td><td>Hellas Verona (10.)</td></tr>
</tbody>
</table>`

	rows, err := ExtractFixtureTable(html, "table.fixtures", FixtureTableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected the row without a home team to be dropped, got %d rows", len(rows))
	}
}

func TestExtractFixtureTable_EmptyHeader(t *testing.T) {
	html := `
<table class="fixtures">
<thead><tr><th>Home team</th><th></th></tr></thead>
<tbody>
<tr><td>Bari</td><td>wappen</td></tr>
</tbody>
</table>`

	rows, err := ExtractFixtureTable(html, "table.fixtures", FixtureTableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Extra["column2"] != "wappen" {
		t.Errorf("expected empty header to map to column2, got %v", rows[0].Extra)
	}
}

func TestExtractFixtureTable_DuplicateHeaderLastWins(t *testing.T) {
	html := `
<table class="fixtures">
<thead><tr><th>Home team</th><th>Result</th><th>Result</th></tr></thead>
<tbody>
<tr><td>Bari</td><td>first</td><td>second</td></tr>
</tbody>
</table>`

	rows, err := ExtractFixtureTable(html, "table.fixtures", FixtureTableOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Extra["result"] != "second" {
		t.Errorf("expected the later duplicate column to win, got %q", rows[0].Extra["result"])
	}
}
