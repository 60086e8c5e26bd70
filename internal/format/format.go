package format

import (
	"fmt"
	"strings"
	"time"

	"nfl-odds-bot/internal/odds"
)

// TimeLayout renders kickoff as e.g. "9/08 1:00PM".
const TimeLayout = "1/02 3:04PM"

// PrependPlusSign renders n with a leading "+" when positive. Zero and
// negative values are rendered unchanged.
func PrependPlusSign[T int | float64](n T) string {
	if n > 0 {
		return "+" + fmt.Sprint(n)
	}
	return fmt.Sprint(n)
}

// Formatter renders one bookmaker's lines for a set of games.
type Formatter struct {
	bookmaker string
	loc       *time.Location
}

// NewFormatter creates a formatter for the given bookmaker key. Kickoff times
// are shown in loc; a nil loc means UTC.
func NewFormatter(bookmaker string, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{bookmaker: bookmaker, loc: loc}
}

// FormatMessage is shorthand for NewFormatter(bookmaker, loc).Format(games).
func FormatMessage(games []odds.Game, bookmaker string, loc *time.Location) string {
	return NewFormatter(bookmaker, loc).Format(games)
}

// Format renders a five-line block per game:
//
//	KC @ BUF - 9/08 1:00PM
//	KC +1.5 (-110) | BUF -1.5 (-110)
//	KC +150 | BUF -180
//	Over 47.5 -110 | Under 47.5 -110
//	(blank)
//
// Games the bookmaker has no offer for are left out. A missing market leaves
// its line empty.
func (f *Formatter) Format(games []odds.Game) string {
	var sb strings.Builder

	for _, game := range games {
		book, ok := game.Bookmaker(f.bookmaker)
		if !ok {
			continue
		}

		var spreads, h2h, totals string
		if m, ok := book.Market(odds.MarketSpreads); ok {
			spreads = spreadLine(m.Outcomes)
		}
		if m, ok := book.Market(odds.MarketH2H); ok {
			h2h = moneylineLine(m.Outcomes)
		}
		if m, ok := book.Market(odds.MarketTotals); ok {
			totals = totalsLine(m.Outcomes)
		}

		fmt.Fprintf(&sb, "%s @ %s - %s\n",
			AbbreviateTeam(game.AwayTeam), AbbreviateTeam(game.HomeTeam),
			game.CommenceTime.In(f.loc).Format(TimeLayout))
		sb.WriteString(spreads + "\n")
		sb.WriteString(h2h + "\n")
		sb.WriteString(totals + "\n\n")
	}

	return sb.String()
}

func moneylineLine(p odds.OutcomePair) string {
	a, b := p.Side0(), p.Side1()
	return fmt.Sprintf("%s %s | %s %s",
		AbbreviateTeam(a.Name), PrependPlusSign(a.Price),
		AbbreviateTeam(b.Name), PrependPlusSign(b.Price))
}

func spreadLine(p odds.OutcomePair) string {
	a, b := p.Side0(), p.Side1()
	return fmt.Sprintf("%s %s (%d) | %s %s (%d)",
		AbbreviateTeam(a.Name), signedPoint(a.Point), a.Price,
		AbbreviateTeam(b.Name), signedPoint(b.Point), b.Price)
}

// totalsLine prints names, points and prices as received: no team codes, no "+".
func totalsLine(p odds.OutcomePair) string {
	a, b := p.Side0(), p.Side1()
	return fmt.Sprintf("%s %s %d | %s %s %d",
		a.Name, plainPoint(a.Point), a.Price,
		b.Name, plainPoint(b.Point), b.Price)
}

func signedPoint(p *float64) string {
	if p == nil {
		return ""
	}
	return PrependPlusSign(*p)
}

func plainPoint(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}
