package format

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed teams.yaml
var teamsYAML []byte

var teamAbbreviations = sync.OnceValue(func() map[string]string {
	teams, err := parseTeams(teamsYAML)
	if err != nil {
		panic(err)
	}
	return teams
})

func parseTeams(data []byte) (map[string]string, error) {
	var teams map[string]string
	if err := yaml.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("parsing team table: %w", err)
	}
	return teams, nil
}

// AbbreviateTeam returns the short code for a full franchise name, e.g.
// "Kansas City Chiefs" -> "KC". Names not in the table are returned as given;
// matching is exact and case-sensitive.
func AbbreviateTeam(name string) string {
	if abbr, ok := teamAbbreviations()[name]; ok {
		return abbr
	}
	return name
}
