// Package rules loads the business-rules file: team-lead assignments,
// market groupings, and the SBD evaluation window. The file is optional;
// an absent file yields empty rules, which makes every lookup resolve to
// the Not Found sentinel and every SBD evaluation to NA.
package rules

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TeamLead maps a team lead name to the agents reporting to them.
type TeamLead struct {
	Name   string   `yaml:"name"`
	Agents []string `yaml:"agents"`
}

// Market maps a market name to its member countries.
type Market struct {
	Name      string   `yaml:"name"`
	Countries []string `yaml:"countries"`
}

// SBDWindow configures the SBD evaluation: the reporting period and the
// countries subject to the rule.
type SBDWindow struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Countries   []string
}

// Rules is the full business-rules configuration.
type Rules struct {
	TeamLeads []TeamLead
	Markets   []Market
	SBD       SBDWindow
}

type sbdFile struct {
	PeriodStart string   `yaml:"period_start"`
	PeriodEnd   string   `yaml:"period_end"`
	Countries   []string `yaml:"countries"`
}

type rulesFile struct {
	TeamLeads []TeamLead `yaml:"team_leads"`
	Markets   []Market   `yaml:"markets"`
	SBD       sbdFile    `yaml:"sbd"`
}

const dateLayout = "2006-01-02"

// Load reads the rules file at path. A missing file is not an error; it
// returns empty rules so the service can run before rules are provisioned.
func Load(path string) (Rules, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Rules{}, nil
	}
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes the YAML rules document.
func Parse(raw []byte) (Rules, error) {
	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Rules{}, fmt.Errorf("parse rules file: %w", err)
	}

	rules := Rules{
		TeamLeads: file.TeamLeads,
		Markets:   file.Markets,
		SBD:       SBDWindow{Countries: file.SBD.Countries},
	}

	if file.SBD.PeriodStart != "" {
		start, err := time.Parse(dateLayout, file.SBD.PeriodStart)
		if err != nil {
			return Rules{}, fmt.Errorf("parse sbd.period_start: %w", err)
		}
		rules.SBD.PeriodStart = start
	}
	if file.SBD.PeriodEnd != "" {
		end, err := time.Parse(dateLayout, file.SBD.PeriodEnd)
		if err != nil {
			return Rules{}, fmt.Errorf("parse sbd.period_end: %w", err)
		}
		rules.SBD.PeriodEnd = end
	}

	return rules, nil
}
