package engine

import (
	"strings"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/rules"
)

// TeamLeadFor resolves the team lead responsible for a case owner by
// case-insensitive membership in the configured agent lists.
func TeamLeadFor(caseOwner string, leads []rules.TeamLead) (string, bool) {
	for _, lead := range leads {
		for _, agent := range lead.Agents {
			if strings.EqualFold(agent, caseOwner) {
				return lead.Name, true
			}
		}
	}
	return "", false
}

// MarketFor resolves the market a country belongs to by case-insensitive
// membership in the configured country lists.
func MarketFor(country string, markets []rules.Market) (string, bool) {
	for _, market := range markets {
		for _, member := range market.Countries {
			if strings.EqualFold(member, country) {
				return market.Name, true
			}
		}
	}
	return "", false
}
