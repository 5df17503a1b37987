// Package category maps fine-grained contract taxonomy labels to high-level
// risk categories and detects IP/privacy risk directly from clause text.
package category

import (
	"strings"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// taxonomyToRisk maps fine-grained contract clause taxonomy labels to
// high-level risk categories. Labels not in this table go through the
// keyword fallback in Map.
var taxonomyToRisk = map[string]interfaces.RiskCategory{
	// Liability Risk
	"Uncapped Liability":  interfaces.CategoryLiability,
	"Cap On Liability":    interfaces.CategoryLiability,
	"Covenant Not To Sue": interfaces.CategoryLiability,
	"Insurance":           interfaces.CategoryLiability,
	"Warranty Duration":   interfaces.CategoryLiability,

	// Termination Risk
	"Termination For Convenience":        interfaces.CategoryTermination,
	"Change Of Control":                  interfaces.CategoryTermination,
	"Post-Termination Services":          interfaces.CategoryTermination,
	"Notice Period To Terminate Renewal": interfaces.CategoryTermination,
	"Expiration Date":                    interfaces.CategoryTermination,
	"Renewal Term":                       interfaces.CategoryTermination,

	// Payment Risk
	"Liquidated Damages":     interfaces.CategoryPayment,
	"Minimum Commitment":     interfaces.CategoryPayment,
	"Price Restrictions":     interfaces.CategoryPayment,
	"Revenue/Profit Sharing": interfaces.CategoryPayment,
	"Volume Restriction":     interfaces.CategoryPayment,
	"Most Favored Nation":    interfaces.CategoryPayment,

	// IP Risk
	"Ip Ownership Assignment":           interfaces.CategoryIP,
	"Joint Ip Ownership":                interfaces.CategoryIP,
	"Irrevocable Or Perpetual License":  interfaces.CategoryIP,
	"License Grant":                     interfaces.CategoryIP,
	"Non-Transferable License":          interfaces.CategoryIP,
	"Affiliate License-Licensee":        interfaces.CategoryIP,
	"Affiliate License-Licensor":        interfaces.CategoryIP,
	"Unlimited/All-You-Can-Eat-License": interfaces.CategoryIP,
	"Source Code Escrow":                interfaces.CategoryIP,

	// Neutral (administrative/low-risk)
	"Document Name":                     interfaces.CategoryNeutral,
	"Parties":                           interfaces.CategoryNeutral,
	"Agreement Date":                    interfaces.CategoryNeutral,
	"Effective Date":                    interfaces.CategoryNeutral,
	"Governing Law":                     interfaces.CategoryNeutral,
	"Exclusivity":                       interfaces.CategoryNeutral,
	"No-Solicit Of Customers":           interfaces.CategoryNeutral,
	"No-Solicit Of Employees":           interfaces.CategoryNeutral,
	"Rofr/Rofo/Rofn":                    interfaces.CategoryNeutral,
	"Anti-Assignment":                   interfaces.CategoryNeutral,
	"Audit Rights":                      interfaces.CategoryNeutral,
	"Non-Compete":                       interfaces.CategoryNeutral,
	"Competitive Restriction Exception": interfaces.CategoryNeutral,
	"Third Party Beneficiary":           interfaces.CategoryNeutral,
	"Non-Disparagement":                 interfaces.CategoryNeutral,
}

// keywordGroup is one fallback rule: if any keyword occurs in the label
// text, the label maps to the group's category.
type keywordGroup struct {
	category interfaces.RiskCategory
	keywords []string
}

// fallbackGroups are evaluated in priority order; the first group with a
// matching keyword wins.
var fallbackGroups = []keywordGroup{
	{interfaces.CategoryIP, []string{"ip", "intellectual property", "patent", "trademark", "copyright", "license", "ownership"}},
	{interfaces.CategoryLiability, []string{"liability", "indemnif", "warranty", "insurance"}},
	{interfaces.CategoryTermination, []string{"termination", "expir", "renewal", "end"}},
	{interfaces.CategoryPayment, []string{"payment", "fee", "price", "cost", "revenue", "damage"}},
	{interfaces.CategoryDataPrivacy, []string{"data", "privacy", "personal", "pii", "gdpr", "ccpa"}},
}

// Map resolves a fine-grained taxonomy label to a high-level risk category.
// Unknown labels fall back to keyword scanning, then to Neutral.
func Map(label string) interfaces.RiskCategory {
	if c, ok := taxonomyToRisk[label]; ok {
		return c
	}

	lower := strings.ToLower(label)
	for _, g := range fallbackGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.category
			}
		}
	}

	return interfaces.CategoryNeutral
}

// Description returns a human-readable description of a risk category.
func Description(c interfaces.RiskCategory) string {
	switch c {
	case interfaces.CategoryLiability:
		return "Obligations to compensate for damages, defend claims, or accept unlimited liability"
	case interfaces.CategoryTermination:
		return "Clauses allowing contract termination with minimal notice or cause"
	case interfaces.CategoryDataPrivacy:
		return "Data privacy compliance obligations and regulatory exposure (GDPR/CCPA)"
	case interfaces.CategoryPayment:
		return "Financial obligations including penalties, late fees, and payment terms"
	case interfaces.CategoryIP:
		return "Intellectual property ownership, licensing, assignment, and infringement risks"
	case interfaces.CategoryNeutral:
		return "Standard contractual terms with minimal risk"
	default:
		return "Unknown risk category"
	}
}
