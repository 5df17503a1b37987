// Package mitigate turns risk triggers, severity, and extracted metadata
// into prioritized mitigation recommendations per clause and an
// executive-level summary across the whole contract.
package mitigate

import (
	"fmt"
	"strings"

	"github.com/toyinlola/clausecheck/pkg/extract"
	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// Monetary thresholds that switch on amount-based recommendations.
const (
	liabilityInsuranceFloor = 100_000
	paymentTermsFloor       = 25_000
	minNoticeDays           = 30
)

// Strategies generates tailored mitigation strategies for a risky clause.
// Neutral clauses and clauses with severity None get no recommendations.
// The decision tables inspect trigger substrings case-insensitively.
func Strategies(label interfaces.RiskCategory, severity interfaces.Severity, triggers []string, monetaryValue float64, durations interfaces.Durations) []interfaces.MitigationStrategy {
	var strategies []interfaces.MitigationStrategy

	if label == interfaces.CategoryNeutral || severity == interfaces.SeverityNone {
		return strategies
	}

	switch label {
	case interfaces.CategoryLiability:
		strategies = liabilityStrategies(severity, triggers, monetaryValue)
	case interfaces.CategoryTermination:
		strategies = terminationStrategies(triggers, durations)
	case interfaces.CategoryDataPrivacy:
		strategies = privacyStrategies(triggers)
	case interfaces.CategoryPayment:
		strategies = paymentStrategies(triggers, monetaryValue)
	case interfaces.CategoryIP:
		strategies = ipStrategies(triggers)
	}

	// Generic escalation when nothing category-specific matched a
	// high-severity clause.
	if severity == interfaces.SeverityHigh && len(strategies) == 0 {
		strategies = append(strategies,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Legal and Business Review",
				Action:    "Escalate to legal counsel and senior management for review and approval.",
				Rationale: fmt.Sprintf("High-severity %s requires expert evaluation before contract execution.", label),
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "Document Assumptions",
				Action:    "Document business assumptions and risk acceptance in writing for future reference.",
				Rationale: "Creates audit trail for risk decisions and facilitates future negotiations.",
			},
		)
	}

	return strategies
}

func liabilityStrategies(severity interfaces.Severity, triggers []string, monetaryValue float64) []interfaces.MitigationStrategy {
	var out []interfaces.MitigationStrategy

	if triggersContain(triggers, "uncapped", "unlimited") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityCritical,
				Name:      "Cap Liability",
				Action:    "Negotiate a liability cap (e.g., 1x or 2x annual contract value) to limit maximum exposure.",
				Rationale: "Uncapped liability creates unlimited financial risk. Industry standard is to cap at a multiple of fees paid.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityCritical,
				Name:      "Add Exclusions",
				Action:    "Exclude liability for consequential, indirect, or punitive damages unless explicitly required.",
				Rationale: "Consequential damages can far exceed direct contract value.",
			},
		)
	}

	if monetaryValue >= liabilityInsuranceFloor {
		out = append(out, interfaces.MitigationStrategy{
			Priority:  interfaces.PriorityHigh,
			Name:      "Obtain Liability Insurance",
			Action:    fmt.Sprintf("Secure professional liability insurance covering at least $%s to transfer risk.", extract.FormatAmount(monetaryValue)),
			Rationale: "Insurance mitigates financial impact of indemnification claims.",
		})
	}

	if triggersContain(triggers, "indemnif") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Mutual Indemnification",
				Action:    "Negotiate mutual indemnification obligations to balance risk between parties.",
				Rationale: "One-sided indemnification creates asymmetric risk exposure.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "Add Carve-Outs",
				Action:    "Exclude indemnification for third-party claims arising from other party's actions or IP.",
				Rationale: "Limits scope of indemnification to your direct actions only.",
			},
		)
	}

	if severity == interfaces.SeverityHigh {
		out = append(out, interfaces.MitigationStrategy{
			Priority:  interfaces.PriorityHigh,
			Name:      "Legal Review Required",
			Action:    "Have legal counsel review liability provisions before signing.",
			Rationale: "High-severity liability clauses require expert interpretation and negotiation.",
		})
	}

	return out
}

func terminationStrategies(triggers []string, durations interfaces.Durations) []interfaces.MitigationStrategy {
	var out []interfaces.MitigationStrategy

	if triggersContain(triggers, "immediate") {
		out = append(out, interfaces.MitigationStrategy{
			Priority:  interfaces.PriorityCritical,
			Name:      "Add Notice Period",
			Action:    "Negotiate minimum 30-60 day notice period before termination becomes effective.",
			Rationale: "Provides time to find replacement services or wind down operations.",
		})
	}

	if triggersContain(triggers, "convenience", "without cause") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Add Termination Fee",
				Action:    "Require counterparty to pay termination fee (e.g., 3-6 months of fees) for convenience termination.",
				Rationale: "Compensates for investment and planned revenue loss.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Remove Unilateral Right",
				Action:    "Make termination for convenience mutual (both parties have equal rights).",
				Rationale: "Prevents one-sided termination advantage.",
			},
		)
	}

	if triggersContain(triggers, "no cure") {
		out = append(out, interfaces.MitigationStrategy{
			Priority:  interfaces.PriorityCritical,
			Name:      "Add Cure Period",
			Action:    "Negotiate 30-day cure period for non-material breaches before termination.",
			Rationale: "Provides opportunity to fix issues and preserve business relationship.",
		})
	}

	if notice := durations.NoticePeriodDays; notice > 0 && notice < minNoticeDays {
		out = append(out, interfaces.MitigationStrategy{
			Priority:  interfaces.PriorityMedium,
			Name:      "Extend Notice Period",
			Action:    fmt.Sprintf("Extend notice period from %d to 30-60 days.", notice),
			Rationale: "Short notice periods increase operational disruption risk.",
		})
	}

	return out
}

func privacyStrategies(triggers []string) []interfaces.MitigationStrategy {
	var out []interfaces.MitigationStrategy

	if triggersContain(triggers, "gdpr", "ccpa") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityCritical,
				Name:      "Implement Compliance Program",
				Action:    "Establish GDPR/CCPA compliance program with data mapping, consent management, and breach response.",
				Rationale: "Regulatory fines for non-compliance can reach millions of dollars.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Data Processing Agreement",
				Action:    "Execute Data Processing Agreement (DPA) defining roles, responsibilities, and liability allocation.",
				Rationale: "DPA clarifies processor vs. controller obligations and limits liability exposure.",
			},
		)
	}

	if triggersContain(triggers, "pii", "personal data") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Data Minimization",
				Action:    "Collect and process only minimum PII necessary for contract performance.",
				Rationale: "Reduces exposure to data breach liability and regulatory scrutiny.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Encryption & Access Controls",
				Action:    "Implement encryption at rest/in transit and role-based access controls for PII.",
				Rationale: "Technical safeguards reduce breach risk and demonstrate compliance.",
			},
		)
	}

	if triggersContain(triggers, "breach") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityCritical,
				Name:      "Incident Response Plan",
				Action:    "Develop and test data breach incident response plan with notification procedures.",
				Rationale: "Rapid breach response limits liability and regulatory penalties.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "Cyber Insurance",
				Action:    "Obtain cyber liability insurance covering breach notification costs and regulatory fines.",
				Rationale: "Transfers financial risk of data breaches and regulatory actions.",
			},
		)
	}

	return out
}

func paymentStrategies(triggers []string, monetaryValue float64) []interfaces.MitigationStrategy {
	var out []interfaces.MitigationStrategy

	if triggersContain(triggers, "liquidated damages", "penalty") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Negotiate Reasonable Damages",
				Action:    "Ensure liquidated damages are reasonable estimate of actual harm, not penalties.",
				Rationale: "Excessive penalties may be unenforceable and create budget risk.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "Add Performance Standards",
				Action:    "Define clear performance metrics and SLAs to avoid ambiguity in damages triggers.",
				Rationale: "Clarity reduces disputes and unexpected penalty assessments.",
			},
		)
	}

	if monetaryValue >= paymentTermsFloor {
		out = append(out, interfaces.MitigationStrategy{
			Priority:  interfaces.PriorityHigh,
			Name:      "Payment Terms Negotiation",
			Action:    fmt.Sprintf("Negotiate extended payment terms or milestone-based payments for $%s+.", extract.FormatAmount(monetaryValue)),
			Rationale: "Reduces cash flow impact and aligns payments with value delivery.",
		})
	}

	if triggersContain(triggers, "late", "interest") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "Reduce Late Fees",
				Action:    "Cap late payment interest at prime rate + 2-3% (avoid excessive penalties).",
				Rationale: "High interest rates compound financial impact of payment delays.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "Grace Period",
				Action:    "Negotiate 10-15 day grace period before late fees apply.",
				Rationale: "Provides buffer for administrative delays without penalty.",
			},
		)
	}

	return out
}

func ipStrategies(triggers []string) []interfaces.MitigationStrategy {
	var out []interfaces.MitigationStrategy

	if triggersContain(triggers, "ownership", "assignment") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityCritical,
				Name:      "Retain IP Ownership",
				Action:    "Negotiate to retain ownership of pre-existing IP and background IP.",
				Rationale: "Prevents loss of core competitive assets and future business flexibility.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Grant Limited License",
				Action:    "Instead of assignment, grant limited license to counterparty for contract purposes only.",
				Rationale: "Maintains IP ownership while allowing necessary use.",
			},
		)
	}

	if triggersContain(triggers, "perpetual", "irrevocable") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "Limit License Term",
				Action:    "Change perpetual license to term license tied to contract duration.",
				Rationale: "Prevents permanent loss of control over IP monetization.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "Add Reversion Rights",
				Action:    "Include IP reversion clause if contract terminates or fees stop.",
				Rationale: "Restores IP control if business relationship ends.",
			},
		)
	}

	if triggersContain(triggers, "infringement") {
		out = append(out,
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityHigh,
				Name:      "IP Indemnification",
				Action:    "Obtain IP indemnification from counterparty for their provided IP/technology.",
				Rationale: "Transfers risk of third-party IP claims to the IP provider.",
			},
			interfaces.MitigationStrategy{
				Priority:  interfaces.PriorityMedium,
				Name:      "IP Warranty",
				Action:    "Require warranty that counterparty's IP does not infringe third-party rights.",
				Rationale: "Provides contractual recourse for IP infringement claims.",
			},
		)
	}

	if triggersContain(triggers, "work for hire") {
		out = append(out, interfaces.MitigationStrategy{
			Priority:  interfaces.PriorityCritical,
			Name:      "Exclude Background IP",
			Action:    "Clarify that only new work created specifically for this project is work-for-hire.",
			Rationale: "Prevents loss of existing IP assets and reusable components.",
		})
	}

	return out
}

// triggersContain reports whether any trigger contains any of the given
// substrings, case-insensitively.
func triggersContain(triggers []string, substrings ...string) bool {
	for _, trigger := range triggers {
		lower := strings.ToLower(trigger)
		for _, s := range substrings {
			if strings.Contains(lower, s) {
				return true
			}
		}
	}
	return false
}
