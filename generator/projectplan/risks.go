package projectplan

import (
	"fmt"

	"github.com/c360studio/blueprint/generator/genid"
	"github.com/c360studio/blueprint/generator/threatmodel"
)

// Utilization above this percentage raises an over-allocation risk;
// buffers below the day floor raise a schedule risk.
const (
	utilizationCeiling = 80
	bufferFloorDays    = 5
)

var probabilityWeights = map[string]float64{
	"low":    1,
	"medium": 2,
	"high":   3,
}

var impactWeightsPM = map[string]float64{
	"low":      1,
	"medium":   2,
	"high":     3,
	"critical": 4,
}

// register synthesizes the risk register from critical/high threats plus
// schedule and utilization warnings.
func register(threats []threatmodel.Threat, allocations []Allocation, bufferDays int) []Risk {
	ids := genid.NewSequence("RISK")
	var risks []Risk

	for _, t := range threats {
		bucket := threatmodel.Bucket(t.Score)
		if bucket != threatmodel.LevelCritical && bucket != threatmodel.LevelHigh {
			continue
		}
		risks = append(risks, newRisk(ids,
			fmt.Sprintf("Security: %s", t.Name),
			fmt.Sprintf("Unmitigated %s threat against %s delays release sign-off.", t.Category, t.Component),
			string(t.Likelihood), string(t.Impact),
			"Schedule the remediation task early and gate release on its completion."))
	}

	for _, a := range allocations {
		if a.Utilization <= utilizationCeiling {
			continue
		}
		risks = append(risks, newRisk(ids,
			fmt.Sprintf("Over-allocation: %s", a.Role),
			fmt.Sprintf("%s is planned at %d%% utilization; any absence or estimate slip cascades.", a.Role, a.Utilization),
			"high", "medium",
			"Rebalance tasks across roles or extend the sprint count."))
	}

	if bufferDays < bufferFloorDays {
		risks = append(risks, newRisk(ids,
			"Insufficient schedule buffer",
			fmt.Sprintf("Only %d buffer days against the critical path; absorbing a single blocked task exhausts it.", bufferDays),
			"medium", "high",
			"Add slack to the critical-path tasks or descope a P2/P3 feature."))
	}

	return risks
}

func newRisk(ids *genid.Sequence, name, description, probability, impact, mitigation string) Risk {
	return Risk{
		ID:          ids.Next(),
		Name:        name,
		Description: description,
		Probability: probability,
		Impact:      impact,
		Score:       probabilityWeights[probability] * impactWeightsPM[impact],
		Mitigation:  mitigation,
	}
}
