// Package teststrategy implements the QA phase: one functional test case
// per feature, one security test case per threat, one manual compliance
// case per compliance requirement, plus a fixed penetration-test plan and
// an automation-coverage figure.
package teststrategy

import (
	"fmt"
	"math"

	"github.com/c360studio/blueprint/generator/design"
	"github.com/c360studio/blueprint/generator/genid"
	"github.com/c360studio/blueprint/generator/threatmodel"
)

// Input carries the phase inputs.
type Input struct {
	Features               []design.Feature
	Threats                []threatmodel.Threat
	ComplianceRequirements []string
}

// TestCase categories.
const (
	CategoryFunctional = "functional"
	CategorySecurity   = "security"
	CategoryCompliance = "compliance"
)

// TestCase is one executable test specification.
type TestCase struct {
	ID        string
	Category  string
	Title     string
	RelatedID string
	Priority  string
	Steps     []string
	Expected  string
	Automated bool
}

// PentestPhase is one stage of the penetration-test plan.
type PentestPhase struct {
	Name       string
	Activities []string
}

// Output is the phase result.
type Output struct {
	TestCases          []TestCase
	AutomationCoverage int // percent, 0 to 100
	PentestPlan        []PentestPhase
}

// Design runs the QA phase.
func Design(in Input) Output {
	ids := genid.NewSequence("TC")
	var cases []TestCase

	for _, f := range in.Features {
		cases = append(cases, functionalCase(ids, f))
	}
	for _, t := range in.Threats {
		cases = append(cases, securityCase(ids, t))
	}
	for _, req := range in.ComplianceRequirements {
		cases = append(cases, complianceCase(ids, req))
	}

	return Output{
		TestCases:          cases,
		AutomationCoverage: coverage(cases),
		PentestPlan:        pentestPlan(in.Threats),
	}
}

func functionalCase(ids *genid.Sequence, f design.Feature) TestCase {
	return TestCase{
		ID:        ids.Next(),
		Category:  CategoryFunctional,
		Title:     fmt.Sprintf("Verify %s", f.Name),
		RelatedID: f.ID,
		Priority:  featurePriority(f.Priority),
		Steps: []string{
			fmt.Sprintf("Arrange the preconditions for %s", f.Name),
			"Execute the primary flow with valid inputs",
			"Execute the flow with boundary and invalid inputs",
		},
		Expected:  fmt.Sprintf("All acceptance criteria for %s hold; invalid inputs are rejected with clear errors", f.ID),
		Automated: true,
	}
}

func securityCase(ids *genid.Sequence, t threatmodel.Threat) TestCase {
	tmpl := securityCaseTemplates[t.Category]
	return TestCase{
		ID:        ids.Next(),
		Category:  CategorySecurity,
		Title:     fmt.Sprintf("Probe %s on %s", t.Category, t.Component),
		RelatedID: t.ID,
		Priority:  string(threatmodel.Bucket(t.Score)),
		Steps:     append(append([]string(nil), tmpl.steps...), "Tooling: "+tmpl.tooling),
		Expected:  tmpl.expected,
		Automated: t.Category != threatmodel.Repudiation,
	}
}

func complianceCase(ids *genid.Sequence, requirement string) TestCase {
	return TestCase{
		ID:        ids.Next(),
		Category:  CategoryCompliance,
		Title:     fmt.Sprintf("Evidence review: %s", requirement),
		RelatedID: requirement,
		Priority:  "critical",
		Steps: []string{
			fmt.Sprintf("Collect the documented controls for %s", requirement),
			"Walk through each control with the owning engineer",
			"File evidence artifacts in the compliance register",
		},
		Expected:  fmt.Sprintf("Every %s control is implemented and evidenced", requirement),
		Automated: false,
	}
}

// featurePriority maps P0 through P3 to critical/high/medium/low.
func featurePriority(p design.Priority) string {
	switch p {
	case design.PriorityP0:
		return "critical"
	case design.PriorityP1:
		return "high"
	case design.PriorityP2:
		return "medium"
	default:
		return "low"
	}
}

// coverage is round(100 × automated / total); an empty suite is 0, not a
// division fault.
func coverage(cases []TestCase) int {
	if len(cases) == 0 {
		return 0
	}
	automated := 0
	for _, c := range cases {
		if c.Automated {
			automated++
		}
	}
	return int(math.Round(100 * float64(automated) / float64(len(cases))))
}

// pentestPlan emits the fixed five phases, extending the exploitation
// activities with up to the first three threat names.
func pentestPlan(threats []threatmodel.Threat) []PentestPhase {
	plan := make([]PentestPhase, len(basePentestPlan))
	for i, p := range basePentestPlan {
		plan[i] = PentestPhase{Name: p.Name, Activities: append([]string(nil), p.Activities...)}
	}

	exploit := &plan[2]
	for i, t := range threats {
		if i == 3 {
			break
		}
		exploit.Activities = append(exploit.Activities, "Attempt: "+t.Name)
	}
	return plan
}

var basePentestPlan = []PentestPhase{
	{
		Name: "Reconnaissance",
		Activities: []string{
			"Enumerate exposed endpoints, subdomains, and third-party dependencies",
			"Fingerprint frameworks and server versions",
		},
	},
	{
		Name: "Scanning",
		Activities: []string{
			"Run authenticated and unauthenticated vulnerability scans",
			"Map attack surface against the threat model",
		},
	},
	{
		Name: "Exploitation",
		Activities: []string{
			"Attempt exploitation of scanner findings with manual verification",
		},
	},
	{
		Name: "Post-Exploitation",
		Activities: []string{
			"Assess lateral movement and data-access blast radius",
			"Document persistence opportunities without installing any",
		},
	},
	{
		Name: "Reporting",
		Activities: []string{
			"Rank findings by exploitability and business impact",
			"Deliver remediation guidance and retest criteria",
		},
	},
}
