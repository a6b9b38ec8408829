// Package archdecision implements the architecture phase: one decision
// record per recurring architectural concern, with a fixed option menu
// scored against the supplied constraints, plus domain-triggered extra
// decisions dispatched through a lookup table.
package archdecision

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/domain"
	"github.com/c360studio/blueprint/generator/design"
	"github.com/c360studio/blueprint/generator/genid"
)

// Constraint is one externally imposed restriction on the architecture.
type Constraint struct {
	Type        string // e.g. "budget", "latency", "compliance", "team"
	Description string
	Hard        bool
	Impact      string
}

// Option is one evaluated alternative within a decision.
type Option struct {
	Name        string
	Description string
	Pros        []string
	Cons        []string
	Reversible  bool
	Score       int
}

// Decision is one architecture decision record.
type Decision struct {
	ID               string
	Title            string
	Context          string
	Drivers          []string
	Options          []Option
	Chosen           string
	Consequences     []string
	ComplianceImpact string
	HighRisk         bool
}

// Input carries the phase inputs. Domain may be nil.
type Input struct {
	Modules     []design.Module
	TechStack   []string
	Domain      *domain.Domain
	Constraints []Constraint
}

// Output is the phase result.
type Output struct {
	Decisions         []Decision
	HighRiskDecisions []string // decision ids
}

// Decide runs the architecture phase.
func Decide(in Input) Output {
	ids := genid.NewSequence("ADR")
	var decisions []Decision

	for _, concern := range standingConcerns {
		decisions = append(decisions, buildDecision(ids, concern, in))
	}

	if in.Domain != nil {
		if extra, ok := domainDecisions[in.Domain.Name]; ok {
			for _, concern := range extra {
				decisions = append(decisions, buildDecision(ids, concern, in))
			}
		}
	}

	out := Output{Decisions: decisions}
	for _, d := range decisions {
		if d.HighRisk {
			out.HighRiskDecisions = append(out.HighRiskDecisions, d.ID)
		}
	}
	return out
}

// buildDecision scores the concern's option menu against the constraints
// and selects the highest-scoring qualified option. A hard-constraint
// conflict disqualifies an option; a soft conflict subtracts a point. If
// every option is disqualified, the best-scoring one is chosen anyway and
// the decision is flagged high risk.
func buildDecision(ids *genid.Sequence, c concern, in Input) Decision {
	options := make([]Option, len(c.options))
	disqualified := make([]bool, len(c.options))

	for i, tmpl := range c.options {
		opt := tmpl.option
		opt.Score = tmpl.baseScore
		for _, constraint := range in.Constraints {
			if !conflicts(tmpl, constraint) {
				continue
			}
			if constraint.Hard {
				disqualified[i] = true
			} else {
				opt.Score--
			}
		}
		options[i] = opt
	}

	chosen, qualified := pickOption(options, disqualified)

	d := Decision{
		ID:           ids.Next(),
		Title:        c.title,
		Context:      c.context(in),
		Drivers:      c.drivers(in),
		Options:      options,
		Chosen:       options[chosen].Name,
		Consequences: append([]string(nil), c.options[chosen].consequences...),
	}

	d.HighRisk = !options[chosen].Reversible || !qualified || touchesHardConstraint(c.options[chosen], in.Constraints)
	if in.Domain != nil && c.complianceSensitive {
		if regs := in.Domain.RegulationNames(); len(regs) > 0 {
			d.ComplianceImpact = fmt.Sprintf("Chosen approach must satisfy %s controls.", strings.Join(regs, ", "))
		}
	}
	return d
}

func pickOption(options []Option, disqualified []bool) (index int, qualified bool) {
	best, bestQualified := -1, false
	for i := range options {
		if disqualified[i] {
			continue
		}
		if best == -1 || options[i].Score > options[best].Score {
			best = i
		}
		bestQualified = true
	}
	if best != -1 {
		return best, bestQualified
	}
	// Everything disqualified: take the highest raw score and flag it.
	best = 0
	for i := range options {
		if options[i].Score > options[best].Score {
			best = i
		}
	}
	return best, false
}

// conflicts reports whether a constraint's type or description mentions
// one of the option's conflict keywords. Matching is case-insensitive
// substring containment, the same heuristic used everywhere else.
func conflicts(tmpl optionTemplate, c Constraint) bool {
	text := strings.ToLower(c.Type + " " + c.Description)
	for _, kw := range tmpl.conflictsWith {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func touchesHardConstraint(tmpl optionTemplate, constraints []Constraint) bool {
	text := ""
	for _, c := range constraints {
		if c.Hard {
			text += strings.ToLower(c.Type+" "+c.Description) + " "
		}
	}
	for _, kw := range tmpl.affects {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
