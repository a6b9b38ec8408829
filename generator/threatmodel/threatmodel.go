// Package threatmodel implements the security phase: STRIDE threats are
// derived from module names via fixed substring heuristics, domain-declared
// threats are appended with recomputed scores, and every score is bucketed
// into a risk level for the risk-matrix view.
package threatmodel

import (
	"fmt"
	"strings"

	"github.com/c360studio/blueprint/domain"
	"github.com/c360studio/blueprint/generator/design"
	"github.com/c360studio/blueprint/generator/genid"
)

// Category is a STRIDE threat category.
type Category string

const (
	Spoofing              Category = "Spoofing"
	Tampering             Category = "Tampering"
	Repudiation           Category = "Repudiation"
	InformationDisclosure Category = "Information Disclosure"
	DenialOfService       Category = "Denial of Service"
	ElevationOfPrivilege  Category = "Elevation of Privilege"
)

// Level is an ordinal likelihood, impact, or risk-bucket value.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Input carries the phase inputs. Domain may be nil.
type Input struct {
	Modules []design.Module
	Domain  *domain.Domain
}

// Threat is one identified threat with its fixed mitigation list and
// CWE/OWASP references.
type Threat struct {
	ID          string
	Category    Category
	Name        string
	Description string
	Component   string
	Likelihood  Level
	Impact      Level
	Score       float64
	Mitigations []string
	CWE         string
	OWASP       string
}

// RiskMatrix groups threat ids by risk bucket.
type RiskMatrix struct {
	Critical []string
	High     []string
	Medium   []string
	Low      []string
}

// Output is the phase result.
type Output struct {
	Threats         []Threat
	Matrix          RiskMatrix
	Recommendations []string
}

// Fixed risk scores for the module-name heuristics.
const (
	spoofingScore       = 9.0
	tamperingScore      = 7.0
	disclosureDataScore = 8.0
	disclosureBaseScore = 6.5
	dosScore            = 5.5
	elevationScore      = 8.5
)

// Model runs the security phase.
func Model(in Input) Output {
	ids := genid.NewSequence("T")
	var threats []Threat

	for _, m := range in.Modules {
		threats = append(threats, moduleThreats(ids, m)...)
	}
	if in.Domain != nil {
		for _, kt := range in.Domain.KnownThreats {
			threats = append(threats, domainThreat(ids, kt))
		}
	}

	out := Output{Threats: threats}
	for _, t := range threats {
		switch Bucket(t.Score) {
		case LevelCritical:
			out.Matrix.Critical = append(out.Matrix.Critical, t.ID)
		case LevelHigh:
			out.Matrix.High = append(out.Matrix.High, t.ID)
		case LevelMedium:
			out.Matrix.Medium = append(out.Matrix.Medium, t.ID)
		default:
			out.Matrix.Low = append(out.Matrix.Low, t.ID)
		}
	}
	out.Recommendations = recommendations(out.Matrix, in.Domain)
	return out
}

// moduleThreats applies the STRIDE heuristics to one module name.
// Matching is case-insensitive substring containment, the same rule the
// domain package uses for keyword detection.
func moduleThreats(ids *genid.Sequence, m design.Module) []Threat {
	name := strings.ToLower(m.Name)
	isAuth := strings.Contains(name, "auth")
	isController := strings.Contains(name, "controller")
	isData := strings.Contains(name, "data") || strings.Contains(name, "repository")

	var threats []Threat

	if isAuth || isController {
		threats = append(threats, newThreat(ids, Spoofing, m.Name,
			fmt.Sprintf("Identity spoofing against %s", m.Name),
			fmt.Sprintf("An attacker presents forged credentials or session tokens to %s.", m.Name),
			LevelHigh, LevelCritical, spoofingScore))
	}

	if isData {
		threats = append(threats, newThreat(ids, Tampering, m.Name,
			fmt.Sprintf("Unauthorized data modification in %s", m.Name),
			fmt.Sprintf("Stored records managed by %s are altered without authorization.", m.Name),
			LevelMedium, LevelHigh, tamperingScore))
	}

	// Every module carries an information-disclosure threat; data-handling
	// modules escalate its impact and score.
	impact, score := LevelHigh, disclosureBaseScore
	if isData {
		impact, score = LevelCritical, disclosureDataScore
	}
	threats = append(threats, newThreat(ids, InformationDisclosure, m.Name,
		fmt.Sprintf("Sensitive data exposure via %s", m.Name),
		fmt.Sprintf("Error paths, verbose responses, or misconfiguration in %s leak data to unauthorized parties.", m.Name),
		LevelMedium, impact, score))

	if isController {
		threats = append(threats, newThreat(ids, DenialOfService, m.Name,
			fmt.Sprintf("Request flooding of %s", m.Name),
			fmt.Sprintf("Unthrottled request volume exhausts %s and degrades availability.", m.Name),
			LevelMedium, LevelMedium, dosScore))
	}

	if isAuth {
		threats = append(threats, newThreat(ids, ElevationOfPrivilege, m.Name,
			fmt.Sprintf("Privilege escalation through %s", m.Name),
			fmt.Sprintf("Flaws in role checks within %s let a low-privilege account act as an administrator.", m.Name),
			LevelMedium, LevelCritical, elevationScore))
	}

	return threats
}

func newThreat(ids *genid.Sequence, cat Category, component, name, description string, likelihood, impact Level, score float64) Threat {
	refs := categoryRefs[cat]
	return Threat{
		ID:          ids.Next(),
		Category:    cat,
		Name:        name,
		Description: description,
		Component:   component,
		Likelihood:  likelihood,
		Impact:      impact,
		Score:       score,
		Mitigations: append([]string(nil), categoryMitigations[cat]...),
		CWE:         refs.cwe,
		OWASP:       refs.owasp,
	}
}

// domainThreat appends a domain-declared threat verbatim with its score
// recomputed from the likelihood×impact formula.
func domainThreat(ids *genid.Sequence, kt domain.KnownThreat) Threat {
	cat := parseCategory(kt.Category)
	likelihood := parseLevel(kt.Likelihood)
	impact := parseLevel(kt.Impact)
	refs := categoryRefs[cat]
	return Threat{
		ID:          ids.Next(),
		Category:    cat,
		Name:        kt.Name,
		Description: kt.Description,
		Component:   "domain",
		Likelihood:  likelihood,
		Impact:      impact,
		Score:       Score(likelihood, impact),
		Mitigations: append([]string(nil), categoryMitigations[cat]...),
		CWE:         refs.cwe,
		OWASP:       refs.owasp,
	}
}

// Score computes likelihoodWeight × impactWeight × 1.1.
func Score(likelihood, impact Level) float64 {
	return likelihoodWeights[likelihood] * impactWeights[impact] * 1.1
}

// Bucket maps a numeric score to its risk level: 8 and above critical,
// 6 and above high, 4 and above medium, else low.
func Bucket(score float64) Level {
	switch {
	case score >= 8:
		return LevelCritical
	case score >= 6:
		return LevelHigh
	case score >= 4:
		return LevelMedium
	default:
		return LevelLow
	}
}

var likelihoodWeights = map[Level]float64{
	LevelLow:    1,
	LevelMedium: 2,
	LevelHigh:   3,
}

var impactWeights = map[Level]float64{
	LevelLow:      1,
	LevelMedium:   2,
	LevelHigh:     3,
	LevelCritical: 4,
}

func parseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelLow, LevelMedium, LevelHigh, LevelCritical:
		return Level(strings.ToLower(strings.TrimSpace(s)))
	default:
		return LevelMedium
	}
}

func parseCategory(s string) Category {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, cat := range []Category{Spoofing, Tampering, Repudiation, InformationDisclosure, DenialOfService, ElevationOfPrivilege} {
		if normalized == strings.ToLower(string(cat)) {
			return cat
		}
	}
	return InformationDisclosure
}

// recommendations assembles free-text guidance from bucket counts and the
// domain's compliance regulation names.
func recommendations(matrix RiskMatrix, d *domain.Domain) []string {
	var recs []string
	if n := len(matrix.Critical); n > 0 {
		recs = append(recs, fmt.Sprintf("Resolve the %d critical-risk threats before the first release candidate.", n))
	}
	if n := len(matrix.High); n > 0 {
		recs = append(recs, fmt.Sprintf("Schedule remediation for the %d high-risk threats within the first two sprints.", n))
	}
	recs = append(recs, "Re-run the threat model whenever module boundaries change.")
	if d != nil {
		if regs := d.RegulationNames(); len(regs) > 0 {
			recs = append(recs, fmt.Sprintf("Map every mitigation to the controls required by %s.", strings.Join(regs, ", ")))
		}
	}
	return recs
}
