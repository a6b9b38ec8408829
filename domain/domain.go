// Package domain provides the static catalog of industry domain profiles
// and deterministic domain detection from free-text project descriptions.
// Profiles are compiled into the binary and loaded once into an immutable
// in-memory catalog; they are reference data, not user state.
package domain

// Classification ranks how sensitive a data category is within a domain.
type Classification string

const (
	ClassificationPublic       Classification = "public"
	ClassificationInternal     Classification = "internal"
	ClassificationConfidential Classification = "confidential"
	ClassificationCritical     Classification = "critical"
)

// Domain is a named industry profile: the keywords used for detection,
// the stakeholders and sensitive-data categories used by the analysis
// phase, and optional compliance and threat reference data used by the
// security and architecture phases.
type Domain struct {
	Name          string          `yaml:"name"`
	DisplayName   string          `yaml:"display_name"`
	Description   string          `yaml:"description"`
	Keywords      []string        `yaml:"keywords"`
	Stakeholders  []string        `yaml:"stakeholders"`
	SensitiveData []SensitiveData `yaml:"sensitive_data"`

	// Optional reference data. Absence is not an error.
	Regulations       []Regulation  `yaml:"regulations,omitempty"`
	AuditRequirements []string      `yaml:"audit_requirements,omitempty"`
	KnownThreats      []KnownThreat `yaml:"known_threats,omitempty"`
}

// SensitiveData names one category of data the domain handles and how
// strictly it must be protected.
type SensitiveData struct {
	Name           string         `yaml:"name"`
	Classification Classification `yaml:"classification"`
}

// Regulation describes one compliance regime the domain is subject to.
type Regulation struct {
	Name         string   `yaml:"name"`
	Region       string   `yaml:"region"`
	Requirements []string `yaml:"requirements"`
}

// KnownThreat is a domain-declared threat appended verbatim to the threat
// model, with its risk score recomputed from likelihood and impact.
type KnownThreat struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Likelihood  string `yaml:"likelihood"`
	Impact      string `yaml:"impact"`
}

// HasCriticalData reports whether any sensitive-data category carries the
// critical classification.
func (d *Domain) HasCriticalData() bool {
	for _, sd := range d.SensitiveData {
		if sd.Classification == ClassificationCritical {
			return true
		}
	}
	return false
}

// RegulationNames returns the names of all declared regulations in
// declaration order.
func (d *Domain) RegulationNames() []string {
	names := make([]string, 0, len(d.Regulations))
	for _, r := range d.Regulations {
		names = append(names, r.Name)
	}
	return names
}

// clone returns a deep copy so callers can never mutate catalog state.
func (d *Domain) clone() *Domain {
	c := *d
	c.Keywords = append([]string(nil), d.Keywords...)
	c.Stakeholders = append([]string(nil), d.Stakeholders...)
	c.SensitiveData = append([]SensitiveData(nil), d.SensitiveData...)
	c.AuditRequirements = append([]string(nil), d.AuditRequirements...)
	c.KnownThreats = append([]KnownThreat(nil), d.KnownThreats...)
	c.Regulations = make([]Regulation, len(d.Regulations))
	for i, r := range d.Regulations {
		r.Requirements = append([]string(nil), r.Requirements...)
		c.Regulations[i] = r
	}
	return &c
}
