package archdecision

import (
	"fmt"
	"strings"
)

// concern is one recurring architectural question with its fixed option
// menu. Option menus are compiled into the binary; constraint scoring
// only reorders what is already here.
type concern struct {
	title               string
	context             func(in Input) string
	drivers             func(in Input) []string
	options             []optionTemplate
	complianceSensitive bool
}

type optionTemplate struct {
	option        Option
	baseScore     int
	conflictsWith []string // constraint keywords that conflict with this option
	affects       []string // hard-constraint keywords this option's adoption touches
	consequences  []string
}

func stackDrivers(in Input) []string {
	drivers := []string{fmt.Sprintf("%d modules in the breakdown", len(in.Modules))}
	if len(in.TechStack) > 0 {
		drivers = append(drivers, "declared stack: "+strings.Join(in.TechStack, ", "))
	}
	if in.Domain != nil && len(in.Domain.Regulations) > 0 {
		drivers = append(drivers, "compliance: "+strings.Join(in.Domain.RegulationNames(), ", "))
	}
	return drivers
}

var standingConcerns = []concern{
	{
		title: "Primary datastore",
		context: func(in Input) string {
			return fmt.Sprintf("The module breakdown includes %d modules, several of which persist domain records and need a primary datastore.", len(in.Modules))
		},
		drivers:             stackDrivers,
		complianceSensitive: true,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "PostgreSQL",
					Description: "Relational store with strong consistency and mature operational tooling.",
					Pros:        []string{"ACID transactions", "rich indexing", "wide team familiarity"},
					Cons:        []string{"vertical scaling limits", "schema migrations need discipline"},
					Reversible:  false,
				},
				baseScore:     3,
				conflictsWith: []string{"schemaless", "document store"},
				affects:       []string{"database", "datastore", "sql"},
				consequences:  []string{"Schema migrations become part of every release", "Read replicas cover reporting load"},
			},
			{
				option: Option{
					Name:        "MongoDB",
					Description: "Document store favoring flexible schemas and horizontal scale.",
					Pros:        []string{"schema flexibility", "built-in sharding"},
					Cons:        []string{"weaker multi-document transactions", "index sprawl risk"},
					Reversible:  false,
				},
				baseScore:     2,
				conflictsWith: []string{"acid", "relational", "transaction"},
				affects:       []string{"database", "datastore"},
				consequences:  []string{"Application-level validation replaces schema enforcement"},
			},
			{
				option: Option{
					Name:        "SQLite",
					Description: "Embedded store for single-node or edge deployments.",
					Pros:        []string{"zero operations", "trivial backups"},
					Cons:        []string{"single-writer", "unsuitable for horizontal scale"},
					Reversible:  true,
				},
				baseScore:     1,
				conflictsWith: []string{"scale", "multi-region", "high availability"},
				affects:       []string{"database"},
				consequences:  []string{"A later migration to a server datastore is expected"},
			},
		},
	},
	{
		title: "API style",
		context: func(in Input) string {
			return "Controllers expose the module functionality to clients and need one primary API style."
		},
		drivers: stackDrivers,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "REST",
					Description: "Resource-oriented HTTP endpoints with JSON payloads.",
					Pros:        []string{"ubiquitous tooling", "cache-friendly"},
					Cons:        []string{"over/under-fetching", "versioning overhead"},
					Reversible:  true,
				},
				baseScore:    3,
				affects:      []string{"api"},
				consequences: []string{"OpenAPI document maintained alongside the handlers"},
			},
			{
				option: Option{
					Name:        "GraphQL",
					Description: "Single typed graph endpoint with client-driven selection.",
					Pros:        []string{"precise fetching", "strong typing"},
					Cons:        []string{"query cost control", "caching complexity"},
					Reversible:  true,
				},
				baseScore:     2,
				conflictsWith: []string{"caching", "cdn"},
				affects:       []string{"api"},
				consequences:  []string{"Query depth and cost limits required before exposure"},
			},
			{
				option: Option{
					Name:        "gRPC",
					Description: "Binary RPC with generated clients, best service-to-service.",
					Pros:        []string{"low latency", "streaming"},
					Cons:        []string{"browser support needs a gateway"},
					Reversible:  true,
				},
				baseScore:     1,
				conflictsWith: []string{"browser", "public api"},
				affects:       []string{"api"},
				consequences:  []string{"A REST/JSON gateway fronts browser clients"},
			},
		},
	},
	{
		title: "Authentication strategy",
		context: func(in Input) string {
			return "The shared SecurityModule needs a session model that every controller can rely on."
		},
		drivers:             stackDrivers,
		complianceSensitive: true,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "OIDC with managed identity provider",
					Description: "Delegate login and MFA to an external IdP; the app consumes tokens.",
					Pros:        []string{"MFA and account recovery handled upstream", "audited provider"},
					Cons:        []string{"vendor dependency", "per-user cost"},
					Reversible:  false,
				},
				baseScore:     3,
				conflictsWith: []string{"offline", "air-gapped", "budget"},
				affects:       []string{"auth", "identity"},
				consequences:  []string{"Session lifetime follows the IdP's token policy"},
			},
			{
				option: Option{
					Name:        "Self-hosted sessions",
					Description: "First-party credential store with server-side sessions.",
					Pros:        []string{"full control", "no vendor"},
					Cons:        []string{"password storage liability", "MFA built in-house"},
					Reversible:  false,
				},
				baseScore:    2,
				affects:      []string{"auth"},
				consequences: []string{"Credential hashing, lockout, and recovery flows are first-party code"},
			},
		},
	},
	{
		title: "Encryption approach",
		context: func(in Input) string {
			if in.Domain != nil && in.Domain.HasCriticalData() {
				return "The domain profile classifies data as critical; encryption scope and key custody must be fixed early."
			}
			return "Baseline encryption posture for data in transit and at rest."
		},
		drivers:             stackDrivers,
		complianceSensitive: true,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "Provider-managed KMS",
					Description: "Cloud KMS envelope encryption for stores and secrets.",
					Pros:        []string{"key rotation automated", "audit trail built in"},
					Cons:        []string{"cloud coupling"},
					Reversible:  true,
				},
				baseScore:     3,
				conflictsWith: []string{"on-prem", "air-gapped"},
				affects:       []string{"encryption", "key"},
				consequences:  []string{"Key policy changes ship through infrastructure code"},
			},
			{
				option: Option{
					Name:        "Application-layer field encryption",
					Description: "Encrypt critical fields in the application before persistence.",
					Pros:        []string{"protects against datastore compromise", "portable"},
					Cons:        []string{"query limitations on encrypted fields", "key handling in code"},
					Reversible:  false,
				},
				baseScore:    2,
				affects:      []string{"encryption"},
				consequences: []string{"Indexes on encrypted fields require blind-index design"},
			},
		},
	},
	{
		title: "Caching layer",
		context: func(in Input) string {
			return "Read-heavy endpoints benefit from a shared cache; the failure mode must be a slower system, never a wrong one."
		},
		drivers: stackDrivers,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "Redis",
					Description: "Shared in-memory cache with TTL-based invalidation.",
					Pros:        []string{"battle-tested", "rich data structures"},
					Cons:        []string{"another stateful service to operate"},
					Reversible:  true,
				},
				baseScore:     3,
				conflictsWith: []string{"single binary", "no infra"},
				affects:       []string{"cache"},
				consequences:  []string{"Cache keys carry entity versions to avoid stale reads"},
			},
			{
				option: Option{
					Name:        "In-process cache",
					Description: "Per-instance memory cache; no network hop, no shared state.",
					Pros:        []string{"zero infrastructure", "lowest latency"},
					Cons:        []string{"cold per instance", "invalidations are local"},
					Reversible:  true,
				},
				baseScore:    2,
				affects:      []string{"cache"},
				consequences: []string{"Horizontal scaling multiplies cache misses"},
			},
		},
	},
	{
		title: "Logging and observability",
		context: func(in Input) string {
			return "Every module logs through the shared CommonModule logger; the format and sink must be decided once."
		},
		drivers:             stackDrivers,
		complianceSensitive: true,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "Structured JSON logs to a central collector",
					Description: "Key-value logs shipped to one queryable store with retention policy.",
					Pros:        []string{"machine-queryable", "supports audit requirements"},
					Cons:        []string{"collector cost"},
					Reversible:  true,
				},
				baseScore:    3,
				affects:      []string{"logging", "audit"},
				consequences: []string{"Log schema changes are reviewed like API changes"},
			},
			{
				option: Option{
					Name:        "Plaintext logs on hosts",
					Description: "Local files with rotation, inspected on demand.",
					Pros:        []string{"no infrastructure"},
					Cons:        []string{"no cross-host correlation", "weak for audits"},
					Reversible:  true,
				},
				baseScore:     1,
				conflictsWith: []string{"audit", "compliance"},
				affects:       []string{"logging"},
				consequences:  []string{"Incident response requires host access"},
			},
		},
	},
	{
		title: "Deployment strategy",
		context: func(in Input) string {
			return "Releases must be frequent and reversible; the rollout mechanism decides how much blast radius a bad build gets."
		},
		drivers: stackDrivers,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "Rolling deployment with health gates",
					Description: "Replace instances gradually, gated on readiness checks.",
					Pros:        []string{"no extra capacity", "built into orchestrators"},
					Cons:        []string{"mixed versions during rollout"},
					Reversible:  true,
				},
				baseScore:    3,
				affects:      []string{"deploy"},
				consequences: []string{"APIs stay backward compatible across one release"},
			},
			{
				option: Option{
					Name:        "Blue/green deployment",
					Description: "Full parallel environment with atomic traffic switch.",
					Pros:        []string{"instant rollback", "no mixed versions"},
					Cons:        []string{"double capacity during release"},
					Reversible:  true,
				},
				baseScore:     2,
				conflictsWith: []string{"budget", "cost"},
				affects:       []string{"deploy"},
				consequences:  []string{"Database migrations must be forward-and-backward compatible"},
			},
		},
	},
	{
		title: "Error-handling convention",
		context: func(in Input) string {
			return "Controllers, services, and repositories need one convention for propagating and reporting failures."
		},
		drivers: stackDrivers,
		options: []optionTemplate{
			{
				option: Option{
					Name:        "Typed error taxonomy with wrapping",
					Description: "A small set of sentinel error kinds wrapped with context at each layer.",
					Pros:        []string{"callers can branch on kind", "messages keep their chain"},
					Cons:        []string{"taxonomy needs curation"},
					Reversible:  true,
				},
				baseScore:    3,
				affects:      []string{"error"},
				consequences: []string{"New error kinds require a taxonomy review"},
			},
			{
				option: Option{
					Name:        "Exception-style bubbling",
					Description: "Raise at the failure point; translate once at the controller boundary.",
					Pros:        []string{"minimal plumbing"},
					Cons:        []string{"easy to leak internals", "harder to branch on cause"},
					Reversible:  true,
				},
				baseScore:    2,
				affects:      []string{"error"},
				consequences: []string{"A single boundary translator owns client-facing messages"},
			},
		},
	},
}
