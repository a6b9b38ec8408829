package threatmodel

// Static per-category reference tables. Mitigations and CWE/OWASP tags
// are determined purely by category.

type refs struct {
	cwe   string
	owasp string
}

var categoryRefs = map[Category]refs{
	Spoofing:              {cwe: "CWE-287", owasp: "A07:2021 Identification and Authentication Failures"},
	Tampering:             {cwe: "CWE-284", owasp: "A01:2021 Broken Access Control"},
	Repudiation:           {cwe: "CWE-778", owasp: "A09:2021 Security Logging and Monitoring Failures"},
	InformationDisclosure: {cwe: "CWE-200", owasp: "A02:2021 Cryptographic Failures"},
	DenialOfService:       {cwe: "CWE-400", owasp: "A05:2021 Security Misconfiguration"},
	ElevationOfPrivilege:  {cwe: "CWE-269", owasp: "A01:2021 Broken Access Control"},
}

var categoryMitigations = map[Category][]string{
	Spoofing: {
		"Require MFA for privileged accounts",
		"Bind sessions to client fingerprints and rotate tokens on privilege change",
		"Verify credentials against a constant-time comparison",
	},
	Tampering: {
		"Enforce server-side authorization on every mutation",
		"Use parameterized queries and input validation at trust boundaries",
		"Checksum or version records to detect out-of-band modification",
	},
	Repudiation: {
		"Log security-relevant actions with actor, timestamp, and source",
		"Ship logs to append-only storage outside the application trust zone",
	},
	InformationDisclosure: {
		"Return generic error messages to clients; keep detail in server logs",
		"Encrypt sensitive fields at rest and in transit",
		"Strip internal identifiers from API responses",
	},
	DenialOfService: {
		"Rate-limit by account and source address",
		"Set timeouts and body-size limits on every endpoint",
		"Autoscale or queue expensive operations",
	},
	ElevationOfPrivilege: {
		"Centralize role checks in one authorization layer",
		"Deny by default; require explicit grants per resource and action",
		"Re-verify privileges server-side on every request, never from client claims",
	},
}
