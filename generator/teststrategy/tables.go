package teststrategy

import "github.com/c360studio/blueprint/generator/threatmodel"

// securityCaseTemplate fixes the steps, tooling, and expected result for
// one STRIDE category. Selection is a pure table lookup.
type securityCaseTemplate struct {
	steps    []string
	tooling  string
	expected string
}

var securityCaseTemplates = map[threatmodel.Category]securityCaseTemplate{
	threatmodel.Spoofing: {
		steps: []string{
			"Replay captured session tokens from a different client",
			"Submit forged credentials and malformed JWTs to the login surface",
		},
		tooling:  "Burp Suite, jwt_tool",
		expected: "Forged identities are rejected and the attempts are logged",
	},
	threatmodel.Tampering: {
		steps: []string{
			"Mutate request payloads to target records outside the session's scope",
			"Attempt direct modification of stored data through injection payloads",
		},
		tooling:  "Burp Suite, sqlmap",
		expected: "All unauthorized mutations are rejected server-side",
	},
	threatmodel.Repudiation: {
		steps: []string{
			"Perform privileged actions, then verify each appears in the audit trail",
			"Attempt log suppression by flooding or malformed entries",
		},
		tooling:  "manual review of audit storage",
		expected: "Every privileged action is attributable and the trail is tamper-evident",
	},
	threatmodel.InformationDisclosure: {
		steps: []string{
			"Trigger error paths and inspect responses for stack traces or internal ids",
			"Request other tenants' resources by identifier guessing",
		},
		tooling:  "Burp Suite, ffuf",
		expected: "Responses never expose data beyond the session's authorization",
	},
	threatmodel.DenialOfService: {
		steps: []string{
			"Drive sustained request load against the heaviest endpoints",
			"Submit oversized payloads and slow-read connections",
		},
		tooling:  "k6, slowhttptest",
		expected: "Rate limits engage and the service degrades gracefully",
	},
	threatmodel.ElevationOfPrivilege: {
		steps: []string{
			"Invoke administrative endpoints with a low-privilege session",
			"Tamper with role claims in tokens and cookies",
		},
		tooling:  "Burp Suite Autorize",
		expected: "Privilege checks hold on every administrative operation",
	},
}
