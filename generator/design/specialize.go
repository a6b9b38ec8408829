package design

import "strings"

// Domain specializations are dispatched through lookup tables rather
// than type switches so the rule set stays auditable in one place.

// moduleSpecializer builds a specialized module for a feature, returning
// false when the feature does not trigger the specialization.
type moduleSpecializer func(feature Feature, base string) (Module, bool)

// moduleSpecializers keys per-feature module specialization on domain name.
var moduleSpecializers = map[string]moduleSpecializer{
	"secure-communication": secureCommModule,
}

// securityModuleSpecializers swaps the shared SecurityModule contents for
// domains with their own security service shape.
var securityModuleSpecializers = map[string]func() Module{
	"secure-communication": secureCommSecurityModule,
}

// specialize applies the domain's module specializer when one exists.
func specialize(domainName string, f Feature, base string) (Module, bool) {
	s, ok := moduleSpecializers[domainName]
	if !ok {
		return Module{}, false
	}
	return s(f, base)
}

// sessionKeywords trigger the key-exchange/ratchet module shape for
// secure-communication features.
var sessionKeywords = []string{"session", "encrypt", "message", "channel"}

// secureCommModule replaces the generic CRUD triad with key-exchange and
// ratchet method stubs when the feature or derived module name matches a
// session or encryption keyword.
func secureCommModule(f Feature, base string) (Module, bool) {
	lowerFeature := strings.ToLower(f.Name)
	lowerModule := strings.ToLower(base + "Module")
	if !containsAny(lowerFeature, sessionKeywords...) && !containsAny(lowerModule, sessionKeywords...) {
		return Module{}, false
	}

	return Module{
		Name: base + "Module",
		Type: ModuleService,
		Classes: []Class{
			{
				Name: "I" + base + "SessionService",
				Kind: "interface",
				Methods: []string{
					"initiateKeyExchange(peerIdentity) -> sessionHandle",
					"completeKeyExchange(sessionHandle, peerPublicKey) -> session",
				},
			},
			{
				Name: base + "SessionService",
				Kind: "class",
				Methods: []string{
					"initiateKeyExchange(peerIdentity) -> sessionHandle",
					"completeKeyExchange(sessionHandle, peerPublicKey) -> session",
					"advanceRatchet(session) -> session",
					"encryptMessage(session, plaintext) -> ciphertext",
					"decryptMessage(session, ciphertext) -> plaintext",
				},
			},
			{
				Name: base + "KeyStore",
				Kind: "class",
				Methods: []string{
					"storeIdentityKey(key)",
					"loadSessionState(peerIdentity) -> session",
					"rotatePreKeys(count) -> list[preKey]",
				},
			},
		},
	}, true
}

// secureCommSecurityModule carries the domain's crypto services instead
// of generic auth/RBAC.
func secureCommSecurityModule() Module {
	return Module{
		Name: SecurityModuleName,
		Type: ModuleService,
		Classes: []Class{
			{
				Name:    "KeyManagementService",
				Kind:    "class",
				Methods: []string{"generateIdentityKeypair() -> keypair", "publishPreKeys(count)", "verifySafetyNumber(peerIdentity) -> bool"},
			},
			{
				Name:    "EncryptionService",
				Kind:    "class",
				Methods: []string{"seal(session, plaintext) -> envelope", "open(session, envelope) -> plaintext"},
			},
		},
	}
}
