package archdecision

// domainDecisions holds concerns that only make sense for specific
// domain profiles, keyed by canonical domain name.
var domainDecisions = map[string][]concern{
	"secure-communication": {
		{
			title: "End-to-end encryption protocol",
			context: func(in Input) string {
				return "Message content must stay unreadable to the operator; the protocol choice fixes the trust model for every client."
			},
			drivers:             stackDrivers,
			complianceSensitive: true,
			options: []optionTemplate{
				{
					option: Option{
						Name:        "Double Ratchet with X3DH",
						Description: "Per-message forward secrecy with asynchronous session establishment.",
						Pros:        []string{"forward secrecy", "post-compromise recovery", "widely analyzed"},
						Cons:        []string{"complex multi-device story", "server stores prekey bundles"},
						Reversible:  false,
					},
					baseScore:    3,
					affects:      []string{"encryption", "key", "protocol"},
					consequences: []string{"Server never holds message plaintext", "Key backup becomes a client-side problem"},
				},
				{
					option: Option{
						Name:        "MLS group messaging",
						Description: "Tree-based group key agreement for large rooms.",
						Pros:        []string{"efficient large groups", "IETF standard"},
						Cons:        []string{"younger implementations", "heavier client"},
						Reversible:  false,
					},
					baseScore:     2,
					conflictsWith: []string{"one-to-one only"},
					affects:       []string{"encryption", "protocol"},
					consequences:  []string{"Group membership changes trigger key-tree updates"},
				},
			},
		},
	},
	"blockchain": {
		{
			title: "Consensus mechanism",
			context: func(in Input) string {
				return "Ledger finality, throughput, and validator economics all follow from the consensus choice."
			},
			drivers: stackDrivers,
			options: []optionTemplate{
				{
					option: Option{
						Name:        "Proof of Stake",
						Description: "Validators bond stake; finality through committee attestation.",
						Pros:        []string{"low energy cost", "fast finality"},
						Cons:        []string{"stake concentration risk", "slashing complexity"},
						Reversible:  false,
					},
					baseScore:    3,
					affects:      []string{"consensus", "ledger"},
					consequences: []string{"Validator onboarding and slashing rules are protocol-level code"},
				},
				{
					option: Option{
						Name:        "Proof of Authority",
						Description: "Named validator set, suited to consortium deployments.",
						Pros:        []string{"predictable throughput", "simple operations"},
						Cons:        []string{"permissioned trust model"},
						Reversible:  false,
					},
					baseScore:     2,
					conflictsWith: []string{"permissionless", "public chain"},
					affects:       []string{"consensus"},
					consequences:  []string{"Validator membership changes require governance process"},
				},
			},
		},
	},
	"malware-analysis": {
		{
			title: "Sandbox isolation boundary",
			context: func(in Input) string {
				return "Submitted samples are hostile by definition; the isolation boundary decides what a sandbox escape can reach."
			},
			drivers:             stackDrivers,
			complianceSensitive: true,
			options: []optionTemplate{
				{
					option: Option{
						Name:        "MicroVM per sample",
						Description: "Hardware-virtualized guest per detonation, destroyed after analysis.",
						Pros:        []string{"hardware isolation boundary", "clean state per run"},
						Cons:        []string{"slower startup than containers", "host needs virtualization"},
						Reversible:  false,
					},
					baseScore:     3,
					conflictsWith: []string{"nested virtualization unavailable"},
					affects:       []string{"sandbox", "isolation"},
					consequences:  []string{"Analysis throughput is bounded by microVM pool size"},
				},
				{
					option: Option{
						Name:        "Hardened container per sample",
						Description: "Namespaced container with seccomp and read-only rootfs.",
						Pros:        []string{"fast detonation", "dense packing"},
						Cons:        []string{"shared kernel with the host"},
						Reversible:  true,
					},
					baseScore:    1,
					affects:      []string{"sandbox"},
					consequences: []string{"Kernel CVEs become sandbox-escape incidents"},
				},
			},
		},
	},
}
