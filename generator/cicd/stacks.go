package cicd

// stackTemplates fixes the lint/test/build stages per recognized tech
// stack string.
var stackTemplates = map[string][]Stage{
	"go": {
		{
			Name:        "lint-go",
			Description: "Static analysis for Go sources",
			Commands:    []string{"go vet ./...", "golangci-lint run ./..."},
		},
		{
			Name:        "test-go",
			Description: "Go test suite with race detector",
			Commands:    []string{"go test -race ./..."},
		},
		{
			Name:        "build-go",
			Description: "Compile release binaries",
			Commands:    []string{"CGO_ENABLED=0 go build ./..."},
		},
	},
	"python": {
		{
			Name:        "lint-python",
			Description: "Lint and type-check Python sources",
			Commands:    []string{"ruff check .", "mypy src"},
		},
		{
			Name:        "test-python",
			Description: "Python test suite with coverage",
			Commands:    []string{"pytest --cov"},
		},
	},
	"typescript": {
		{
			Name:        "lint-ts",
			Description: "Lint and type-check TypeScript sources",
			Commands:    []string{"npm run lint", "npx tsc --noEmit"},
		},
		{
			Name:        "test-ts",
			Description: "Node test suite",
			Commands:    []string{"npm test"},
		},
		{
			Name:        "build-ts",
			Description: "Production bundle",
			Commands:    []string{"npm run build"},
		},
	},
	"java": {
		{
			Name:        "test-java",
			Description: "Maven verify with unit tests",
			Commands:    []string{"mvn -B verify"},
		},
	},
	"rust": {
		{
			Name:        "lint-rust",
			Description: "Clippy lints",
			Commands:    []string{"cargo clippy -- -D warnings"},
		},
		{
			Name:        "test-rust",
			Description: "Cargo test suite",
			Commands:    []string{"cargo test"},
		},
	},
}
