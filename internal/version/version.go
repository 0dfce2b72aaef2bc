package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/autofiler/autofiler/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/autofiler/autofiler/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/autofiler/autofiler/internal/version.Date={{.Date}}
)
