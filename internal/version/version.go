package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/brennanr9/claude-profile-manager/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/brennanr9/claude-profile-manager/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/brennanr9/claude-profile-manager/internal/version.Date={{.Date}}
)
