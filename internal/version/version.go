package version

// Set with -ldflags "-X github.com/egoavara/cargo-i18n/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = ""
)
