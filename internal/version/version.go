package version

// Version is overridden at build time with -ldflags "-X kmercount/internal/version.Version=...".
var Version = "dev"
