package version

// Set by -ldflags "-X github.com/sagan/gtts-synthesize/version.Version=v1.0.0" at build time.
var Version = "dev"
