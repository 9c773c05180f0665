package envvalidator

// Version is the current release of the module. Overridden at build time via
// -ldflags "-X github.com/wajahatiqbal22/env-config-validator.Version=...".
var Version = "0.3.0"
