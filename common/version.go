package common

const (
	PRODUCT_NAME  = `debsbom`
	ENV_PREFIX    = `DEBSBOM`
	SETTINGS_ENV  = `DEBSBOM_SETTINGS`
	DefaultIndex  = `packages/Packages`
	DefaultSbom   = `CycloneDX`
	DefaultOutput = `json`
)

// Version is overridden at link time with -ldflags "-X".
var Version = `v0.1.0`
