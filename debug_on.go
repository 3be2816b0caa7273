//go:build textlayout_debug

package textlayout

// debugDefault is the default for WithDebugChecks.
const debugDefault = true
