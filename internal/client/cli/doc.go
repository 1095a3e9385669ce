// Package cli is the interactive presentation layer of the FitBuddy client.
//
// It owns no state of its own beyond an exercise display cache: all reads go
// through store snapshots and all mutation is dispatched as store commands.
// Input validation happens here, before dispatch, so malformed credentials
// never reach the core.
package cli
