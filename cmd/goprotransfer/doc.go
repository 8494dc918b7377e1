// Package main hosts the goprotransfer CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the run logger
// and hands the heavy lifting to internal/organizer. Add behaviour to the
// internal packages first and surface it here through commands or flags.
package main
