// Package preflight provides readiness checks for the external tools and
// filesystem paths goprotransfer depends on.
//
// These checks run in two contexts:
//   - The run command calls CheckSystemDeps and CheckDirectoryAccess before
//     touching any footage, and refuses to start when a required check fails.
//   - The "goprotransfer check" command prints every result as a table.
package preflight
