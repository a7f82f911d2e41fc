// Package preflight provides readiness checks for the external toolchain
// and filesystem paths that ciapress depends on.
//
// These checks run in two contexts:
//   - The build command calls Verify before touching any game; a missing
//     binary or build input aborts the invocation up front rather than
//     failing partway through a batch.
//   - The CLI "ciapress check" command uses RunAll to display the status
//     of every prerequisite at once.
package preflight
