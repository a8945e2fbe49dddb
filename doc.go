// Package flowenv provides a versioned registry for workflow environment
// configurations.
//
// Each workflow owns an append-only revision history; publishing a new
// revision requires a strictly increasing semantic version, and any two
// published revisions can be structurally diffed.  Configuration documents
// are loaded from any URL scheme supported by viant/afs and support
// environment variable and secret expansion.
//
// Flowenv is designed to be embedded in host applications.  End-users
// typically interact via the high-level Service façade exposed by the root
// package:
//
//	srv := flowenv.New()
//	_ = srv.Publish(ctx, "member_eligibility", "1.0.0", config)
//	latest, found, _ := srv.GetLatest(ctx, "member_eligibility")
//	diff, _ := srv.DiffEnv(ctx, "member_eligibility", "1.0.0", "1.1.0")
//
// For more details see the README and individual sub-packages.
package flowenv
