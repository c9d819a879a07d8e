// Package framework contains a test runner that is similar to Go's testing package, but is run
// as regular Go application code rather than Go tests.
//
// The general model is:
//
// 1. Run creates a root Context and calls an action with it. The action calls Context.Run to run
// named tests, which may in turn run subtests. Each test's ID is the path of names leading to it.
//
// 2. A Context implements require.TestingT, so assertions from testify's assert and require
// packages can be used with it. A failed require assertion stops the test; a failed assert
// assertion marks it as failed and lets it continue. Skip stops it and marks it as skipped.
//
// 3. Progress is reported to a TestLogger as tests start and finish, and the Results of every
// test are returned from Run. Debug output for a test is captured and handed to the TestLogger
// at the end, so that it can be shown only for failed tests.
//
// The hosts package adapts Context to the plans.Host interface, so that plans can be executed
// by this runner.
package framework
