// Package selftests contains a plan that checks the plans package's ordering and isolation
// guarantees, written with the plans package itself. The planrunner command runs it on the
// framework runner.
//
// Most of the checks build and run small inner plans on a throwaway host and make assertions
// about what happened, so that failures which are supposed to happen inside an inner plan do
// not show up as failures of the contract plan.
package selftests
