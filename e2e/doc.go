// Package e2e holds the end-to-end tests that run against the live store.
// They are only run if SAUCE_E2E is set to 1, see setup_test.go for the
// other variables.
package e2e
