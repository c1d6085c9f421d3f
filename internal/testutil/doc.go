// Package testutil holds helpers shared by the package tests: fixture files
// in temporary directories, logging contexts and small action graphs.
package testutil
