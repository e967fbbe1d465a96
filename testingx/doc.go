// Package testingx provides testing helpers and fakes for eggdoc packages.
//
// # Overview
//
// testingx contains small utilities to speed up unit tests, including a
// mock logger with capture capabilities, a helper to construct contexts
// with run metadata, and a writer for fake executables used by the
// doxygen runner tests.
//
// # Features
//
//   - MockLogger with in-memory capture and assertions
//   - CaptureLogger rendering one line per call
//   - Context helper for run metadata
//   - Error assertion helpers for core/errors codes
//   - FakeExecutable shell scripts in a temporary directory
//
// # Usage
//
//	logger := testingx.NewMockLogger(t)
//	exe := testingx.FakeExecutable(t, `echo "Generating docs"`)
//
// # Layer
//
// testingx is an auxiliary package for tests only and depends on core packages.
package testingx
