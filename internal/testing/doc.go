// Package testing contains fixture builders shared by command and integration tests.
package testing

const (
	// testDirPermissions is the permission mode for creating fixture directories.
	testDirPermissions = 0o750

	// testFilePermissions is the permission mode for creating fixture files.
	testFilePermissions = 0o600
)
