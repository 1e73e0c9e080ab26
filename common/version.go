package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Version of the contracts encoded as major*1_000_000 + minor*1_000 + patch.
const Version = 1_000_000

// OldestUpdatableVersion is the earliest version whose storage is readable by
// the current code without migration.
const OldestUpdatableVersion = 1_000_000

const (
	// ErrUnsupportedUpdate is thrown by CheckUpdate when the contract can't be
	// updated from the deployed version.
	ErrUnsupportedUpdate = "unsupported update"

	// ErrSameVersion is thrown by CheckUpdate when deployed contract already
	// has the current version.
	ErrSameVersion = "contract is already of the current version"
)

// CheckUpdate is called from `_deploy` on update with the version of the
// replaced code.
func CheckUpdate(from int) {
	if from == Version {
		panic(ErrSameVersion)
	}
	if from < OldestUpdatableVersion || from > Version {
		panic(ErrUnsupportedUpdate + " from version " + std.Itoa(from, 10))
	}
}

// WithVersion appends current version to the update data, so that the new
// code may check it in CheckUpdate.
func WithVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
