package nvram

import (
	"crypto/subtle"

	"github.com/outofforest/nvram/wire"
)

// checkWriteAccess implements spec.md §4.10.
func (m *Manager) checkWriteAccess(record *spaceRecord, auth []byte) wire.Result {
	if m.isWriteLocked(record) {
		return wire.ResultOperationDisabled
	}
	if record.persistent.hasControl(wire.ControlWriteAuthorization) &&
		!authMatches(auth, record.persistent.authorizationValue) {
		return wire.ResultAccessDenied
	}
	return wire.ResultSuccess
}

// checkReadAccess implements spec.md §4.10.
func (m *Manager) checkReadAccess(record *spaceRecord, auth []byte) wire.Result {
	if m.isReadLocked(record) {
		return wire.ResultOperationDisabled
	}
	if record.persistent.hasControl(wire.ControlReadAuthorization) &&
		!authMatches(auth, record.persistent.authorizationValue) {
		return wire.ResultAccessDenied
	}
	return wire.ResultSuccess
}

// authMatches compares two authorization values. Equal length is required
// for a match: a length mismatch returns false at once (as
// subtle.ConstantTimeCompare itself would), and equal-length values are
// compared in constant time, so timing depends on the supplied value's
// length but not on its contents.
func authMatches(supplied, expected []byte) bool {
	if len(supplied) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare(supplied, expected) == 1
}
