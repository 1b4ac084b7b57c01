package handlers

import (
	"errors"

	"stockroom/internal/domain"
)

var (
	errUnauthenticated = errors.New("unauthenticated")
	errForbidden       = errors.New("forbidden")
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

func (a Action) readOnly() bool {
	return a == ActionList || a == ActionRetrieve
}

// Policy is one permission predicate. ownerID is the record's owner (a
// user id for profile records).
type Policy func(caller *domain.User, ownerID string, action Action) bool

// permit ANDs the policies in order; the first denial decides the error.
// A denial with no caller is unauthenticated, otherwise forbidden.
func permit(caller *domain.User, ownerID string, action Action, policies []Policy) error {
	for _, p := range policies {
		if !p(caller, ownerID, action) {
			if caller == nil {
				return errUnauthenticated
			}
			return errForbidden
		}
	}
	return nil
}

func IsAuthenticated(caller *domain.User, _ string, _ Action) bool {
	return caller != nil
}

// OwnerOrReadOnly lets anyone read but reserves mutations for the owner.
func OwnerOrReadOnly(caller *domain.User, ownerID string, action Action) bool {
	if action.readOnly() {
		return true
	}
	return caller != nil && caller.ID == ownerID
}

// OwnerOnly restricts every object-scoped action, reads included, to the
// record's owner. Used for invoices, which are private to their owner.
func OwnerOnly(caller *domain.User, ownerID string, _ Action) bool {
	return caller != nil && caller.ID == ownerID
}

// SelfOnly reserves mutations of a profile for the profile's own user.
func SelfOnly(caller *domain.User, ownerID string, action Action) bool {
	if action.readOnly() {
		return true
	}
	return caller != nil && caller.ID == ownerID
}
