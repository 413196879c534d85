package core

import "clausecraft-backend-go/internal/models"

// Permission is the effective access level of a principal on a document.
// It is derived on every access and never persisted, so share changes take
// effect on the next resolution.
type Permission string

const (
	PermissionOwner Permission = "owner"
	PermissionEdit  Permission = "edit"
	PermissionRead  Permission = "read"
)

// CanMutate reports whether the level allows content and highlight mutation.
func (p Permission) CanMutate() bool {
	return p == PermissionOwner || p == PermissionEdit
}

// ResolvePermission derives the effective permission of a principal on a
// document. Ownership wins over any conflicting share entry; an unshared
// non-owner principal defaults to read-only.
func ResolvePermission(doc *models.Document, principalID string) Permission {
	if doc == nil || principalID == "" {
		return PermissionRead
	}
	if principalID == doc.OwnerID {
		return PermissionOwner
	}
	if entry, ok := doc.ShareEntryFor(principalID); ok {
		if entry.Permission == models.PermissionEdit {
			return PermissionEdit
		}
		return PermissionRead
	}
	return PermissionRead
}

// Capabilities is the set of UI affordances a permission level unlocks.
// It is computed once per request and handed to the client as an immutable
// value; affordances the principal lacks must be absent, not disabled.
type Capabilities struct {
	CanEditContent   bool `json:"canEditContent"`
	CanAnnotate      bool `json:"canAnnotate"`
	CanManageSharing bool `json:"canManageSharing"`
	CanViewHistory   bool `json:"canViewHistory"`
	CanUseAssist     bool `json:"canUseAssist"`
}

// CapabilitiesFor maps a permission level to its capability set.
func CapabilitiesFor(p Permission) Capabilities {
	switch p {
	case PermissionOwner:
		return Capabilities{
			CanEditContent:   true,
			CanAnnotate:      true,
			CanManageSharing: true,
			CanViewHistory:   true,
			CanUseAssist:     true,
		}
	case PermissionEdit:
		return Capabilities{
			CanEditContent: true,
			CanAnnotate:    true,
			CanUseAssist:   true,
		}
	default:
		return Capabilities{}
	}
}
