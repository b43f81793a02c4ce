package access

// Authorize decides whether a principal may perform an action on a resource kind.
// ownerID is the author of the target review/comment; it is ignored for other
// resources. Rules are checked in order, first match wins.
func Authorize(p Principal, action Action, resource Resource, ownerID uint) Decision {
	readOnly := action == ActionList || action == ActionRetrieve

	// Catalog content and user-generated content is world-readable.
	if readOnly && resource != ResourceUsers {
		return Allow
	}

	if !p.Authenticated {
		return DenyUnauthenticated
	}

	if p.Role == RoleAdmin {
		return Allow
	}

	switch resource {
	case ResourceUsers:
		// Admin-only surface. Self-service goes through /users/me/,
		// which the HTTP layer authorizes separately.
		return DenyForbidden

	case ResourceCategories, ResourceGenres, ResourceTitles:
		return DenyForbidden

	case ResourceReviews, ResourceComments:
		if action == ActionCreate {
			return Allow
		}
		if p.Role == RoleModerator || p.UserID == ownerID {
			return Allow
		}
		return DenyForbidden
	}

	return DenyForbidden
}
