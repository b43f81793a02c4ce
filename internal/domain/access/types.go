package access

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

type Resource string

const (
	ResourceUsers      Resource = "users"
	ResourceCategories Resource = "categories"
	ResourceGenres     Resource = "genres"
	ResourceTitles     Resource = "titles"
	ResourceReviews    Resource = "reviews"
	ResourceComments   Resource = "comments"
)

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

// Principal is the identity behind a request. The zero value is anonymous.
type Principal struct {
	Authenticated bool
	Role          Role
	UserID        uint
}

var Anonymous = Principal{}
