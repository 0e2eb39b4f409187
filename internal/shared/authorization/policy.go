package authorization

// Action is a requested operation on a ticket resource.
type Action string

const (
	ActionCreate   Action = "create"
	ActionReadOne  Action = "read_one"
	ActionReadAll  Action = "read_all"
	ActionReadMine Action = "read_mine"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// CanPerform is the access decision for ticket operations. It is a pure
// function of the caller's identity and roles, the resource owner, and the
// requested action.
//
//	Create    always allowed (the creator becomes the owner)
//	ReadMine  always allowed (scoped to the caller's own id)
//	ReadAll   ADMIN or SUPPORT
//	ReadOne   owner, ADMIN, or SUPPORT
//	Update    owner, ADMIN, or SUPPORT
//	Delete    ADMIN only; ownership never suffices
func CanPerform(subjectID string, roles RoleSet, resourceOwnerID string, action Action) bool {
	switch action {
	case ActionCreate, ActionReadMine:
		return true
	case ActionReadAll:
		return roles.HasAny(RoleAdmin, RoleSupport)
	case ActionReadOne, ActionUpdate:
		if subjectID != "" && subjectID == resourceOwnerID {
			return true
		}
		return roles.HasAny(RoleAdmin, RoleSupport)
	case ActionDelete:
		return roles.Has(RoleAdmin)
	default:
		return false
	}
}
