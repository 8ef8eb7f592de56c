package authz

// Role is the caller's tier as resolved by the identity system. Role
// resolution itself happens outside this service; the HTTP boundary only
// receives the resolved role and asks the Authorizer whether the action is
// allowed.
type Role string

const (
	RoleStaff      Role = "staff"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

type Action string

const (
	ActionGenerateCandidates  Action = "matching:candidates"
	ActionRunAutoMatch        Action = "matching:auto"
	ActionListUnmatched       Action = "matching:unmatched"
	ActionStartReconciliation Action = "reconciliation:start"
	ActionAdvanceStatus       Action = "reconciliation:advance"
	ActionViewDashboard       Action = "dashboard:view"
	ActionCreateDiscrepancy   Action = "discrepancy:create"
	ActionReviewDiscrepancies Action = "discrepancy:review"
)

// Authorizer decides whether a role may perform an action.
type Authorizer interface {
	CanPerform(role Role, action Action) bool
}

var roleTier = map[Role]int{
	RoleStaff:      0,
	RoleManager:    1,
	RoleSupervisor: 2,
	RoleAdmin:      3,
}

// minTier holds the lowest tier allowed per action. Discrepancy review is
// admin only, everything else is tier-and-above.
var minTier = map[Action]int{
	ActionGenerateCandidates:  roleTier[RoleManager],
	ActionRunAutoMatch:        roleTier[RoleManager],
	ActionListUnmatched:       roleTier[RoleManager],
	ActionStartReconciliation: roleTier[RoleManager],
	ActionAdvanceStatus:       roleTier[RoleManager],
	ActionViewDashboard:       roleTier[RoleSupervisor],
	ActionCreateDiscrepancy:   roleTier[RoleStaff],
	ActionReviewDiscrepancies: roleTier[RoleAdmin],
}

type tierAuthorizer struct{}

func New() Authorizer {
	return tierAuthorizer{}
}

func (tierAuthorizer) CanPerform(role Role, action Action) bool {
	tier, ok := roleTier[role]
	if !ok {
		return false
	}

	min, ok := minTier[action]
	if !ok {
		return false
	}

	if action == ActionReviewDiscrepancies {
		return role == RoleAdmin
	}

	return tier >= min
}
