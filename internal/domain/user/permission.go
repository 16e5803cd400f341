package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance Regularization
	PermissionRegularizationViewOwn Permission = "regularization.view_own"
	PermissionRegularizationCreate  Permission = "regularization.create"
	PermissionRegularizationApprove Permission = "regularization.approve"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Payroll
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollViewAll Permission = "payroll.view_all"
)

var basePermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionRegularizationViewOwn,
	PermissionRegularizationCreate,
	PermissionPayrollViewOwn,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: append([]Permission{
		PermissionRegularizationApprove,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionPayrollViewAll,
	}, basePermissions...),
	RoleHR: append([]Permission{
		PermissionRegularizationApprove,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionPayrollViewAll,
	}, basePermissions...),
	RoleManager: append([]Permission{
		PermissionRegularizationApprove,
		PermissionEmployeeViewAll,
	}, basePermissions...),
	RoleFinance: append([]Permission{
		PermissionPayrollViewAll,
	}, basePermissions...),
	RoleEmployee: basePermissions,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
