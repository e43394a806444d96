package auth

const (
	RoleAdmin  = "ADMIN"
	RoleUser   = "USER"
	RoleDriver = "DRIVER"
)

const (
	PermissionAdmin  int64 = 1
	PermissionUser   int64 = 2
	PermissionDriver int64 = 3
)

var roleByPermission = map[int64]string{
	PermissionAdmin:  RoleAdmin,
	PermissionUser:   RoleUser,
	PermissionDriver: RoleDriver,
}

// RoleForPermission maps a permission id to its role name. Unknown and missing ids
// are USER everywhere in this module.
func RoleForPermission(permissionID *int64) string {
	if permissionID == nil {
		return RoleUser
	}
	if role, ok := roleByPermission[*permissionID]; ok {
		return role
	}
	return RoleUser
}

func IsValidPermission(permissionID int64) bool {
	_, ok := roleByPermission[permissionID]
	return ok
}
