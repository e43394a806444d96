package auth

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type MeResponse struct {
	EmployeeID   int64  `json:"employeeId"`
	Name         string `json:"name"`
	PermissionID *int64 `json:"permissionId"`
	Role         string `json:"role"`
}
