package permission

type CreatePermissionRequest struct {
	Description string `json:"description" binding:"required"`
}

type PermissionResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}
