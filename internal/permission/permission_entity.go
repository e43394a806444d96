package permission

type Permission struct {
	ID          int64  `gorm:"primaryKey"`
	Description string `gorm:"size:50;not null;uniqueIndex:uq_permission_description,expression:LOWER(description)"`
}
