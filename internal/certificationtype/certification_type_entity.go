package certificationtype

type CertificationType struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null;uniqueIndex:uq_certification_type_name,expression:LOWER(name)"`
}
