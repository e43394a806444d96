package certificationtype

import "go-erp/internal/shared/search"

type CertificationTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type CertificationTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CertificationTypeOption struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

type CertificationTypeSearchCriteria struct {
	ID                *int64  `json:"id"`
	CertificationName *string `json:"certificationName"`
	search.PageCriteria
}

type CertificationTypeTableInfo struct {
	ID                int64  `json:"id"`
	CertificationName string `json:"certificationName"`
}
