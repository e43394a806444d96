package vehicle

import "go-erp/internal/shared/search"

type CreateVehicleRequest struct {
	RegistrationPlate string  `json:"registrationPlate" binding:"required"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	Capacity          float64 `json:"capacity"`
	ProductionYear    int     `json:"productionYear"`
	Available         *bool   `json:"available"`
}

type UpdateVehicleRequest struct {
	RegistrationPlate *string  `json:"registrationPlate"`
	Brand             *string  `json:"brand"`
	Model             *string  `json:"model"`
	Capacity          *float64 `json:"capacity"`
	ProductionYear    *int     `json:"productionYear"`
	Available         *bool    `json:"available"`
}

type VehicleResponse struct {
	ID                int64   `json:"id"`
	RegistrationPlate string  `json:"registrationPlate"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	Capacity          float64 `json:"capacity"`
	ProductionYear    int     `json:"productionYear"`
	Available         bool    `json:"available"`
}

type VehicleSearchCriteria struct {
	ID                *int64   `json:"id"`
	RegistrationPlate *string  `json:"registrationPlate"`
	Brand             *string  `json:"brand"`
	Model             *string  `json:"model"`
	Available         *bool    `json:"available"`
	MinCapacity       *float64 `json:"minCapacity"`
	MaxCapacity       *float64 `json:"maxCapacity"`
	YearFrom          *int     `json:"yearFrom"`
	YearTo            *int     `json:"yearTo"`
	search.PageCriteria
}

type VehicleTableInfo struct {
	ID                int64   `json:"id"`
	RegistrationPlate string  `json:"registrationPlate"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	Capacity          float64 `json:"capacity"`
	ProductionYear    int     `json:"productionYear"`
	Available         bool    `json:"available"`
}
