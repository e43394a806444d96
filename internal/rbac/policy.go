package rbac

import "go-erp/internal/auth"

const (
	ResourceEmployee          = "employee"
	ResourcePermission        = "permission"
	ResourceCertification     = "certification"
	ResourceCertificationType = "certification_type"
	ResourceCustomer          = "customer"
	ResourceVehicle           = "vehicle"
	ResourceOrder             = "order"
	ResourceJob               = "job"
	ResourceFuel              = "fuel"
)

const (
	ActionRead     = "read"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionComplete = "complete"

	Any = "*"
)

// DefaultPolicies is the (role, resource, action) table loaded at start.
var DefaultPolicies = [][]string{
	{auth.RoleAdmin, Any, Any},

	{auth.RoleUser, ResourceEmployee, ActionRead},
	{auth.RoleUser, ResourcePermission, ActionRead},
	{auth.RoleUser, ResourceCertification, ActionRead},
	{auth.RoleUser, ResourceCertificationType, ActionRead},
	{auth.RoleUser, ResourceCustomer, Any},
	{auth.RoleUser, ResourceVehicle, Any},
	{auth.RoleUser, ResourceOrder, Any},
	{auth.RoleUser, ResourceJob, Any},
	{auth.RoleUser, ResourceFuel, Any},

	{auth.RoleDriver, ResourceJob, ActionRead},
	{auth.RoleDriver, ResourceJob, ActionComplete},
	{auth.RoleDriver, ResourceVehicle, ActionRead},
	{auth.RoleDriver, ResourceFuel, ActionRead},
	{auth.RoleDriver, ResourceFuel, ActionCreate},
}
