package app

import (
	"go-erp/internal/auth"
	"go-erp/internal/certification"
	"go-erp/internal/certificationtype"
	"go-erp/internal/customer"
	"go-erp/internal/employee"
	"go-erp/internal/fuel"
	"go-erp/internal/job"
	"go-erp/internal/messaging/kafka"
	"go-erp/internal/order"
	"go-erp/internal/permission"
	"go-erp/internal/rbac"
	"go-erp/internal/rbac/infra"
	"go-erp/internal/shared/counter"
	"go-erp/internal/vehicle"

	"github.com/gin-gonic/gin"
)

func (a *App) registerModules(api *gin.RouterGroup, tokens *auth.TokenManager) error {
	db, gormDB, rdb, logger := a.sqlDB, a.gormDB, a.rdb, a.logger

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	certificationRepo := certification.NewRepository(gormDB)
	certificationTypeRepo := certificationtype.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	customerRepo := customer.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	fuelRepo := fuel.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	orderRepo := order.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	permissionRepo := permission.NewRepository(gormDB)
	vehicleRepo := vehicle.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(rbac.DefaultPolicies)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	hasher := auth.NewBcryptHasher()
	authService := auth.NewService(authRepo, hasher, tokens, logger)
	certificationService := certification.NewService(db, certificationRepo, logger)
	certificationTypeService := certificationtype.NewService(db, certificationTypeRepo, rdb, logger)
	customerService := customer.NewService(customerRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, hasher, logger)
	fuelService := fuel.NewService(fuelRepo, logger)
	jobService := job.NewService(db, jobRepo, outboxRepo, logger)
	orderService := order.NewService(db, orderRepo, counterRepo, logger)
	permissionService := permission.NewService(db, permissionRepo, rdb, logger)
	vehicleService := vehicle.NewService(vehicleRepo, logger)

	// --- Routes Registration ---
	auth.RegisterRoutes(api, auth.NewHandler(authService, logger), a.cfg.Auth.LoginRatePerSec, a.cfg.Auth.LoginBurst)
	certification.RegisterRoutes(api, certification.NewHandler(certificationService, logger), rbacService)
	certificationtype.RegisterRoutes(api, certificationtype.NewHandler(certificationTypeService, logger), rbacService)
	customer.RegisterRoutes(api, customer.NewHandler(customerService, logger), rbacService)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger), rbacService)
	fuel.RegisterRoutes(api, fuel.NewHandler(fuelService, logger), rbacService)
	job.RegisterRoutes(api, job.NewHandler(jobService, logger), rbacService, rdb, logger)
	order.RegisterRoutes(api, order.NewHandler(orderService, logger), rbacService, rdb, logger)
	permission.RegisterRoutes(api, permission.NewHandler(permissionService, logger), rbacService)
	vehicle.RegisterRoutes(api, vehicle.NewHandler(vehicleService, logger), rbacService)
	rbac.RegisterRoutes(api, rbac.NewHandler(rbacService, logger))

	return nil
}
