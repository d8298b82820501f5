package app

import (
	"database/sql"
	"path/filepath"

	"go-talento/internal/auth"
	"go-talento/internal/department"
	"go-talento/internal/employee"
	"go-talento/internal/messaging/kafka"
	"go-talento/internal/notification"
	"go-talento/internal/permission"
	"go-talento/internal/rbac"
	"go-talento/internal/rbac/infra"
	"go-talento/internal/severance"
	"go-talento/internal/shared/counter"
	"go-talento/internal/shiftswap"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	permissionRepo := permission.NewRepository(gormDB)
	severanceRepo := severance.NewRepository(gormDB)
	shiftSwapRepo := shiftswap.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	notificationService := notification.NewService(notificationRepo, logger)
	permissionService := permission.NewService(db, permissionRepo, counterRepo, outboxRepo, logger)
	severanceService := severance.NewService(db, severanceRepo, counterRepo, outboxRepo, logger)
	shiftSwapService := shiftswap.NewService(db, shiftSwapRepo, counterRepo, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	notificationHandler := notification.NewHandler(notificationService)
	permissionHandler := permission.NewHandler(permissionService, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService, rbacRepo)
	severanceHandler := severance.NewHandler(severanceService, rdb, logger)
	shiftSwapHandler := shiftswap.NewHandler(shiftSwapService, rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		notification.RegisterRoutes(api, notificationHandler)
		permission.RegisterRoutes(api, permissionHandler, rdb, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		severance.RegisterRoutes(api, severanceHandler, rdb, logger)
		shiftswap.RegisterRoutes(api, shiftSwapHandler, rdb, logger)
	}

	return nil
}
