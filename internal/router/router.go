package router

import (
	"net/http"
	"time"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/auth"
	"attendance/dashboard/internal/commands"
	"attendance/dashboard/internal/metrics"
	"attendance/dashboard/internal/middleware"
	"attendance/dashboard/internal/service"
	"attendance/dashboard/internal/store"

	"github.com/gin-gonic/gin"

	attendance_controller "attendance/dashboard/internal/controller/http/v1/attendance"
	auth_controller "attendance/dashboard/internal/controller/http/v1/auth"
	department_controller "attendance/dashboard/internal/controller/http/v1/department"
	designation_controller "attendance/dashboard/internal/controller/http/v1/designation"
	employee_controller "attendance/dashboard/internal/controller/http/v1/employee"
	leave_controller "attendance/dashboard/internal/controller/http/v1/leave"
	report_controller "attendance/dashboard/internal/controller/http/v1/report"
	status_controller "attendance/dashboard/internal/controller/http/v1/status"
)

type Router struct {
	*web.App
	store          *store.Store
	auth           *auth.Auth
	metrics        *metrics.Metrics
	exporter       *service.Exporter
	ttl            commands.TokenTTL
	allowedOrigins []string
	today          func() time.Time
}

func NewRouter(
	app *web.App,
	store *store.Store,
	auth *auth.Auth,
	metrics *metrics.Metrics,
	exporter *service.Exporter,
	ttl commands.TokenTTL,
	allowedOrigins []string,
	today func() time.Time,
) *Router {
	return &Router{
		app,
		store,
		auth,
		metrics,
		exporter,
		ttl,
		allowedOrigins,
		today,
	}
}

// Init registers every route. Reads need a signed-in user; changes need an
// admin.
func (r Router) Init() {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.Cors(r.allowedOrigins))
	if r.metrics != nil {
		r.Use(middleware.Metrics(r.metrics))
		r.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": true})
	})

	// controller
	authController := auth_controller.NewController(r.auth, r.auth.Users, r.ttl)
	employeeController := employee_controller.NewController(r.store, r.exporter)
	attendanceController := attendance_controller.NewController(r.store, r.store)
	leaveController := leave_controller.NewController(r.store, r.store)
	designationController := designation_controller.NewController(r.store)
	statusController := status_controller.NewController(r.store)
	departmentController := department_controller.NewController(r.store)
	reportController := report_controller.NewController(r.store, r.exporter, r.today)

	signedIn := middleware.Authenticate(r.auth)
	admin := middleware.Authenticate(r.auth, auth.RoleAdmin)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)
	r.Post("/api/v1/forgot-password", authController.ForgotPassword)
	r.Post("/api/v1/sign-out", authController.SignOut, signedIn)
	r.Get("/api/v1/me", authController.Me, signedIn)

	// #employee
	r.Get("/api/v1/employee/list", employeeController.GetList, signedIn)
	r.Get("/api/v1/employee/export", employeeController.ExportEmployee, admin)
	r.Get("/api/v1/employee/:id", employeeController.GetDetailById, signedIn)
	r.Get("/api/v1/employee/:id/attendance", employeeController.GetAttendance, signedIn)
	r.Get("/api/v1/employee/:id/leave", employeeController.GetLeaves, signedIn)
	r.Get("/api/v1/employee/:id/badge", employeeController.GetBadge, signedIn)
	r.Post("/api/v1/employee/create", employeeController.Create, admin)
	r.Post("/api/v1/employee/create_excel", employeeController.CreateByExcel, admin)
	r.Post("/api/v1/employee/:id/photo", employeeController.UploadPhoto, admin)
	r.Patch("/api/v1/employee/:id", employeeController.UpdateColumns, admin)
	r.Delete("/api/v1/employee/:id", employeeController.Delete, admin)

	// #attendance
	r.Get("/api/v1/attendance/list", attendanceController.GetList, signedIn)
	r.Get("/api/v1/attendance/:id", attendanceController.GetDetailById, signedIn)
	r.Post("/api/v1/attendance/create", attendanceController.Create, admin)
	r.Patch("/api/v1/attendance/:id", attendanceController.UpdateColumns, admin)
	r.Delete("/api/v1/attendance/:id", attendanceController.Delete, admin)

	// #leave
	r.Get("/api/v1/leave/list", leaveController.GetList, signedIn)
	r.Get("/api/v1/leave/:id", leaveController.GetDetailById, signedIn)
	r.Post("/api/v1/leave/create", leaveController.Create, admin)
	r.Patch("/api/v1/leave/:id", leaveController.UpdateColumns, admin)
	r.Delete("/api/v1/leave/:id", leaveController.Delete, admin)

	// #designation
	r.Get("/api/v1/designation/list", designationController.GetList, signedIn)
	r.Get("/api/v1/designation/:id", designationController.GetDetailById, signedIn)
	r.Post("/api/v1/designation/create", designationController.Create, admin)
	r.Patch("/api/v1/designation/:id", designationController.UpdateColumns, admin)
	r.Delete("/api/v1/designation/:id", designationController.Delete, admin)

	// #status
	r.Get("/api/v1/status/list", statusController.GetList, signedIn)
	r.Get("/api/v1/status/:id", statusController.GetDetailById, signedIn)
	r.Post("/api/v1/status/create", statusController.Create, admin)
	r.Patch("/api/v1/status/:id", statusController.UpdateColumns, admin)
	r.Delete("/api/v1/status/:id", statusController.Delete, admin)

	// #department
	r.Get("/api/v1/department/list", departmentController.GetList, signedIn)

	// #report
	r.Get("/api/v1/report/attendance", reportController.Attendance, signedIn)
	r.Get("/api/v1/report/attendance/export", reportController.Export, signedIn)
	r.Get("/api/v1/report/statistics", reportController.Statistics, signedIn)
	r.Get("/api/v1/report/dashboard", reportController.Dashboard, signedIn)
	r.Get("/api/v1/report/organization", reportController.Organization, signedIn)
	r.Get("/api/v1/report/seed.sql", reportController.SeedSQL, admin)
}
