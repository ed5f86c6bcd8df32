package router

import (
	"garage/backend/foundation/web"
	"garage/backend/internal/auth"
	"garage/backend/internal/middleware"
	"garage/backend/internal/pkg/notify"
	"garage/backend/internal/pkg/repository/postgresql"

	"garage/backend/internal/repository/postgres/account"
	"garage/backend/internal/repository/postgres/mechanic"
	"garage/backend/internal/repository/postgres/punch"
	"garage/backend/internal/repository/postgres/shopinfo"
	"garage/backend/internal/repository/postgres/vehicle"
	"garage/backend/internal/repository/postgres/worksession"

	auth_controller "garage/backend/internal/controller/http/v1/auth"
	events_controller "garage/backend/internal/controller/http/v1/events"
	"garage/backend/internal/controller/http/v1/file"
	mechanic_controller "garage/backend/internal/controller/http/v1/mechanic"
	punch_controller "garage/backend/internal/controller/http/v1/punch"
	shopinfo_controller "garage/backend/internal/controller/http/v1/shopinfo"
	vehicle_controller "garage/backend/internal/controller/http/v1/vehicle"
	worksession_controller "garage/backend/internal/controller/http/v1/worksession"

	"github.com/redis/go-redis/v9"
)

type Router struct {
	*web.App
	postgresDB         *postgresql.Database
	redisDB            *redis.Client
	port               string
	auth               *auth.Auth
	fileServerBasePath string
	adminPasswordHash  string
	baseURL            string
	privatePEMPath     string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	fileServerBasePath string,
	adminPasswordHash string,
	baseURL string,
	privatePEMPath string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		fileServerBasePath,
		adminPasswordHash,
		baseURL,
		privatePEMPath,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	reload := notify.NewRedis(r.redisDB, "garage:reload")

	// - postgresql
	punchPostgres := punch.NewRepository(r.postgresDB, r.adminPasswordHash)
	worksessionPostgres := worksession.NewRepository(r.postgresDB, r.adminPasswordHash)
	vehiclePostgres := vehicle.NewRepository(r.postgresDB)
	mechanicPostgres := mechanic.NewRepository(r.postgresDB, r.adminPasswordHash)
	accountPostgres := account.NewRepository(r.postgresDB)
	shopInfoPostgres := shopinfo.NewRepository(r.postgresDB)

	// controller
	punchController := punch_controller.NewController(punchPostgres, reload)
	worksessionController := worksession_controller.NewController(worksessionPostgres, reload)
	vehicleController := vehicle_controller.NewController(vehiclePostgres, reload, r.baseURL)
	mechanicController := mechanic_controller.NewController(mechanicPostgres)
	authController := auth_controller.NewController(accountPostgres, r.privatePEMPath)
	shopInfoController := shopinfo_controller.NewController(shopInfoPostgres)
	eventsController := events_controller.NewController(reload)

	fileC := file.NewController(r.App, r.fileServerBasePath)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	r.GET("/media/*filepath", fileC.File)
	r.HEAD("/media/*filepath", fileC.File)

	// #punch
	// Clocking routes are open, the shop tablet is a shared device with no
	// per-mechanic login. Deleting records requires an admin token.
	r.Get("/api/v1/punch/list", punchController.GetPunchList)
	r.Get("/api/v1/punch/active/:mechanic", punchController.GetActivePunch)
	r.Get("/api/v1/punch/:id", punchController.GetPunchDetailById)
	r.Post("/api/v1/punch/clock-in", punchController.ClockIn)
	r.Patch("/api/v1/punch/:id/pause", punchController.PausePunch)
	r.Patch("/api/v1/punch/:id/resume", punchController.ResumePunch)
	r.Put("/api/v1/punch/:id/clock-out", punchController.ClockOut)
	r.Put("/api/v1/punch/:id/times", punchController.UpdatePunchTimes)
	r.Delete("/api/v1/punch/:id", punchController.DeletePunch, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/punch/summary/payroll", punchController.GetPayrollSummary)
	r.Get("/api/v1/punch/summary/payroll/export", punchController.ExportPayroll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/punch/reset-hours/:mechanic", punchController.ResetMechanicHours, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/punch/reset-hours", punchController.ResetAllMechanicHours, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #worksession
	r.Get("/api/v1/session/list", worksessionController.GetSessionList)
	r.Get("/api/v1/session/active/:mechanic", worksessionController.GetActiveSession)
	r.Get("/api/v1/session/:id", worksessionController.GetSessionDetailById)
	r.Post("/api/v1/session/start", worksessionController.StartSession)
	r.Put("/api/v1/session/:id/end", worksessionController.EndSession)
	r.Put("/api/v1/session/:id/hours", worksessionController.UpdateSessionHours)
	r.Get("/api/v1/session/summary/mechanic/:mechanic", worksessionController.GetMechanicTotals)
	r.Get("/api/v1/session/history/:mechanic", worksessionController.GetMechanicSessions)
	r.Put("/api/v1/session/vehicle/:id/hours", worksessionController.AdjustVehicleHours)
	r.Post("/api/v1/session/reset-vehicle-hours", worksessionController.ResetVehicleHours)

	// #vehicle
	r.Get("/api/v1/vehicle/list", vehicleController.GetVehicleList)
	r.Get("/api/v1/vehicle/summary/costs", vehicleController.GetVehicleTotals)
	r.Get("/api/v1/vehicle/qrcodes", vehicleController.GetVehicleQrCodes, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/vehicle/:id", vehicleController.GetVehicleDetailById)
	r.Post("/api/v1/vehicle/create", vehicleController.CreateVehicle, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/vehicle/:id", vehicleController.UpdateVehicleColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/vehicle/:id/move", vehicleController.MoveVehicle, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/vehicle/:id", vehicleController.DeleteVehicle, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #mechanic
	r.Get("/api/v1/mechanic/list", mechanicController.GetMechanicList)
	r.Get("/api/v1/mechanic/leaderboard", mechanicController.GetLeaderboard)
	r.Get("/api/v1/mechanic/:name", mechanicController.GetMechanicByName)
	r.Put("/api/v1/mechanic/:name/points", mechanicController.UpdateMechanicPoints)

	// #shop_info
	r.Get("/api/v1/shop_info/list", shopInfoController.GetShopInfo)
	r.Put("/api/v1/shop_info/:id", shopInfoController.UpdateShopInfo, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #events
	r.Get("/api/v1/events", eventsController.Stream)

	return r.Run(r.port)
}
