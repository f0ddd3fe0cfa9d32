package pkg

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"NCCPortal/internal/cadet"
	"NCCPortal/internal/camp"
	"NCCPortal/internal/config"
	"NCCPortal/internal/forms"
	"NCCPortal/internal/navigation"
	"NCCPortal/internal/session"
	"NCCPortal/internal/stock"
	"NCCPortal/internal/tempreg"
	"NCCPortal/pkg/middleware"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.NewRemoteAPIConfig),
	fx.Provide(config.NewAPIClient),
	fx.Provide(session.NewStore),
	fx.Provide(navigation.NewNavigator),
	fx.Provide(navigation.NewHandler),
	fx.Provide(forms.NewValidator),
	fx.Provide(cadet.NewClient),
	fx.Provide(cadet.NewAuthService),
	fx.Provide(cadet.NewService),
	fx.Provide(cadet.NewRegistration),
	fx.Provide(cadet.NewHandler),
	fx.Provide(camp.NewClient),
	fx.Provide(camp.NewService),
	fx.Provide(camp.NewHandler),
	fx.Provide(stock.NewClient),
	fx.Provide(stock.NewService),
	fx.Provide(stock.NewHandler),
	fx.Provide(tempreg.NewClient),
	fx.Provide(tempreg.NewService),
	fx.Provide(tempreg.NewHandler),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	port := ":8080"
	log.Println("Server running on http://localhost" + port[1:])
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	sessions *session.Store,
	navHandler *navigation.Handler,
	cadetHandler *cadet.Handler,
	campHandler *camp.Handler,
	stockHandler *stock.Handler,
	tempregHandler *tempreg.Handler,
) {
	// Public surface: anyone can browse camps, sign up, and log in.
	e.GET("/navigation", navHandler.Links)
	e.POST("/login", cadetHandler.Login)
	e.POST("/logout", cadetHandler.Logout)
	e.GET("/register", cadetHandler.RegistrationDraft)
	e.PUT("/register/field", cadetHandler.SetRegistrationField)
	e.POST("/register", cadetHandler.SubmitRegistration)
	e.GET("/camps", campHandler.Upcoming)
	e.POST("/camps/public-register", campHandler.RegisterPublic)
	e.POST("/temporary-registrations", tempregHandler.Submit)

	// Routes behind any login.
	authed := e.Group("", middleware.RequireLogin(sessions))
	authed.GET("/profile", cadetHandler.Profile)
	authed.PUT("/profile", cadetHandler.UpdateProfile)
	authed.GET("/my-camps", campHandler.MyCamps)
	authed.POST("/camps/:id/register", campHandler.Register)
	authed.GET("/my-stock", stockHandler.CadetStock)

	// ANO administration.
	ano := e.Group("/ano", middleware.RequireRole(sessions, session.RoleANO))
	ano.GET("/cadets", cadetHandler.ListCadets)
	ano.POST("/camps", campHandler.Create)
	ano.GET("/camps/:id/roster", campHandler.Roster)
	ano.PUT("/camp-registrations/:id/status", campHandler.SetRegistrationStatus)
	ano.GET("/stocks", stockHandler.Inventory)
	ano.GET("/stocks/available", stockHandler.Available)
	ano.POST("/stocks", stockHandler.AddStock)
	ano.POST("/stocks/issue", stockHandler.IssueStock)
	ano.GET("/stocks/:id/cadets", stockHandler.CadetsIssued)
	ano.GET("/stocks/pending-cadets", stockHandler.PendingCadets)
	ano.GET("/temporary-registrations", tempregHandler.Dashboard)
	ano.PUT("/temporary-registrations/:id/assign", tempregHandler.Assign)
	ano.POST("/temporary-registrations/bulk-assign", tempregHandler.BulkAssign)
	ano.POST("/temporary-registrations/notify", tempregHandler.Notify)
}
