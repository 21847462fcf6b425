package routes

import (
	"devfinder/api/handler"
	"devfinder/api/middleware"

	"github.com/labstack/echo/v4"
)

type Router struct {
	Echo           *echo.Echo
	Users          *handler.UserHandler
	Jobs           *handler.JobHandler
	Projects       *handler.ProjectHandler
	AuthMiddleware middleware.AuthMiddleware
	SignupRate     *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	users *handler.UserHandler,
	jobs *handler.JobHandler,
	projects *handler.ProjectHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Users:          users,
		Jobs:           jobs,
		Projects:       projects,
		AuthMiddleware: authMiddleware,
		SignupRate:     middleware.NewSignupRateLimiter(),
		LoginRate:      middleware.NewLoginRateLimiter(),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/criar-conta", r.Users.CreateAccount, r.SignupRate.Middleware())
	e.POST("/login", r.Users.Login, r.LoginRate.Middleware())
	e.POST("/confirmar-codigo", r.Users.ConfirmCode, r.LoginRate.Middleware())
	e.POST("/verificar-conta", r.Users.VerifyToken, r.AuthMiddleware.RequireAuth)
	e.PUT("/:id/editar-conta", r.Users.UpdateUser, r.AuthMiddleware.RequireAuth)
	e.DELETE("/:id/excluir-conta", r.Users.DeleteAccount, r.AuthMiddleware.RequireAuth)

	e.POST("/:userId/criar-projeto", r.Projects.CreateProject, r.AuthMiddleware.RequireAuth)
	e.GET("/:userId/carregar-projetos", r.Projects.GetProjects, r.AuthMiddleware.RequireAuth)
	e.PUT("/:userId/projetos/:id", r.Projects.UpdateProject, r.AuthMiddleware.RequireAuth)

	e.GET("/vagas", r.Jobs.ListJobs, r.AuthMiddleware.RequireAuth)
	e.POST("/vagas", r.Jobs.CreateJob, r.AuthMiddleware.RequireRecruiter)
	e.POST("/vagas/:opportunityId/candidatar", r.Jobs.ApplyToJob, r.AuthMiddleware.RequireAuth)
	e.DELETE("/vagas/:jobId/:recruiterId", r.Jobs.DeleteJob, r.AuthMiddleware.RequireRecruiter)
}
