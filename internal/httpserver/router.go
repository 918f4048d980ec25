package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nsharma-dev/institute_admin/internal/middleware"
)

type Deps struct {
	AuthHandler        *AuthHTTP
	ProfileHandler     *ProfileHTTP
	CourseHandler      *CourseHTTP
	StudentHandler     *StudentHTTP
	CertificateHandler *CertificateHTTP
	CenterHandler      *CenterHTTP

	JWTSecret []byte
}

// Register mounts every route. Each protected group declares its own role
// allow-set; admin is listed explicitly wherever both roles may act.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMw := middleware.NewAuth(d.JWTSecret)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/refresh", d.AuthHandler.Refresh)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.POST("/forgotpassword", d.AuthHandler.ForgotPassword)
	auth.PUT("/resetpassword/:token", d.AuthHandler.ResetPassword)

	profile := e.Group("/api/profile")
	profile.GET("/:id", d.ProfileHandler.GetPublic)
	own := profile.Group("", authMw.RequireAuth, authMw.RequireRoles("user", "admin"))
	own.GET("", d.ProfileHandler.GetOwn)
	own.PUT("", d.ProfileHandler.UpdateOwn)

	courses := e.Group("/api/courses")
	courses.POST("/add", d.CourseHandler.Create)
	courses.GET("", d.CourseHandler.List)
	courses.GET("/search", d.CourseHandler.Search)
	courses.GET("/name/:name", d.CourseHandler.GetByName)

	students := e.Group("/api/students", authMw.RequireAuth, authMw.RequireRoles("admin"))
	students.POST("/add", d.StudentHandler.Admit)
	students.GET("", d.StudentHandler.List)
	students.PUT("/:id", d.StudentHandler.Update)
	students.DELETE("/:id", d.StudentHandler.Delete)

	certificates := e.Group("/api/certificates")
	certificates.POST("/add", d.CertificateHandler.Issue)
	certificates.GET("/:registrationno", d.CertificateHandler.Lookup)

	centers := e.Group("/api/center")
	centers.POST("/add", d.CenterHandler.Affiliate, authMw.RequireAuth, authMw.RequireRoles("admin"))
	centers.GET("", d.CenterHandler.List)
	centers.GET("/code/:centerCode", d.CenterHandler.GetByCode)
}
