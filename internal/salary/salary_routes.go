package salary

import (
	"github.com/gin-gonic/gin"

	"github.com/paambaati/sqlary/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, keys middleware.KeyChecker) {
	salaries := r.Group("/salary")
	salaries.Use(middleware.Authenticate(middleware.VerifyBearer(keys)))
	salaries.Use(middleware.RateLimitByToken(20, 40))
	{
		salaries.GET("", handler.GetAll)
		salaries.PUT("", handler.Create)
		salaries.DELETE("/:id", handler.Delete)
		salaries.GET("/stats", handler.Stats)
		salaries.GET("/stats/department", handler.StatsByDepartment)
		salaries.GET("/stats/department/sub-department", handler.StatsByDepartmentAndSubDepartment)
	}
}
