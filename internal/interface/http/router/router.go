// Package router 组装gin引擎:中间件、/api路由、运维端点和前端静态文件
package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/libreria/backoffice/docs"
	"github.com/libreria/backoffice/internal/infrastructure/config"
	"github.com/libreria/backoffice/internal/interface/http/handler"
	"github.com/libreria/backoffice/internal/interface/http/middleware"
	apperrors "github.com/libreria/backoffice/pkg/errors"
	"github.com/libreria/backoffice/pkg/response"
)

// New 创建gin引擎并注册全部路由
// 中间件顺序:Recovery → Logger → Metrics → CORS → RateLimit → 路由
func New(cfg *config.Config, log zerolog.Logger, h *handler.Handlers) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))

	r.GET("/ping", h.Health.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 生产环境不暴露接口文档
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		libros := api.Group("/libros")
		{
			libros.GET("", h.Book.List)
			libros.GET("/:id", h.Book.Get)
			libros.POST("", h.Book.Create)
			libros.PUT("/:id", h.Book.Update)
			libros.DELETE("/:id", h.Book.Delete)
		}

		clientes := api.Group("/clientes")
		{
			clientes.GET("", h.Client.List)
			clientes.GET("/:id", h.Client.Get)
			clientes.POST("", h.Client.Create)
			clientes.PUT("/:id", h.Client.Update)
			clientes.DELETE("/:id", h.Client.Delete)
		}

		ventas := api.Group("/ventas")
		{
			ventas.GET("", h.Sale.List)
			ventas.GET("/:id", h.Sale.Get)
			ventas.POST("", h.Sale.Create)
			ventas.PUT("/:id", h.Sale.Update)
			ventas.DELETE("/:id", h.Sale.Delete)
		}

		inventario := api.Group("/inventario")
		{
			inventario.GET("", h.Inventory.List)
			inventario.GET("/:id", h.Inventory.Get)
			inventario.PUT("/:id", h.Inventory.Update)
		}

		proveedores := api.Group("/proveedores")
		{
			proveedores.GET("", h.Provider.List)
			proveedores.GET("/:id", h.Provider.Get)
			proveedores.POST("", h.Provider.Create)
			proveedores.PUT("/:id", h.Provider.Update)
			proveedores.DELETE("/:id", h.Provider.Delete)
		}

		empleados := api.Group("/empleados")
		{
			empleados.GET("", h.Employee.List)
			empleados.GET("/:id", h.Employee.Get)
			empleados.POST("", h.Employee.Create)
			empleados.PUT("/:id", h.Employee.Update)
			empleados.DELETE("/:id", h.Employee.Delete)
		}
	}

	r.NoRoute(noRoute(cfg.Server.StaticDir))
	return r
}

// noRoute 未匹配路由
// /api/*返回JSON 404;配置了静态目录时,其余GET请求先找文件,找不到回退到index.html
func noRoute(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if staticDir == "" || p == "/api" || strings.HasPrefix(p, "/api/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			response.Error(c, apperrors.ErrNotFound)
			return
		}

		file := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+p)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
