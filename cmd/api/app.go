package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/libreria/backoffice/internal/infrastructure/config"
)

// shutdownTimeout 优雅关闭等待时间
const shutdownTimeout = 10 * time.Second

// App 装配完成的HTTP服务
type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	engine *gin.Engine
}

func newApp(cfg *config.Config, log zerolog.Logger, engine *gin.Engine) *App {
	return &App{cfg: cfg, log: log, engine: engine}
}

// Run 启动HTTP服务,ctx取消后优雅关闭
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler:      a.engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().
			Str("addr", srv.Addr).
			Str("mode", a.cfg.Server.Mode).
			Msg("HTTP服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP服务启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("正在优雅关闭服务...")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}
	a.log.Info().Msg("HTTP服务已关闭")
	return nil
}
