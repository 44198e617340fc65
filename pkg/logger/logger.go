// Package logger 基于zerolog的结构化日志
//
// 用法:
//
//	log, closer, err := logger.New(cfg.Log)
//	if err != nil { ... }
//	defer closer.Close()
//	ctx = log.WithContext(ctx)
//	zerolog.Ctx(ctx).Info().Uint("sale_id", id).Msg("venta creada")
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config 日志配置
type Config struct {
	Level        string `mapstructure:"level"`  // debug | info | warn | error
	Format       string `mapstructure:"format"` // console | json
	Output       string `mapstructure:"output"` // stdout | stderr | /path/to/file
	EnableCaller bool   `mapstructure:"enable_caller"`
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New 根据配置创建Logger
// 返回的io.Closer在输出为文件时负责关闭文件
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		out, closer = f, f
	}

	return build(out, cfg.Format, level, cfg.EnableCaller), closer, nil
}

func build(out io.Writer, format string, level zerolog.Level, caller bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}
