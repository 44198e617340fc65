//go:build wireinject
// +build wireinject

// 依赖注入配置,运行 `wire gen ./cmd/api` 生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	appbook "github.com/libreria/backoffice/internal/application/book"
	appsale "github.com/libreria/backoffice/internal/application/sale"
	"github.com/libreria/backoffice/internal/domain/book"
	"github.com/libreria/backoffice/internal/domain/client"
	"github.com/libreria/backoffice/internal/domain/employee"
	"github.com/libreria/backoffice/internal/domain/inventory"
	"github.com/libreria/backoffice/internal/domain/provider"
	"github.com/libreria/backoffice/internal/domain/sale"
	"github.com/libreria/backoffice/internal/infrastructure/config"
	"github.com/libreria/backoffice/internal/infrastructure/events"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/database"
	"github.com/libreria/backoffice/internal/infrastructure/persistence/redis"
	"github.com/libreria/backoffice/internal/interface/http/handler"
	"github.com/libreria/backoffice/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、消息发布
var infrastructureSet = wire.NewSet(
	database.NewDB,
	database.NewTxManager,
	redis.NewClient,
	redis.NewCache,
	events.NewPublisher,
)

var repositorySet = wire.NewSet(
	database.NewBookRepository,
	database.NewClientRepository,
	database.NewEmployeeRepository,
	database.NewProviderRepository,
	database.NewInventoryRepository,
	database.NewSaleRepository,
	provideBookCounter,
	provideClientSaleCounter,
	provideEmployeeSaleCounter,
)

var domainSet = wire.NewSet(
	book.NewService,
	client.NewService,
	employee.NewService,
	provider.NewService,
	inventory.NewService,
	sale.NewService,
)

var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appsale.NewCreateSaleUseCase,
	appsale.NewUpdateSaleUseCase,
	appsale.NewDeleteSaleUseCase,
)

var handlerSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewBookHandler,
	handler.NewClientHandler,
	handler.NewSaleHandler,
	handler.NewInventoryHandler,
	handler.NewProviderHandler,
	handler.NewEmployeeHandler,
	wire.Struct(new(handler.Handlers), "*"),
)

// provideBookCounter 图书仓储同时负责供应商删除前的引用计数
func provideBookCounter(repo book.Repository) provider.BookCounter {
	return repo
}

func provideClientSaleCounter(repo sale.Repository) client.SaleCounter {
	return repo
}

func provideEmployeeSaleCounter(repo sale.Repository) employee.SaleCounter {
	return repo
}

// InitializeApp 组装整个应用
func InitializeApp(cfg *config.Config, log zerolog.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		router.New,
		newApp,
	)
	return nil, nil, nil
}
