package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/metal_radar/app/metals/internal/data"
	"github.com/iWorld-y/metal_radar/app/metals/internal/service"
	"github.com/iWorld-y/metal_radar/app/metals/internal/usecase"
)

// ProviderSet 是行情看板服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewSettingsRepo,
	data.NewCacheRepo,
	data.NewPriceSources,
	data.NewNewsRepo,
	data.NewLLMRepo,

	// UseCase providers
	usecase.NewPriceUseCase,
	usecase.NewNewsUseCase,
	usecase.NewAIUseCase,
	usecase.NewSettingsUseCase,
	usecase.NewCacheUseCase,

	// Service providers
	service.NewMetalsService,
	service.NewUIService,
	service.NewMCPService,
)
