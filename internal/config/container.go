package config

import (
	"pdf-to-text/internal/domain"
	"pdf-to-text/internal/service"
	"pdf-to-text/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Storage           *service.Storage
	Extractor         domain.TextExtractor
	ConversionService domain.ConversionService
}

// NewContainer creates a new dependency injection container. The storage
// directories are created here, once, before any request is served.
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	storage, err := service.NewStorage(
		config.GetUploadPath(),
		config.GetConvertedPath(),
		config.GetJSONOutputPath(),
	)
	if err != nil {
		return nil, err
	}

	extractor, err := service.NewTextExtractor(config.GetPDFEngine(), appLogger)
	if err != nil {
		return nil, err
	}

	conversionService := service.NewConversionService(
		storage,
		service.NewPDFInspector(),
		extractor,
		appLogger,
	)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		Storage:           storage,
		Extractor:         extractor,
		ConversionService: conversionService,
	}, nil
}
