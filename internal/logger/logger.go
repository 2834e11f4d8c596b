package logger

import (
	"oldphonepad/internal/config"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	switch cfg.Env {
	case "prod":
		logFile := filepath.Join(cfg.LogDir, "app.log")

		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, err
		}

		file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(file),
			zap.InfoLevel,
		)
		return zap.New(core).With(zap.String("service", "oldphonepad")), nil

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		return zapCfg.Build()
	}
}
