package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/piyathilaka/routemate/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AppLogger wraps zap with optional file output on top of stdout.
type AppLogger struct {
	*zap.Logger
	filePath string
	file     *os.File
}

// InitFromConfig builds the application logger from the loaded config and
// installs it as the global logger.
func InitFromConfig(cfg *models.Config) (*AppLogger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Logger.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	appLogger := &AppLogger{}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.Logger.FilePath != "" {
		file, err := openLogFile(cfg.Logger.FilePath)
		if err != nil {
			return nil, err
		}
		appLogger.filePath = cfg.Logger.FilePath
		appLogger.file = file
		syncers = append(syncers, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)
	appLogger.Logger = zap.New(core, zap.AddCaller()).With(
		zap.String("service", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	SetGlobalLogger(appLogger)
	return appLogger, nil
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Close flushes buffered entries and closes the log file if one is open.
func (al *AppLogger) Close() error {
	_ = al.Logger.Sync()
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}
