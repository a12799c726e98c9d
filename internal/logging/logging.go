// Package logging builds the arbor logger used across the application.
package logging

import (
	"os"

	"github.com/phuslu/log"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
	"github.com/ternarybob/arbor/writers"

	"github.com/ndewijer/BDR-Fundamentals-Backend/internal/config"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

// discardWriter implements writers.IWriter and drops everything.
type discardWriter struct{}

func (w *discardWriter) Write(p []byte) (int, error)           { return len(p), nil }
func (w *discardWriter) WithLevel(_ log.Level) writers.IWriter { return w }
func (w *discardWriter) GetFilePath() string                   { return "" }
func (w *discardWriter) Close() error                          { return nil }

// New creates a logger from the logging configuration. Console output goes to
// stderr; file output rotates at 10MB keeping 5 backups.
func New(cfg config.LoggingConfig) arbor.ILogger {
	level := cfg.Level
	if level == "" {
		level = "info"
	}

	outputs := cfg.Outputs
	if len(outputs) == 0 {
		outputs = []string{"console"}
	}

	l := arbor.NewLogger()
	for _, out := range outputs {
		switch out {
		case "console":
			l = l.WithConsoleWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeConsole,
				Writer:     os.Stderr,
				TimeFormat: timeFormat,
			})
		case "file":
			filePath := cfg.FilePath
			if filePath == "" {
				filePath = "logs/screener.log"
			}
			l = l.WithFileWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeFile,
				FileName:   filePath,
				MaxSize:    10 * 1024 * 1024,
				MaxBackups: 5,
				TimeFormat: timeFormat,
			})
		}
	}

	return l.WithLevelFromString(level)
}

// NewSilent creates a logger that discards all output. Used in tests.
func NewSilent() arbor.ILogger {
	return arbor.NewLogger().WithWriters([]writers.IWriter{&discardWriter{}})
}
