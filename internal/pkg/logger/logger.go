package logger

import (
	"os"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ridewave/dispatch/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with optional New Relic log forwarding.
type ZapLogger struct {
	*zap.Logger
	nrApp *newrelic.Application
}

// InitZapLogger creates the application logger from configuration.
func InitZapLogger(cfg *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Logger.Format == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	if nrApp != nil && cfg.NewRelic.ForwardLogs {
		core = zapcore.NewTee(core, &newRelicCore{
			level:   level,
			nrApp:   nrApp,
			service: cfg.App.Name,
		})
	}

	zl := &ZapLogger{
		Logger: zap.New(core, zap.AddCaller()),
		nrApp:  nrApp,
	}
	return zl, nil
}

// WithNewRelicContext returns a logger carrying trace correlation fields
// from the given transaction.
func (l *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *zap.Logger {
	if txn == nil {
		return l.Logger
	}
	md := txn.GetLinkingMetadata()
	if md.TraceID == "" {
		return l.Logger
	}
	return l.Logger.With(
		zap.String("trace.id", md.TraceID),
		zap.String("span.id", md.SpanID),
	)
}

// Close flushes buffered log entries.
func (l *ZapLogger) Close() error {
	return l.Logger.Sync()
}

// newRelicCore forwards log entries to New Relic.
type newRelicCore struct {
	level   zapcore.Level
	nrApp   *newrelic.Application
	service string
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool { return c.level.Enabled(level) }

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core { clone := *c; return &clone }

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	attrs := enc.Fields
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["service"] = c.service
	attrs["caller"] = entry.Caller.TrimmedPath()

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: attrs,
	})
	return nil
}

func (c *newRelicCore) Sync() error { return nil }
