package logger_adapter

import (
	"fmt"

	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

// MultiLoggerAdapter дублирует каждую запись во все логгеры (stdout и Fluent Bit).
type MultiLoggerAdapter []port.LoggerPort

// NewMultiloggerAdapter пропускает nil-логгеры.
func NewMultiloggerAdapter(loggers ...port.LoggerPort) (port.LoggerPort, error) {
	var m MultiLoggerAdapter
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("multilogger: at least one logger is required")
	}
	return m, nil
}

func (m MultiLoggerAdapter) Debug(msg string, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Debug(msg, fields) })
}

func (m MultiLoggerAdapter) Info(msg string, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Info(msg, fields) })
}

func (m MultiLoggerAdapter) Warn(msg string, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Warn(msg, fields) })
}

func (m MultiLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Error(msg, err, fields) })
}

func (m MultiLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	child := make(MultiLoggerAdapter, len(m))
	for i, l := range m {
		child[i] = l.WithFields(fields)
	}
	return child
}

func (m MultiLoggerAdapter) each(fn func(port.LoggerPort)) {
	for _, l := range m {
		fn(l)
	}
}
