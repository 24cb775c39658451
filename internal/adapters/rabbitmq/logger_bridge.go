package rabbitmq_adapter

import (
	"fmt"

	"github.com/numanharith/propertyhub-frontend/internal/core/port"
	"github.com/numanharith/propertyhub-frontend/pkg/rabbitmq/rabbitmq_common"
)

// pkgLogger пишет логи pkg/rabbitmq в LoggerPort сервиса.
type pkgLogger struct {
	logger port.LoggerPort
}

// NewPkgLoggerBridge оборачивает LoggerPort в логгер pkg/rabbitmq.
func NewPkgLoggerBridge(logger port.LoggerPort) rabbitmq_common.Logger {
	return pkgLogger{logger: logger}
}

func (b pkgLogger) Debug(msg string, kv ...interface{}) { b.logger.Debug(msg, pairsToFields(kv)) }
func (b pkgLogger) Info(msg string, kv ...interface{})  { b.logger.Info(msg, pairsToFields(kv)) }
func (b pkgLogger) Warn(msg string, kv ...interface{})  { b.logger.Warn(msg, pairsToFields(kv)) }

func (b pkgLogger) Error(err error, msg string, kv ...interface{}) {
	b.logger.Error(msg, err, pairsToFields(kv))
}

// pairsToFields: нестроковый ключ превращается в строку, непарный хвост попадает в "extra".
func pairsToFields(kv []interface{}) port.Fields {
	if len(kv) == 0 {
		return nil
	}
	fields := make(port.Fields, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		fields[key] = kv[i+1]
	}
	if len(kv)%2 == 1 {
		fields["extra"] = kv[len(kv)-1]
	}
	return fields
}
