// logger - пакет с логером для логирования запросов к серверу и внутренних событий.
package logger

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ServerLog - глобальный логер сервера. До инициализации - логер-пустышка.
var ServerLog *zap.Logger = zap.NewNop()

// Initialize - инициализирует глобальный логер с требуемым уровнем логирования.
func Initialize(level string) error {
	// преобразую текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level, %w", err)
	}

	// создаю новую конфигурацию логера
	cfg := zap.NewProductionConfig()
	// устанавливаю уровень
	cfg.Level = lvl

	// создаю логер на основе конфигурации
	zl, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger, %w", err)
	}

	ServerLog = zl
	return nil
}

// responseData - структура для хранения сведений об ответе сервера.
type responseData struct {
	status int
	size   int
}

// loggingResponseWriter - обертка над http.ResponseWriter для захвата статуса и размера ответа.
type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

// Write - захватывает размер ответа.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader - захватывает код статуса ответа.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// RequestLogger - middleware для логирования http запросов и ответов сервера.
func RequestLogger(h http.HandlerFunc) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		respData := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   respData,
		}

		// вызываю основной обработчик
		h.ServeHTTP(&lw, req)

		duration := time.Since(start)

		ServerLog.Info("got incoming HTTP request",
			zap.String("uri", req.RequestURI),
			zap.String("method", req.Method),
			zap.String("duration", duration.String()),
			zap.Int("status", respData.status),
			zap.Int("size", respData.size),
		)
	}
}
