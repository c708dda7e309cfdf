package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stubResponseWriter - заглушка http.ResponseWriter для проверки обертки логера.
type stubResponseWriter struct {
	headerMap http.Header
	status    int
}

func (m *stubResponseWriter) Header() http.Header {
	if m.headerMap == nil {
		m.headerMap = make(http.Header)
	}
	return m.headerMap
}

func (m *stubResponseWriter) Write(body []byte) (int, error) {
	return len(body), nil
}

func (m *stubResponseWriter) WriteHeader(statusCode int) {
	m.status = statusCode
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{"ValidDebugLevel", "debug", false},
		{"ValidInfoLevel", "info", false},
		{"ValidWarnLevel", "warn", false},
		{"InvalidLevel", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Инициализирую логер
			err := Initialize(tt.level)

			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotEqual(t, nil, ServerLog)

			// уровень "debug" должен быть доступен только при debug
			enabled := ServerLog.Core().Enabled(zap.DebugLevel)
			require.Equal(t, tt.level == "debug", enabled)
		})
	}
}

func TestInitializeInvalidConfig(t *testing.T) {
	// Создаю буфер для вывода логов
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zap.DebugLevel,
	)
	ServerLog = zap.New(core)

	// Инициализация с некорректным уровнем
	err := Initialize("invalid")
	require.Error(t, err)

	// Проверяю, что глобальный логер не был перезаписан
	require.Equal(t, false, buf.Len() > 0)
}

func TestWrite(t *testing.T) {
	respData := &responseData{}
	writer := &stubResponseWriter{status: 200}

	lw := loggingResponseWriter{
		ResponseWriter: writer,
		responseData:   respData,
	}

	firstMessage := []byte("first message")
	lenFirstMessage, err := lw.Write(firstMessage)
	require.NoError(t, err)
	assert.Equal(t, len(firstMessage), lenFirstMessage)
	assert.Equal(t, len(firstMessage), respData.size)

	// размер ответа накапливается между вызовами
	secondMessage := []byte("write second message")
	lenSecondMessage, err := lw.Write(secondMessage)
	require.NoError(t, err)
	assert.Equal(t, len(secondMessage), lenSecondMessage)
	assert.Equal(t, len(firstMessage)+len(secondMessage), respData.size)
}

func TestWriteHeader(t *testing.T) {
	respData := &responseData{}
	writer := &stubResponseWriter{status: 200}

	lw := loggingResponseWriter{
		ResponseWriter: writer,
		responseData:   respData,
	}

	firstStatusCode := 300
	lw.WriteHeader(firstStatusCode)
	assert.Equal(t, firstStatusCode, writer.status)
	assert.Equal(t, firstStatusCode, respData.status)

	secondStatusCode := 500
	lw.WriteHeader(secondStatusCode)
	assert.Equal(t, secondStatusCode, writer.status)
	assert.Equal(t, secondStatusCode, respData.status)
}

func TestRequestLogger(t *testing.T) {
	testHandler := func() http.HandlerFunc {
		return func(res http.ResponseWriter, _ *http.Request) {
			res.WriteHeader(200)
		}
	}

	r := chi.NewRouter()
	r.Post("/", RequestLogger(testHandler()))

	request := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, request)

	res := w.Result()
	defer res.Body.Close() // закрываю тело ответа
	// проверяю код ответа
	assert.Equal(t, 200, res.StatusCode)
}
