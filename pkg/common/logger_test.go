package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "campuscctv.xyz/inventory-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestCategoryLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetCategoryLogger(LoggerCategoryCCTVHistory).Info("history trimmed")

	logOutput := buf.String()
	if !strings.Contains(logOutput, `"logger":"cctv_core"`) {
		t.Errorf("expected cctv_core logger name, got: %s", logOutput)
	}
	if !strings.Contains(logOutput, `"category":"history"`) {
		t.Errorf("expected history category, got: %s", logOutput)
	}
}
