package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is set")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(LogLevelEnvVar, "warn")

	if err := Initialize(Options{OutputPath: path}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(zap.NewNop())

	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestInitialize_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "churnform.log")

	if err := Initialize(Options{Level: "debug", OutputPath: path}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(zap.NewNop())

	LogPredictRequest("req-1", "http://localhost:8000/predict_with_explain", 42)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "req-1") {
		t.Errorf("log file does not contain request id:\n%s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPredictionHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	LogPredictRequest("abc", "http://svc/predict_with_explain", 10)
	LogPredictResponse("abc", 200, 64, 15*time.Millisecond)
	LogSubmission(3, "http://svc")
	LogStaleResult(2, 3)

	if logs.Len() != 4 {
		t.Fatalf("got %d entries, want 4", logs.Len())
	}

	resp := logs.FilterMessage("Prediction response received").All()
	if len(resp) != 1 {
		t.Fatalf("response entry missing")
	}
	fields := resp[0].ContextMap()
	if fields["request_id"] != "abc" {
		t.Errorf("request_id = %v, want abc", fields["request_id"])
	}
	if fields["status_code"] != int64(200) {
		t.Errorf("status_code = %v, want 200", fields["status_code"])
	}
}
