package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogx_PrettyPT_Info(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "debug", "pretty", "pt-BR", "never")
	Infof("olá %s", "mundo")
	Debugf("detalhe")
	out := buf.String()
	if !strings.Contains(out, "[INFO] olá mundo") {
		t.Fatalf("expect pt info line, got: %q", out)
	}
	if !strings.Contains(out, "[DEPURAÇÃO]") {
		t.Fatalf("expect pt debug label, got: %q", out)
	}
}

func TestLogx_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "warn", "pretty", "pt-BR", "never")
	Infof("não deve aparecer")
	Warnf("aviso")
	out := buf.String()
	if strings.Contains(out, "não deve aparecer") {
		t.Fatalf("info should be filtered when level=warn")
	}
	if !strings.Contains(out, "[AVISO]") {
		t.Fatalf("expect warn label present, got: %q", out)
	}
}

func TestLogx_Silent(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "off", "pretty", "en", "never")
	Errorf("boom")
	if buf.Len() != 0 {
		t.Fatalf("expect no output, got %q", buf.String())
	}
}

func TestLogx_EnglishLabelsAndColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	InitTo(&buf, "info", "pretty", "en", "always")
	Errorf("boom %d", 1)
	out := buf.String()
	if !strings.Contains(out, "[ERROR]") {
		t.Fatalf("expect en label, got: %q", out)
	}
	if !strings.Contains(out, "\x1b[31m") {
		t.Fatalf("expect ansi color when color=always")
	}
}

func TestLogx_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	InitTo(&buf, "info", "pretty", "en", "always")
	Infof("x")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("NO_COLOR must win over always")
	}
}

func TestLogx_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitTo(&buf, "info", "json", "en", "never")
	Infof("placar %d", 3)
	if !strings.Contains(buf.String(), `"msg":"placar 3"`) {
		t.Fatalf("expect json record, got %q", buf.String())
	}
}

func TestLogx_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, slog.LevelInfo, "en", "never")
	logger := slog.New(h).With("k", "v").WithGroup("g")
	logger.Info("hello", "slug", "bra.1")
	s := buf.String()
	if !strings.Contains(s, "k=v") || !strings.Contains(s, "g.slug=bra.1") {
		t.Fatalf("expect flattened attrs, got: %q", s)
	}
}
