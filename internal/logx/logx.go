// Pacote logx é um invólucro fino sobre log/slog:
// - nível/formato/idioma/cor configuráveis
// - saída "pretty" legível com rótulos em português ([DEPURAÇÃO]/[INFO]/[AVISO]/[ERRO]) ou inglês
// - Debugf/Infof/Warnf/Errorf como fachada, para trocar a implementação sem tocar nos chamadores
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// levelOff silencia tudo.
const levelOff slog.Level = 100

// Init configura o logger global a partir de level/format/locale/colorMode.
func Init(level, format, locale, colorMode string) {
	InitTo(os.Stdout, level, format, locale, colorMode)
}

// InitTo é Init com destino explícito (testes e redirecionamento).
func InitTo(w io.Writer, level, format, locale, colorMode string) {
	lv := parseLevel(level)
	opts := &slog.HandlerOptions{Level: lv}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "pretty", "":
		handler = NewPrettyHandler(w, lv, locale, colorMode)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "silent", "off":
		return levelOff
	default:
		return slog.LevelInfo
	}
}

func Debugf(format string, v ...any) { slog.Debug(fmt.Sprintf(format, v...)) }
func Infof(format string, v ...any)  { slog.Info(fmt.Sprintf(format, v...)) }
func Warnf(format string, v ...any)  { slog.Warn(fmt.Sprintf(format, v...)) }
func Errorf(format string, v ...any) { slog.Error(fmt.Sprintf(format, v...)) }

// PrettyHandler: saída para humanos (cor opcional), rótulos conforme o idioma.
type PrettyHandler struct {
	w      io.Writer
	level  slog.Level
	locale string
	color  bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	group  string
}

func NewPrettyHandler(w io.Writer, lv slog.Level, locale string, colorMode string) slog.Handler {
	if w == nil {
		w = os.Stdout
	}
	if locale == "" {
		locale = "pt-BR"
	}
	return &PrettyHandler{w: w, level: lv, locale: locale, mu: &sync.Mutex{}, color: shouldColor(w, colorMode)}
}

func (h *PrettyHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level && h.level < levelOff
}

// Handle: hora + nível + mensagem + atributos achatados em k=v
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(ts.Format("2006-01-02 15:04:05"))
	buf.WriteByte(' ')
	lvl := levelLabel(h.locale, r.Level)
	if h.color {
		lvl = colorize(lvl, r.Level)
	}
	buf.WriteString(lvl)
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		attrs = append(attrs, a)
		return true
	})
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteByte('=')
		buf.WriteString(a.Value.String())
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &cp
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	cp := *h
	if cp.group == "" {
		cp.group = name
	} else {
		cp.group += "." + name
	}
	return &cp
}

func levelLabel(locale string, l slog.Level) string {
	if strings.HasPrefix(strings.ToLower(locale), "pt") {
		switch l {
		case slog.LevelDebug:
			return "[DEPURAÇÃO]"
		case slog.LevelInfo:
			return "[INFO]"
		case slog.LevelWarn:
			return "[AVISO]"
		case slog.LevelError:
			return "[ERRO]"
		}
		return fmt.Sprintf("[N%d]", l)
	}
	switch l {
	case slog.LevelDebug:
		return "[DEBUG]"
	case slog.LevelInfo:
		return "[INFO]"
	case slog.LevelWarn:
		return "[WARN]"
	case slog.LevelError:
		return "[ERROR]"
	}
	return fmt.Sprintf("[L%d]", l)
}

// shouldColor segue LOG_COLOR e NO_COLOR.
func shouldColor(w io.Writer, mode string) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "auto", "":
		// só em terminal
		if f, ok := w.(*os.File); ok {
			if fi, err := f.Stat(); err == nil {
				return fi.Mode()&os.ModeCharDevice != 0
			}
		}
	}
	return false
}

func colorize(s string, l slog.Level) string {
	code := "0"
	switch l {
	case slog.LevelDebug:
		code = "90"
	case slog.LevelInfo:
		code = "36"
	case slog.LevelWarn:
		code = "33"
	case slog.LevelError:
		code = "31"
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
