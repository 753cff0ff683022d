package logx

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const redacted = "[REDACTED]"

// maskingCore redacts sensitive fields and masks base58 secret keys in messages.
// Console output only.
type maskingCore struct {
	zapcore.Core
	sensitive   map[string]struct{}
	maskPattern *regexp.Regexp
}

func newMaskingCore(core zapcore.Core) *maskingCore {
	return &maskingCore{
		Core:        core,
		sensitive:   defaultSensitiveKeys(),
		maskPattern: defaultMaskPattern(),
	}
}

func (m *maskingCore) With(fields []zapcore.Field) zapcore.Core {
	return &maskingCore{
		Core:        m.Core.With(m.redact(fields)),
		sensitive:   m.sensitive,
		maskPattern: m.maskPattern,
	}
}

func (m *maskingCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if m.Enabled(entry.Level) {
		return ce.AddCore(entry, m)
	}
	return ce
}

func (m *maskingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if entry.Message != "" {
		entry.Message = m.maskPattern.ReplaceAllString(entry.Message, redacted)
	}
	return m.Core.Write(entry, m.redact(fields))
}

func (m *maskingCore) redact(fields []zapcore.Field) []zapcore.Field {
	if len(fields) == 0 {
		return fields
	}
	out := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if _, ok := m.sensitive[strings.ToLower(f.Key)]; ok {
			out = append(out, zap.String(f.Key, redacted))
			continue
		}
		out = append(out, f)
	}
	return out
}

func defaultSensitiveKeys() map[string]struct{} {
	keys := []string{
		"private", "private_key", "privatekey",
		"secret", "secret_key", "seed", "key",
	}
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

func defaultMaskPattern() *regexp.Regexp {
	// 64-byte secrets encode to 86-88 base58 characters; addresses are 32-44
	return regexp.MustCompile(`[1-9A-HJ-NP-Za-km-z]{86,88}`)
}
