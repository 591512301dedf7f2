package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// S, paket seviyesindeki sugared logger'dır. Init çağrılana kadar nop'tur;
// böylece testler sessiz çalışır.
var S = zap.NewNop().Sugar()

// Init, JSON formatında bir zap logger kurar.
// Debug modu çıktıyı JSON'da tutar, yalnızca seviyeyi debug'a indirir.
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	S = l.Sugar()
	return nil
}
