package logger

import "go.uber.org/zap"

// ZapBackend adapts a zap.Logger to the Backend contract.
type ZapBackend struct {
	z *zap.Logger
}

var _ Backend = (*ZapBackend)(nil)

// NewZapBackend wraps z. A nil logger is replaced by zap.NewNop.
func NewZapBackend(z *zap.Logger) *ZapBackend {
	if z == nil {
		z = zap.NewNop()
	}
	return &ZapBackend{z: z}
}

func (b *ZapBackend) Error(msg string) { b.z.Error(msg) }
func (b *ZapBackend) Warn(msg string)  { b.z.Warn(msg) }
func (b *ZapBackend) Info(msg string)  { b.z.Info(msg) }
func (b *ZapBackend) Debug(msg string) { b.z.Debug(msg) }
