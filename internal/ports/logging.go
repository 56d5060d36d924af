package ports

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// Logger is the structured logger every layer writes through. Fields are
// alternating key/value pairs. Implementations must be safe for concurrent use
// and add the context's correlation ID to each entry.
//
// Keys in use across stylepreview:
//
//	layer           cli, application, infrastructure
//	component       preview, renderer, loader, decoder, events
//	style, part     the document and part being worked on
//	resource, tier  the image token and where it was found (staged or table)
//	duration_ms     elapsed time of a render or batch
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID returns ctx carrying id. Each CLI invocation sets one, so
// the loader, renderer and event logs of a single render can be joined.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID returns the ID set by WithCorrelationID, or "".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// GenerateCorrelationID returns a random RFC 4122 version 4 UUID.
func GenerateCorrelationID() string {
	var u [16]byte
	if _, err := rand.Read(u[:]); err != nil {
		panic("stylepreview: reading random bytes for correlation id: " + err.Error())
	}
	u[6] = u[6]&0x0f | 0x40
	u[8] = u[8]&0x3f | 0x80

	buf := make([]byte, 36)
	hex.Encode(buf[0:8], u[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], u[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], u[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], u[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], u[10:])
	return string(buf)
}
