package requestcontext

import (
	"context"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/soldracula/dracula/pkg/logger"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// [Optional] TrustedHeader is a header name for getting client IP. (e.g. X-Real-IP, CF-Connecting-IP, etc.)
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// EnableRejectMalformedRequest return 403 Forbidden if the request is from proxies, but can't extract client IP
	EnableRejectMalformedRequest bool `mapstructure:"enable_reject_malformed_request"`
}

// WithClientIP adds the client IP to the context.
// The trusted header wins, then the first valid X-Forwarded-For entry, then the remote address.
func WithClientIP(config WithClientIPConfig) Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if config.TrustedHeader != "" {
			if headerIP := c.Get(config.TrustedHeader); net.ParseIP(headerIP) != nil {
				return context.WithValue(ctx, clientIPKey{}, headerIP), nil
			}
		}

		ips := c.IPs()
		if len(ips) == 0 {
			return context.WithValue(ctx, clientIPKey{}, c.IP()), nil
		}
		if net.ParseIP(ips[0]) != nil {
			return context.WithValue(ctx, clientIPKey{}, ips[0]), nil
		}

		if config.EnableRejectMalformedRequest {
			logger.WarnContext(ctx, "Malformed X-Forwarded-For header, returning 403 Forbidden",
				slog.String("event", "requestcontext/malformed_xff"),
				slog.String("ip", c.IP()),
				slog.Any("ips", ips),
			)
			return nil, requestcontextError{
				status:  fiber.StatusForbidden,
				message: "not allowed to access",
			}
		}
		return context.WithValue(ctx, clientIPKey{}, c.IP()), nil
	}
}

// GetClientIP get clientIP from context. If not found, return empty string
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
