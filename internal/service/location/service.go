package location

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
	"github.com/luvitbd/attendance-app-go/internal/pkg/geoip"
)

// GPSProvider acquires a device position fix with a bounded wait.
// Implementations translate their failure modes into the geo sentinel
// errors so the resolver can keep the reasons apart.
type GPSProvider interface {
	Acquire(ctx context.Context) (geo.Coordinates, error)
}

// Resolver obtains a best-effort coordinate pair, falling back from
// GPS to IP geolocation. Success from either path looks the same to
// the caller.
type Resolver interface {
	Resolve(ctx context.Context, gps GPSProvider, clientIP string) (geo.Coordinates, error)
}

type resolverImpl struct {
	ip         geoip.Lookup
	gpsTimeout time.Duration
}

func NewResolver(ip geoip.Lookup, gpsTimeout time.Duration) Resolver {
	return &resolverImpl{
		ip:         ip,
		gpsTimeout: gpsTimeout,
	}
}

// Resolve implements Resolver.
func (r *resolverImpl) Resolve(ctx context.Context, gps GPSProvider, clientIP string) (geo.Coordinates, error) {
	gpsCtx, cancel := context.WithTimeout(ctx, r.gpsTimeout)
	defer cancel()

	coords, gpsErr := gps.Acquire(gpsCtx)
	if gpsErr == nil {
		return coords, nil
	}
	if errors.Is(gpsErr, context.DeadlineExceeded) {
		gpsErr = geo.ErrTimeout
	}

	slog.Warn("GPS acquisition failed, falling back to IP geolocation", "reason", gpsErr)

	coords, ipErr := r.ip.Resolve(ctx, clientIP)
	if ipErr != nil {
		slog.Error("IP geolocation fallback failed", "error", ipErr)
		// Keep the GPS reason visible alongside the combined failure.
		return geo.Coordinates{}, errors.Join(gpsErr, geo.ErrBothFailed)
	}

	slog.Debug("location served by IP fallback", "ip", clientIP)
	return coords, nil
}

// DeviceFixProvider adapts a client-reported GPS outcome to the
// GPSProvider contract. The browser did the actual bounded
// high-accuracy wait; this just replays its result.
type DeviceFixProvider struct {
	Fix geo.DeviceFix
}

// Acquire implements GPSProvider.
func (p DeviceFixProvider) Acquire(ctx context.Context) (geo.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return geo.Coordinates{}, err
	}

	if p.Fix.Coords != nil {
		return *p.Fix.Coords, nil
	}

	switch p.Fix.Failure {
	case geo.FailurePermissionDenied:
		return geo.Coordinates{}, geo.ErrPermissionDenied
	case geo.FailureTimeout:
		return geo.Coordinates{}, geo.ErrTimeout
	default:
		// position-unavailable, unsupported, or nothing reported
		return geo.Coordinates{}, geo.ErrPositionUnavailable
	}
}
