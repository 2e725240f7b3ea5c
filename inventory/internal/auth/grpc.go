package auth

import (
	"context"
	"strings"

	"github.com/juju/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const authorizationMetadataKey = "authorization"

type claimsContextKey struct{}

// UnaryInterceptor requires a valid access token in the "authorization"
// metadata for every method listed in protected. Other methods pass through.
func UnaryInterceptor(protected ...string) grpc.UnaryServerInterceptor {
	guarded := make(map[string]bool, len(protected))
	for _, method := range protected {
		guarded[method] = true
	}

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !guarded[info.FullMethod] {
			return handler(ctx, req)
		}
		claims, err := claimsFromMetadata(ctx)
		if err != nil {
			logger.Debugf("rejected grpc call method=%s err=%v", info.FullMethod, err)
			return nil, status.Error(codes.Unauthenticated, "invalid or missing token")
		}
		return handler(context.WithValue(ctx, claimsContextKey{}, claims), req)
	}
}

// ClaimsFromContext returns the staff claims attached by UnaryInterceptor.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*Claims)
	return claims, ok
}

func claimsFromMetadata(ctx context.Context) (*Claims, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errors.Unauthorizedf("missing metadata")
	}
	values := md.Get(authorizationMetadataKey)
	if len(values) == 0 {
		return nil, errors.Unauthorizedf("missing authorization metadata")
	}
	token, found := strings.CutPrefix(values[0], "Bearer ")
	if !found {
		return nil, errors.Unauthorizedf("authorization scheme")
	}
	return ValidateToken(token)
}
