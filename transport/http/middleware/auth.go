package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"summit/config"
	"summit/infras/jwt"
	"summit/infras/otel"
	"summit/permissions"
	"summit/shared/constant"
	"summit/shared/failure"
	"summit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

// Auth authenticates callers.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role authorizes authenticated callers by role.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// routePattern resolves the registered pattern of a request, e.g. /v1/bookings/{id}.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
}

func (m *authRoleImpl) lookup(r *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(routePattern(r), r.Method)
}

func skipped(r *http.Request) bool {
	skip, _ := r.Context().Value(SkipAuthKey("skip")).(bool)

	return skip
}

// Auth validates the bearer token and puts the caller's identity on the context.
// Endpoints marked skip in permissions.json are public and pass through untouched.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		if skipped(request) || m.lookup(request).Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       routePattern(request),
			"http.method":     request.Method,
		})

		reject := func(err error) {
			scope.TraceError(err)
			response.WithError(writer, err)
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject(failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			default:
				message = "Token validation failed"
			}

			reject(failure.Unauthorized(message))

			return
		}

		if claims.UserID == "" || claims.Role == "" {
			log.Error().Str("tokenID", claims.TokenID).Msg("JWT claims: user or role is empty")
			reject(failure.Unauthorized("Invalid token claims"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC rejects callers whose role is not listed for the endpoint. Requires Auth to run first.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if skipped(request) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		permission := m.lookup(request)
		if m.permission.Skip || permission.Skip || len(permission.Permissions) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

		if !slices.Contains(permission.Permissions, userRole) {
			scope.TraceError(failure.ForbiddenError)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal services through with the shared key. Requests without a key continue as clients.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, SkipAuthKey("skip"), false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || apiKey != m.cfg.App.APIKey {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		// internal callers act as administrators
		ctx = context.WithValue(ctx, SkipAuthKey("skip"), true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
