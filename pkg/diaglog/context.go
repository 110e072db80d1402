package diaglog

import "context"

type scopeContextKey struct{}

// ContextWithScope attaches the scope owned by the current logical
// operation to ctx. A logger consults this scope ahead of its own, so
// concurrent operations sharing one logger each carry their own frames.
func ContextWithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, scope)
}

// ScopeFromContext returns the scope attached to ctx, or nil.
func ScopeFromContext(ctx context.Context) *Scope {
	scope, _ := ctx.Value(scopeContextKey{}).(*Scope)
	return scope
}
