package nodeconfig

import "context"

type registryKey struct{}

// WithRegistry returns a copy of ctx carrying r, for call sites that should
// use a registry other than Default().
func WithRegistry(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, registryKey{}, r)
}

// FromContext returns the registry carried by ctx, or Default() if none.
func FromContext(ctx context.Context) *Registry {
	if ctx != nil {
		if r, ok := ctx.Value(registryKey{}).(*Registry); ok && r != nil {
			return r
		}
	}
	return Default()
}
