package service

import "context"

// RegionNameResolver resolves a district code to its human-readable name.
// The address usecase uses it to denormalize province/city/area names at
// write time. An unknown code resolves to "" without an error; the codes are
// caller-supplied and trusted to exist.
type RegionNameResolver interface {
	ResolveName(ctx context.Context, code string) (string, error)
}
