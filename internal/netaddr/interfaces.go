package netaddr

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

import (
	"context"
	"net"
)

// Resolver looks up the IP addresses of a host name. [*net.Resolver]
// satisfies it.
type Resolver interface {
	// LookupIPAddr returns the addresses of host in the order the
	// underlying mechanism produced them.
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// DefaultResolver is the system resolver.
var DefaultResolver Resolver = net.DefaultResolver
