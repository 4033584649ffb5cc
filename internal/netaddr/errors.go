package netaddr

import "errors"

var (
	// ErrInvalidAddress indicates that the text is not a valid multiaddr or
	// does not have the /<host>/<name>/tcp/<port> shape.
	ErrInvalidAddress = errors.New("invalid network address")
	// ErrLookupFailed indicates that the resolver returned an error for a
	// DNS host component.
	ErrLookupFailed = errors.New("network address lookup failed")
	// ErrNoCandidates indicates that resolution produced no usable endpoint.
	ErrNoCandidates = errors.New("network address resolved to no endpoints")
)
