// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package netaddr

import (
	"context"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/multiformats/go-multiaddr"
)

// NetworkAddress is a parsed, syntactically valid server address.
// The zero value holds no address.
type NetworkAddress struct {
	text string
	code int
	host string
	port uint16
}

// Parse validates s and returns the address it describes.
func Parse(s string) (NetworkAddress, error) {
	maddr, err := multiaddr.NewMultiaddr(s)
	if err != nil {
		return NetworkAddress{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}

	protocols := maddr.Protocols()
	if len(protocols) != 2 {
		return NetworkAddress{}, fmt.Errorf("%w: %q: want /<host>/<name>/tcp/<port>", ErrInvalidAddress, s)
	}

	hostProto, portProto := protocols[0], protocols[1]
	switch hostProto.Code {
	case multiaddr.P_IP4, multiaddr.P_IP6, multiaddr.P_DNS, multiaddr.P_DNS4, multiaddr.P_DNS6:
	default:
		return NetworkAddress{}, fmt.Errorf("%w: %q: unsupported host protocol %s", ErrInvalidAddress, s, hostProto.Name)
	}
	if portProto.Code != multiaddr.P_TCP {
		return NetworkAddress{}, fmt.Errorf("%w: %q: unsupported transport protocol %s", ErrInvalidAddress, s, portProto.Name)
	}

	host, err := maddr.ValueForProtocol(hostProto.Code)
	if err != nil {
		return NetworkAddress{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	portText, err := maddr.ValueForProtocol(multiaddr.P_TCP)
	if err != nil {
		return NetworkAddress{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	port, err := strconv.ParseUint(portText, 10, 16)
	if err != nil {
		return NetworkAddress{}, fmt.Errorf("%w: %q: port: %v", ErrInvalidAddress, s, err)
	}

	return NetworkAddress{
		text: maddr.String(),
		code: hostProto.Code,
		host: host,
		port: uint16(port),
	}, nil
}

// MustParse is like [Parse] but panics on error. Intended for tests and
// package-level defaults.
func MustParse(s string) NetworkAddress {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromAddrPort builds the /ip4 or /ip6 address of ap.
func FromAddrPort(ap netip.AddrPort) (NetworkAddress, error) {
	family := "ip4"
	if !ap.Addr().Unmap().Is4() {
		family = "ip6"
	}
	return Parse(fmt.Sprintf("/%s/%s/tcp/%d", family, ap.Addr().Unmap().WithZone(""), ap.Port()))
}

// IsZero reports whether a holds no address.
func (a NetworkAddress) IsZero() bool {
	return a.text == ""
}

// Host returns the host component value: an IP literal or a DNS name.
func (a NetworkAddress) Host() string {
	return a.host
}

// Port returns the TCP port.
func (a NetworkAddress) Port() uint16 {
	return a.port
}

// IsDNS reports whether the host component has to be looked up.
func (a NetworkAddress) IsDNS() bool {
	switch a.code {
	case multiaddr.P_DNS, multiaddr.P_DNS4, multiaddr.P_DNS6:
		return true
	default:
		return false
	}
}

func (a NetworkAddress) String() string {
	return a.text
}

// Candidates resolves a into its ordered list of socket endpoints.
//
// IP literals produce a single endpoint without consulting r. DNS names are
// looked up through r; /dns4 keeps only IPv4 answers and /dns6 only IPv6
// answers. The resolver's order is preserved. An empty result is
// [ErrNoCandidates].
func (a NetworkAddress) Candidates(ctx context.Context, r Resolver) ([]netip.AddrPort, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !a.IsDNS() {
		ip, err := netip.ParseAddr(a.host)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, a.text, err)
		}
		return []netip.AddrPort{netip.AddrPortFrom(ip.Unmap(), a.port)}, nil
	}

	if r == nil {
		r = DefaultResolver
	}

	answers, err := r.LookupIPAddr(ctx, a.host)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLookupFailed, a.host, err)
	}

	candidates := make([]netip.AddrPort, 0, len(answers))
	for _, answer := range answers {
		ip, ok := netip.AddrFromSlice(answer.IP)
		if !ok {
			continue
		}
		ip = ip.Unmap()

		switch a.code {
		case multiaddr.P_DNS4:
			if !ip.Is4() {
				continue
			}
		case multiaddr.P_DNS6:
			if !ip.Is6() {
				continue
			}
		}

		candidates = append(candidates, netip.AddrPortFrom(ip, a.port))
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidates, a.text)
	}

	return candidates, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (a NetworkAddress) MarshalText() ([]byte, error) {
	return []byte(a.text), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. The text must be a
// valid address; see [Parse].
func (a *NetworkAddress) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
