// Package netaddr parses the symbolic network addresses used to reach a
// remote safety rules process and resolves them into socket endpoints.
//
// Addresses are written as multiaddrs with one host component followed by a
// TCP port:
//
//	/ip4/10.0.0.1/tcp/6191
//	/ip6/::1/tcp/6191
//	/dns/safety-rules.internal/tcp/6191
//	/dns4/safety-rules.internal/tcp/6191
//
// Syntax is checked when the address is parsed. Name resolution happens only
// in [NetworkAddress.Candidates], through a caller-supplied [Resolver].
package netaddr
