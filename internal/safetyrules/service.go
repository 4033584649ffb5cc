// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package safetyrules

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/MKhiriev/safety-rules-config/internal/netaddr"
	"github.com/MKhiriev/safety-rules-config/internal/utils"
)

// ServiceMode names where safety rules run relative to the consensus
// engine.
type ServiceMode string

const (
	// ServiceLocal runs safety rules inline on the caller's goroutine.
	ServiceLocal ServiceMode = "local"
	// ServiceProcess reaches an already running safety rules process over
	// the network. This is the production topology.
	ServiceProcess ServiceMode = "process"
	// ServiceSerializer runs inline but passes every call through the RPC
	// serializer, exercising the wire encoding without a process boundary.
	ServiceSerializer ServiceMode = "serializer"
	// ServiceSpawnedProcess makes the engine start a new process and hand it
	// this configuration. Used by test harnesses that emulate production.
	ServiceSpawnedProcess ServiceMode = "spawned_process"
	// ServiceThread runs safety rules on a dedicated thread of the engine's
	// process.
	ServiceThread ServiceMode = "thread"
)

// ServiceModes lists every mode in declaration order.
var ServiceModes = []ServiceMode{
	ServiceLocal,
	ServiceProcess,
	ServiceSerializer,
	ServiceSpawnedProcess,
	ServiceThread,
}

// Valid reports whether m is one of the five modes.
func (m ServiceMode) Valid() bool {
	switch m {
	case ServiceLocal, ServiceProcess, ServiceSerializer, ServiceSpawnedProcess, ServiceThread:
		return true
	default:
		return false
	}
}

// IsRemote reports whether m needs a [RemoteService].
func (m ServiceMode) IsRemote() bool {
	switch m {
	case ServiceProcess, ServiceSpawnedProcess:
		return true
	case ServiceLocal, ServiceSerializer, ServiceThread:
		return false
	default:
		return false
	}
}

// Service is the deployment mode of safety rules. Remote is set exactly
// when Mode.IsRemote() is true.
type Service struct {
	Mode   ServiceMode
	Remote RemoteService
}

// LocalService returns the inline mode.
func LocalService() Service { return Service{Mode: ServiceLocal} }

// ProcessService returns the separate-process mode reached through remote.
func ProcessService(remote RemoteService) Service {
	return Service{Mode: ServiceProcess, Remote: remote}
}

// SerializerService returns the inline mode with serialized calls.
func SerializerService() Service { return Service{Mode: ServiceSerializer} }

// SpawnedProcessService returns the mode in which the engine spawns the
// remote process itself.
func SpawnedProcessService(remote RemoteService) Service {
	return Service{Mode: ServiceSpawnedProcess, Remote: remote}
}

// ThreadService returns the dedicated-thread mode.
func ThreadService() Service { return Service{Mode: ServiceThread} }

// IsRemote reports whether s carries a remote descriptor.
func (s Service) IsRemote() bool {
	return s.Mode.IsRemote()
}

// MarshalJSON encodes s as an object tagged with "type". The remote
// descriptor fields sit next to the tag.
func (s Service) MarshalJSON() ([]byte, error) {
	switch s.Mode {
	case ServiceLocal, ServiceSerializer, ServiceThread:
		return utils.MarshalTagged(string(s.Mode), nil)
	case ServiceProcess, ServiceSpawnedProcess:
		return utils.MarshalTagged(string(s.Mode), s.Remote)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceMode, s.Mode)
	}
}

// UnmarshalJSON decodes a tagged service object.
func (s *Service) UnmarshalJSON(data []byte) error {
	tag, fields, err := utils.SplitTagged(data)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}

	decoded := Service{Mode: ServiceMode(tag)}
	switch decoded.Mode {
	case ServiceLocal, ServiceSerializer, ServiceThread:
		err = fields.RejectAll()
	case ServiceProcess, ServiceSpawnedProcess:
		err = fields.DecodeInto(&decoded.Remote)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownServiceMode, tag)
	}
	if err != nil {
		return fmt.Errorf("service %s: %w", tag, err)
	}

	*s = decoded
	return nil
}

// RemoteService locates a separately running safety rules process.
type RemoteService struct {
	ServerAddress netaddr.NetworkAddress `json:"server_address"`
}

// NewRemoteService parses address into a [RemoteService].
func NewRemoteService(address string) (RemoteService, error) {
	a, err := netaddr.Parse(address)
	if err != nil {
		return RemoteService{}, err
	}
	return RemoteService{ServerAddress: a}, nil
}

type remoteServiceFields RemoteService

// UnmarshalJSON requires "server_address" and rejects any other field.
func (r *RemoteService) UnmarshalJSON(data []byte) error {
	fields, err := utils.ObjectFields(data)
	if err != nil {
		return err
	}
	if err := fields.Require("server_address"); err != nil {
		return err
	}

	var decoded remoteServiceFields
	if err := fields.DecodeInto(&decoded); err != nil {
		return err
	}

	*r = RemoteService(decoded)
	return nil
}

// Resolve turns the symbolic server address into one connectable endpoint:
// the first candidate produced by r. A nil r uses [netaddr.DefaultResolver].
//
// Any failure, including a syntactically invalid address or an empty
// candidate list, wraps [ErrServerAddressUnresolved]. There is no retry.
func (r RemoteService) Resolve(ctx context.Context, resolver netaddr.Resolver) (netip.AddrPort, error) {
	candidates, err := r.ServerAddress.Candidates(ctx, resolver)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("%w: %w", ErrServerAddressUnresolved, err)
	}
	if len(candidates) == 0 {
		return netip.AddrPort{}, fmt.Errorf("%w: %s", ErrServerAddressUnresolved, r.ServerAddress)
	}
	return candidates[0], nil
}

// MustResolve is like [RemoteService.Resolve] but panics on failure, for
// hosts that abort boot on an unresolvable safety rules peer.
func (r RemoteService) MustResolve(ctx context.Context, resolver netaddr.Resolver) netip.AddrPort {
	endpoint, err := r.Resolve(ctx, resolver)
	if err != nil {
		panic(err)
	}
	return endpoint
}
