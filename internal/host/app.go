package host

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand/v2"
	"net/netip"

	"github.com/MKhiriev/safety-rules-config/internal/crypto"
	"github.com/MKhiriev/safety-rules-config/internal/logger"
	"github.com/MKhiriev/safety-rules-config/internal/netaddr"
	"github.com/MKhiriev/safety-rules-config/internal/safetyrules"
	"github.com/MKhiriev/safety-rules-config/internal/secure"
	"github.com/MKhiriev/safety-rules-config/models"
)

// Options are the startup steps requested by the operator.
type Options struct {
	// Resolve turns the server address of a remote service mode into an
	// endpoint before boot completes.
	Resolve bool
	// Seed, when set, provisions test keys from a ChaCha8 source seeded
	// with it.
	Seed *[32]byte
	// Author overrides the principal of the provisioned test record.
	Author *models.PeerID
}

// Summary describes the configuration handed to the consensus engine.
// It never carries private key material.
type Summary struct {
	Service            safetyrules.ServiceMode
	Backend            secure.BackendType
	Remote             bool
	Endpoint           netip.AddrPort
	Author             string
	ConsensusPublicKey string
	ExecutionPublicKey string
	Waypoint           string
	VerifySignatures   bool
}

type App struct {
	cfg      safetyrules.Config
	opts     Options
	resolver netaddr.Resolver
	log      *logger.Logger
}

var _ Host = (*App)(nil)

func NewApp(cfg safetyrules.Config, opts Options, resolver netaddr.Resolver, log *logger.Logger) *App {
	if resolver == nil {
		resolver = netaddr.DefaultResolver
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:      cfg.DuplicateForTesting(),
		opts:     opts,
		resolver: resolver,
		log:      log,
	}
}

// Config returns the configuration as it stands after [App.Boot].
func (a *App) Config() safetyrules.Config {
	return a.cfg
}

func (a *App) Boot(ctx context.Context) (Summary, error) {
	summary := Summary{
		Service:          a.cfg.Service.Mode,
		Backend:          a.cfg.Backend.Type,
		Remote:           a.cfg.Service.IsRemote(),
		VerifySignatures: a.cfg.VerifyVoteProposalSignature,
	}

	if token, ok := backendToken(a.cfg.Backend); ok {
		if _, err := token.Read(); err != nil {
			return Summary{}, fmt.Errorf("read %s backend token: %w", a.cfg.Backend.Type, err)
		}
		a.log.Debug().Stringer("token", token).Msg("backend token readable")
	}

	if a.opts.Resolve {
		endpoint, remote, err := a.cfg.RemoteEndpoint(ctx, a.resolver)
		if err != nil {
			return Summary{}, fmt.Errorf("resolve safety rules endpoint: %w", err)
		}
		if remote {
			summary.Endpoint = endpoint
			a.log.Debug().
				Str("server_address", a.cfg.Service.Remote.ServerAddress.String()).
				Stringer("endpoint", endpoint).
				Msg("resolved safety rules endpoint")
		}
	}

	if a.opts.Seed != nil {
		rng := rand.NewChaCha8(*a.opts.Seed)
		if err := ProvisionTestKeys(&a.cfg, rng, a.opts.Author); err != nil {
			return Summary{}, err
		}
		a.log.Warn().Msg("provisioned ephemeral test keys; never use this configuration in production")
	}

	if test := a.cfg.Test; test != nil {
		summary.Author = test.Author.String()
		summary.ConsensusPublicKey = publicKeyHex(test.ConsensusKeyPair)
		summary.ExecutionPublicKey = publicKeyHex(test.ExecutionKeyPair)
		if test.Waypoint != nil {
			summary.Waypoint = test.Waypoint.String()
		}
	}

	a.log.Info().
		Str("service", string(summary.Service)).
		Str("backend", string(summary.Backend)).
		Bool("remote", summary.Remote).
		Bool("verify_vote_proposal_signature", summary.VerifySignatures).
		Bool("test", a.cfg.Test != nil).
		Msg("safety rules configuration ready")

	return summary, nil
}

// ProvisionTestKeys fills the consensus and then the execution key slot of
// cfg's test record from rng, creating the record when cfg has none. The
// author of a new record is author if given, otherwise drawn from rng
// first.
func ProvisionTestKeys(cfg *safetyrules.Config, rng io.Reader, author *models.PeerID) error {
	if cfg.Test == nil {
		id, err := newAuthor(rng, author)
		if err != nil {
			return err
		}
		cfg.Test = safetyrules.NewTestConfig(id)
	} else if author != nil {
		cfg.Test.Author = *author
	}

	if err := cfg.Test.RandomConsensusKey(rng); err != nil {
		return err
	}
	return cfg.Test.RandomExecutionKey(rng)
}

func newAuthor(rng io.Reader, author *models.PeerID) (models.PeerID, error) {
	if author != nil {
		return *author, nil
	}

	id, err := models.RandomPeerID(rng)
	if err != nil {
		return models.PeerID{}, fmt.Errorf("generate test author: %w", err)
	}
	return id, nil
}

// backendToken returns the credential of the backends that authenticate to
// a remote store.
func backendToken(b secure.Backend) (secure.Token, bool) {
	switch b.Type {
	case secure.VaultStorage:
		return b.Vault.Token, true
	case secure.GitHubStorage:
		return b.GitHub.Token, true
	default:
		return secure.Token{}, false
	}
}

func publicKeyHex(kp *crypto.KeyPair) string {
	if kp == nil {
		return ""
	}
	return hex.EncodeToString(kp.PublicKey())
}
