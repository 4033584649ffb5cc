// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secure

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/safety-rules-config/internal/utils"
)

// BackendType is the discriminator of a [Backend].
type BackendType string

const (
	// InMemoryStorage keeps keys in process memory; nothing survives a
	// restart.
	InMemoryStorage BackendType = "in_memory_storage"
	// OnDiskStorageType keeps keys in a file under the node data directory.
	OnDiskStorageType BackendType = "on_disk_storage"
	// VaultStorage keeps keys in a Vault-compatible secret service.
	VaultStorage BackendType = "vault"
	// GitHubStorage reads keys from a GitHub repository. Test networks only.
	GitHubStorage BackendType = "github"
)

// Valid reports whether t names a known variant.
func (t BackendType) Valid() bool {
	switch t {
	case InMemoryStorage, OnDiskStorageType, VaultStorage, GitHubStorage:
		return true
	default:
		return false
	}
}

// DefaultOnDiskPath is the file name used when an on-disk backend omits
// "path".
const DefaultOnDiskPath = "secure_storage.json"

// Backend selects a secure storage variant. Only the settings field that
// matches Type is meaningful; the others stay zero.
type Backend struct {
	Type   BackendType
	OnDisk OnDiskStorage
	Vault  Vault
	GitHub GitHub
}

// OnDiskStorage stores keys in a single file. A relative Path is joined to
// the data directory, which is supplied at runtime and never serialized.
type OnDiskStorage struct {
	Path      string `json:"path"`
	Namespace string `json:"namespace,omitempty"`

	dataDir string
}

// Vault stores keys in a Vault-compatible secret service.
type Vault struct {
	Server        string `json:"server"`
	Namespace     string `json:"namespace,omitempty"`
	CACertificate string `json:"ca_certificate,omitempty"`
	Token         Token  `json:"token"`
}

// GitHub reads keys from files in a GitHub repository.
type GitHub struct {
	Owner      string `json:"owner"`
	Repository string `json:"repository"`
	Token      Token  `json:"token"`
}

// InMemoryBackend returns the in-memory backend.
func InMemoryBackend() Backend {
	return Backend{Type: InMemoryStorage}
}

// OnDiskBackend returns an on-disk backend with the given settings.
func OnDiskBackend(s OnDiskStorage) Backend {
	return Backend{Type: OnDiskStorageType, OnDisk: s}
}

// VaultBackend returns a Vault backend with the given settings.
func VaultBackend(v Vault) Backend {
	return Backend{Type: VaultStorage, Vault: v}
}

// GitHubBackend returns a GitHub backend with the given settings.
func GitHubBackend(g GitHub) Backend {
	return Backend{Type: GitHubStorage, GitHub: g}
}

// NewOnDiskStorage returns on-disk settings for path. An empty path selects
// [DefaultOnDiskPath].
func NewOnDiskStorage(path string) OnDiskStorage {
	if path == "" {
		path = DefaultOnDiskPath
	}
	return OnDiskStorage{Path: path}
}

// SetDataDir sets the directory relative paths are resolved against.
func (s *OnDiskStorage) SetDataDir(dir string) {
	s.dataDir = dir
}

// DataDir returns the directory set by [OnDiskStorage.SetDataDir].
func (s OnDiskStorage) DataDir() string {
	return s.dataDir
}

// FullPath returns Path if it is absolute, otherwise Path joined to the
// data directory.
func (s OnDiskStorage) FullPath() string {
	if filepath.IsAbs(s.Path) {
		return s.Path
	}
	return filepath.Join(s.dataDir, s.Path)
}

// MarshalJSON encodes b as an object tagged with "type".
func (b Backend) MarshalJSON() ([]byte, error) {
	switch b.Type {
	case InMemoryStorage:
		return utils.MarshalTagged(string(b.Type), nil)
	case OnDiskStorageType:
		return utils.MarshalTagged(string(b.Type), b.OnDisk)
	case VaultStorage:
		return utils.MarshalTagged(string(b.Type), b.Vault)
	case GitHubStorage:
		return utils.MarshalTagged(string(b.Type), b.GitHub)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, b.Type)
	}
}

// UnmarshalJSON decodes a tagged backend object. Unknown discriminators and
// unknown fields are rejected.
func (b *Backend) UnmarshalJSON(data []byte) error {
	tag, fields, err := utils.SplitTagged(data)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	decoded := Backend{Type: BackendType(tag)}
	switch decoded.Type {
	case InMemoryStorage:
		err = fields.RejectAll()
	case OnDiskStorageType:
		decoded.OnDisk = NewOnDiskStorage("")
		err = fields.DecodeInto(&decoded.OnDisk)
	case VaultStorage:
		if err = fields.Require("server", "token"); err == nil {
			err = fields.DecodeInto(&decoded.Vault)
		}
	case GitHubStorage:
		if err = fields.Require("owner", "repository", "token"); err == nil {
			err = fields.DecodeInto(&decoded.GitHub)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownBackend, tag)
	}
	if err != nil {
		return fmt.Errorf("backend %s: %w", tag, err)
	}

	*b = decoded
	return nil
}
