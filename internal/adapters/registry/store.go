package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/divaprotocol/diva-deploy/internal/usecase"
)

const (
	RegistryDir     = ".diva"
	DeploymentsFile = "deployments.json"
)

// Store keeps finished deployments in <project>/.diva/deployments.json,
// keyed by network and then by target name
type Store struct {
	rootDir     string
	now         func() time.Time
	mu          sync.Mutex
	loaded      bool
	deployments map[string]map[string]*domain.DeploymentRecord
}

// NewStore creates a store rooted at the project directory. Nothing is read
// or created until the store is first used.
func NewStore(cfg *config.RuntimeConfig) *Store {
	return &Store{
		rootDir:     cfg.ProjectRoot,
		now:         time.Now,
		deployments: make(map[string]map[string]*domain.DeploymentRecord),
	}
}

// SaveDeployment records a deployment, replacing any earlier record of the
// same target on the same network
func (s *Store) SaveDeployment(ctx context.Context, record *domain.DeploymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	if record.DeployedAt.IsZero() {
		record.DeployedAt = s.now().UTC()
	}

	byTarget, ok := s.deployments[record.Network]
	if !ok {
		byTarget = make(map[string]*domain.DeploymentRecord)
		s.deployments[record.Network] = byTarget
	}
	byTarget[record.Target] = record

	return s.save()
}

// ListDeployments returns all records sorted by network, then target
func (s *Store) ListDeployments(ctx context.Context) ([]*domain.DeploymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	var records []*domain.DeploymentRecord
	for _, byTarget := range s.deployments {
		for _, record := range byTarget {
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Network != records[j].Network {
			return records[i].Network < records[j].Network
		}
		return records[i].Target < records[j].Target
	})

	return records, nil
}

// load reads the registry file once; a missing file is an empty registry
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read deployment registry: %w", err)
	}

	if err := json.Unmarshal(data, &s.deployments); err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path(), err)
	}
	if s.deployments == nil {
		s.deployments = make(map[string]map[string]*domain.DeploymentRecord)
	}

	// Hand-edited files may carry null networks or records
	for network, byTarget := range s.deployments {
		for target, record := range byTarget {
			if record == nil {
				delete(byTarget, target)
			}
		}
		if len(byTarget) == 0 {
			delete(s.deployments, network)
		}
	}

	s.loaded = true
	return nil
}

// save writes the registry through a temp file and rename
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Join(s.rootDir, RegistryDir), 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", RegistryDir, err)
	}

	data, err := json.MarshalIndent(s.deployments, "", "  ")
	if err != nil {
		return err
	}

	path := s.path()
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

func (s *Store) path() string {
	return filepath.Join(s.rootDir, RegistryDir, DeploymentsFile)
}

// Ensure the store implements the interface
var _ usecase.DeploymentStore = (*Store)(nil)
