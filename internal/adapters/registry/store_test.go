package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	store := NewStore(&config.RuntimeConfig{ProjectRoot: root})
	store.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return store, root
}

func TestStore_EmptyWhenMissing(t *testing.T) {
	store, root := newTestStore(t)

	records, err := store.ListDeployments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	// reading must not create the registry directory
	_, err = os.Stat(filepath.Join(root, RegistryDir))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SaveAndReload(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDeployment(ctx, &domain.DeploymentRecord{
		Network:  "sepolia",
		Target:   "diva-staking",
		Artifact: "DIVAStaking",
		Address:  "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TxHash:   "0xaaa",
	}))
	require.NoError(t, store.SaveDeployment(ctx, &domain.DeploymentRecord{
		Network:  "mainnet",
		Target:   "erc20v2-claim",
		Artifact: "ERC20V2Claim",
		Address:  "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		TxHash:   "0xbbb",
	}))

	reopened := NewStore(&config.RuntimeConfig{ProjectRoot: root})
	records, err := reopened.ListDeployments(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "mainnet", records[0].Network)
	assert.Equal(t, "sepolia", records[1].Network)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", records[1].Address)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), records[1].DeployedAt)
}

func TestStore_RedeployReplaces(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, addr := range []string{"0x1111111111111111111111111111111111111111", "0x2222222222222222222222222222222222222222"} {
		require.NoError(t, store.SaveDeployment(ctx, &domain.DeploymentRecord{
			Network: "sepolia",
			Target:  "diva-staking",
			Address: addr,
		}))
	}

	records, err := store.ListDeployments(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", records[0].Address)
}

func TestStore_CorruptFile(t *testing.T) {
	store, root := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, RegistryDir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, RegistryDir, DeploymentsFile), []byte("{not json"), 0644))

	_, err := store.ListDeployments(context.Background())
	assert.Error(t, err)
}

func TestStore_NullEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "null network", content: `{"sepolia": null}`},
		{name: "null records", content: `{"sepolia": {"a": null, "b": null}}`},
		{name: "mixed", content: `{"mainnet": null, "sepolia": {"a": null, "diva-staking": {"network": "sepolia", "target": "diva-staking", "address": "0x1111111111111111111111111111111111111111"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, root := newTestStore(t)
			require.NoError(t, os.MkdirAll(filepath.Join(root, RegistryDir), 0755))
			require.NoError(t, os.WriteFile(filepath.Join(root, RegistryDir, DeploymentsFile), []byte(tt.content), 0644))

			ctx := context.Background()
			require.NotPanics(t, func() {
				records, err := store.ListDeployments(ctx)
				require.NoError(t, err)
				for _, record := range records {
					assert.NotNil(t, record)
				}
			})

			require.NotPanics(t, func() {
				require.NoError(t, store.SaveDeployment(ctx, &domain.DeploymentRecord{
					Network: "sepolia",
					Target:  "erc20v2-claim",
					Address: "0x2222222222222222222222222222222222222222",
				}))
			})

			records, err := NewStore(&config.RuntimeConfig{ProjectRoot: root}).ListDeployments(ctx)
			require.NoError(t, err)
			targets := make([]string, 0, len(records))
			for _, record := range records {
				targets = append(targets, record.Target)
			}
			assert.Contains(t, targets, "erc20v2-claim")
			assert.NotContains(t, targets, "a")
		})
	}
}
