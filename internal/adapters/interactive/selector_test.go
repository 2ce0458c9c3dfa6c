package interactive

import (
	"context"
	"testing"

	"github.com/divaprotocol/diva-deploy/internal/config"
	"github.com/divaprotocol/diva-deploy/internal/domain"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTarget_Shortcuts(t *testing.T) {
	single := []*domain.DeploymentTarget{{Name: "diva-staking", Artifact: "DIVAStaking"}}

	t.Run("non-interactive", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectTarget(context.Background(), single, "pick")
		assert.Error(t, err)
	})

	t.Run("empty list", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectTarget(context.Background(), nil, "pick")
		assert.Error(t, err)
	})

	t.Run("single target needs no prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		got, err := s.SelectTarget(context.Background(), single, "pick")
		require.NoError(t, err)
		assert.Equal(t, "diva-staking", got.Name)
	})
}

func TestFuzzySearch(t *testing.T) {
	color.NoColor = true
	options := formatTargetOptions([]*domain.DeploymentTarget{
		{Name: "divas-zk-airdrop", Artifact: "DivasZkAirdrop"},
		{Name: "diva-staking", Artifact: "DIVAStaking", ConstructorArgs: []string{"0x45"}},
	})
	assert.Equal(t, "diva-staking  DIVAStaking(0x45)", options[1])

	search := createFuzzySearchFunc(options)
	assert.True(t, search("", 0))
	assert.True(t, search("airdrop", 0))
	assert.False(t, search("airdrop", 1))
	assert.True(t, search("dvstk", 1))
}
