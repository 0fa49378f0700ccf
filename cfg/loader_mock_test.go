package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoader(t *testing.T) {
	loader, err := NewMockLoader()
	require.NoError(t, err)

	config, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", config.App.Env)
	assert.Equal(t, "memory", config.Storage.Driver)
	assert.NotEmpty(t, config.GithubStats.Secret)
	assert.NotEmpty(t, config.GithubApi.GraphqlUrl)
	assert.Greater(t, config.Http.Port, 0)
}
