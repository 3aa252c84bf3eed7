package here

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"np-server/config"
	"np-server/util"
)

func TestHereApiClientMock_Discover(t *testing.T) {
	// Arrange
	client := NewHereApiClientMock()

	expected, err := util.ReadDiscoverResponseFromJSON(config.GetResourcePath(config.DISCOVER_RESPONSE_RESOURCE))
	require.NoError(t, err)

	// Act
	response, err := client.Discover(context.Background(), 1.23, 4.56, "bank", 100)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, response, "Responses dont match")
	assert.NoError(t, response.Validate())
}

func TestHereApiClientMock_DiscoverTruncatesToLimit(t *testing.T) {
	client := NewHereApiClientMock()

	response, err := client.Discover(context.Background(), 1.23, 4.56, "bank", 2)

	require.NoError(t, err)
	assert.Len(t, response.Items, 2)
}
