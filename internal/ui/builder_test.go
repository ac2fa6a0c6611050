package ui

import (
	"errors"
	"testing"

	"transit/internal/config"
	"transit/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChrome_AllPanels(t *testing.T) {
	c, err := BuildChrome(registry.Default(), config.Default(), nil)
	require.NoError(t, err)

	for _, id := range Panels {
		assert.NotNil(t, c.Content(id), "panel %s", id)
	}
	assert.Empty(t, c.Heading(PanelWelcome))
	assert.Equal(t, "Owners & Staff", c.Heading(PanelOwners))

	owners := c.Content(PanelOwners).(*CardGridView)
	assert.Len(t, owners.Cards, len(registry.Default().Owners()))
	assert.Equal(t, "owners/0", owners.Cards[0].Image.Key)
}

func TestBuildChrome_NilRegistryStillUsable(t *testing.T) {
	c, err := BuildChrome(nil, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoRegistry))

	grid := c.Content(PanelOwners)
	require.NotNil(t, grid)
	grid.SetSize(80, 20)
	assert.NotEmpty(t, grid.View(), "an empty grid shows a notice")
}

func TestChrome_HitHeader(t *testing.T) {
	cfg := config.Default()
	c, err := BuildChrome(registry.Default(), cfg, nil)
	require.NoError(t, err)
	c.Header(160, "", PanelWelcome, "")

	msg := c.HitHeader(c.brandRect.X, 0)()
	assert.Equal(t, GoHomeMsg{}, msg)

	r := c.tabRects[PanelMap]
	msg = c.HitHeader(r.X+r.W-1, 0)()
	assert.Equal(t, ActivateTabMsg{Panel: PanelMap}, msg)

	require.Len(t, c.actionRects, 2)
	a := c.actionRects[1]
	msg = c.HitHeader(a.X, 0)()
	assert.Equal(t, OpenLinkMsg{URL: cfg.Links.Discord, Label: "Discord"}, msg)

	assert.Nil(t, c.HitHeader(0, 1), "only the header row is live")
}
