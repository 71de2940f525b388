package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"heartdrop/internal/domain"
	"heartdrop/internal/layout"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		vp   domain.Viewport
		want domain.DeviceType
	}{
		{"large touch portrait is tablet pro", domain.Viewport{Width: 1200, Height: 1400, Touch: true}, domain.DeviceTabletPro},
		{"same size without touch is desktop", domain.Viewport{Width: 1200, Height: 1400}, domain.DeviceDesktop},
		{"tablet pro needs the portrait height", domain.Viewport{Width: 1200, Height: 800, Touch: true}, domain.DeviceTablet},
		{"mid touch width is tablet", domain.Viewport{Width: 900, Height: 1200, Touch: true}, domain.DeviceTablet},
		{"tablet upper bound inclusive", domain.Viewport{Width: 1024, Height: 768, Touch: true}, domain.DeviceTablet},
		{"narrow touch is mobile", domain.Viewport{Width: 400, Height: 800, Touch: true}, domain.DeviceMobile},
		{"mobile upper bound inclusive", domain.Viewport{Width: 767, Height: 800, Touch: true}, domain.DeviceMobile},
		{"narrow without touch is desktop", domain.Viewport{Width: 400, Height: 800}, domain.DeviceDesktop},
		{"wide desktop", domain.Viewport{Width: 1920, Height: 1080}, domain.DeviceDesktop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, layout.Detect(tc.vp))
		})
	}
}

func TestProfileUnknownTypeFails(t *testing.T) {
	_, err := layout.Profile(domain.DeviceType("fridge"))
	require.Error(t, err)
}

func TestResolveProfiles(t *testing.T) {
	cfg, err := layout.Resolve(domain.Viewport{Width: 1920, Height: 1080})
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Cols)
	require.Equal(t, 3, cfg.Rows)
	require.Equal(t, "12.5rem", cfg.CardWidth)
	require.Equal(t, "15.65rem", cfg.CardHeight)
	require.Equal(t, "top-34", cfg.SearchBarTop)

	cfg, err = layout.Resolve(domain.Viewport{Width: 1200, Height: 1400, Touch: true})
	require.NoError(t, err)
	require.Equal(t, domain.DeviceTabletPro, cfg.Device)
	require.Equal(t, 5, cfg.Rows)
	require.Equal(t, "11rem", cfg.CardWidth)
	require.Equal(t, "top-38", cfg.SearchBarTop)

	cfg, err = layout.Resolve(domain.Viewport{Width: 900, Height: 1200, Touch: true})
	require.NoError(t, err)
	require.Equal(t, domain.DeviceTablet, cfg.Device)
	require.Equal(t, "9.5rem", cfg.CardWidth)

	cfg, err = layout.Resolve(domain.Viewport{Width: 400, Height: 800, Touch: true})
	require.NoError(t, err)
	require.Equal(t, domain.DeviceMobile, cfg.Device)
	require.Equal(t, 2, cfg.Cols)
	require.Zero(t, cfg.Rows)
	require.True(t, cfg.SearchBarCompact)
	require.Equal(t, "3rem", cfg.PaddingBottom)
}

func TestResolveSmallDesktopGetsFourthRow(t *testing.T) {
	cfg, err := layout.Resolve(domain.Viewport{Width: 1000, Height: 700})
	require.NoError(t, err)
	require.Equal(t, domain.DeviceDesktop, cfg.Device)
	require.Equal(t, 4, cfg.Rows)
	require.Equal(t, "calc(4 * 15.65rem + 3 * 1rem)", cfg.ContainerHeight)

	// Past the tablet breakpoint the regular three rows come back.
	cfg, err = layout.Resolve(domain.Viewport{Width: 1025, Height: 700})
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Rows)
}
