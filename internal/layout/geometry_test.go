package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"heartdrop/internal/domain"
	"heartdrop/internal/layout"
)

func mustResolve(t *testing.T, vp domain.Viewport) domain.LayoutConfig {
	t.Helper()
	cfg, err := layout.Resolve(vp)
	require.NoError(t, err)
	return cfg
}

func TestSearchMargin(t *testing.T) {
	mobile := mustResolve(t, domain.Viewport{Width: 400, Height: 800, Touch: true})
	tablet := mustResolve(t, domain.Viewport{Width: 900, Height: 1200, Touch: true})
	pro := mustResolve(t, domain.Viewport{Width: 1200, Height: 1400, Touch: true})
	desktop := mustResolve(t, domain.Viewport{Width: 1920, Height: 1080})

	// Margin needs touch AND an active search.
	require.Equal(t, "0", layout.SearchMargin(mobile, false, true))
	require.Equal(t, "0", layout.SearchMargin(desktop, true, false))

	// Positions map to distinct margins.
	require.Equal(t, "4.5rem", layout.SearchMargin(mobile, true, true))  // top-16
	require.Equal(t, "5.5rem", layout.SearchMargin(tablet, true, true))  // top-34
	require.Equal(t, "6.5rem", layout.SearchMargin(pro, true, true))     // top-38
}

func TestGridStyle(t *testing.T) {
	desktop := mustResolve(t, domain.Viewport{Width: 1920, Height: 1080})
	st := layout.Grid(desktop, false, false)
	require.Equal(t, "repeat(4, minmax(0, 1fr))", st.TemplateColumns)
	require.Equal(t, "0", st.MarginTop)
	require.Equal(t, "1rem", st.PaddingBottom)

	mobile := mustResolve(t, domain.Viewport{Width: 400, Height: 800, Touch: true})
	st = layout.Grid(mobile, true, true)
	require.Equal(t, "repeat(2, minmax(0, 1fr))", st.TemplateColumns)
	require.Equal(t, "4.5rem", st.MarginTop)
	require.Equal(t, "3rem", st.PaddingBottom)
}

func TestContainerClampOnlyOnBoundedProfiles(t *testing.T) {
	desktop := mustResolve(t, domain.Viewport{Width: 1920, Height: 1080})
	st := layout.Container(desktop)
	require.Equal(t, "calc(4 * 12.5rem + 3 * 1rem)", st.Width)
	require.Empty(t, st.MaxWidth)

	mobile := mustResolve(t, domain.Viewport{Width: 400, Height: 800, Touch: true})
	st = layout.Container(mobile)
	require.Equal(t, "calc(100vw - 2rem)", st.Width)
	require.Equal(t, "calc(2 * 12.5rem + 1 * 1rem)", st.MaxWidth)
}

func TestCardStyleCarriesBounds(t *testing.T) {
	mobile := mustResolve(t, domain.Viewport{Width: 400, Height: 800, Touch: true})
	st := layout.Card(mobile)
	require.Equal(t, "calc((100vw - 2rem - 1rem) / 2)", st.Width)
	require.Equal(t, "12.5rem", st.MaxWidth)
	require.Equal(t, "15.65rem", st.MaxHeight)
}

func TestVisibleWindow(t *testing.T) {
	// 4 columns of 200px cards with 16px gaps in an 880px container.
	w := layout.VisibleWindow(24, 880, 500, 0, 200, 250, 16)

	// ceil(500/266)+2 = 4 rows visible from row 0.
	require.Len(t, w.Items, 16)
	require.Equal(t, 0, w.Items[0].Index)
	require.Equal(t, float64(0), w.Items[0].X)
	require.Equal(t, 15, w.Items[15].Index)
	require.Equal(t, 3, w.Items[15].Row)
	require.Equal(t, 3, w.Items[15].Col)
	require.Equal(t, 3*216.0, w.Items[15].X)
	require.Equal(t, 3*266.0, w.Items[15].Y)

	// 24 cards over 4 columns is 6 rows of 266px.
	require.Equal(t, 6*266.0, w.TotalHeight)
}

func TestVisibleWindowScrolledWithBufferRow(t *testing.T) {
	w := layout.VisibleWindow(24, 880, 500, 700, 200, 250, 16)
	// scrollTop 700 is inside row 2; the lead-in buffer starts at row 1.
	require.Equal(t, 1, w.Items[0].Row)
	require.Equal(t, 4, w.Items[0].Index)
	last := w.Items[len(w.Items)-1]
	require.Equal(t, 19, last.Index)
	require.Equal(t, 4, last.Row)
}

func TestVisibleWindowDegenerateInputs(t *testing.T) {
	require.Empty(t, layout.VisibleWindow(0, 880, 500, 0, 200, 250, 16).Items)
	require.Empty(t, layout.VisibleWindow(10, 0, 500, 0, 200, 250, 16).Items)

	// A container narrower than one card still lays out a single column.
	w := layout.VisibleWindow(4, 150, 500, 0, 200, 250, 16)
	require.NotEmpty(t, w.Items)
	require.Equal(t, 0, w.Items[0].Col)
	require.Equal(t, 4*266.0, w.TotalHeight)
}
