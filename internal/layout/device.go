// Package layout classifies viewports into device profiles and computes the
// grid geometry for each one.
package layout

import (
	"fmt"

	"heartdrop/internal/domain"
)

// Breakpoints. Tablet-pro detection additionally needs the portrait height so
// large touch laptops don't get the tablet treatment.
const (
	breakpointMobile   = 767
	breakpointTablet   = 1024
	tabletProMinWidth  = 1024
	tabletProMinHeight = 1366
)

// Detect classifies a viewport. The rules are mutually exclusive but must be
// evaluated in this order; reordering changes the outcome for touch devices
// sitting exactly on a breakpoint.
func Detect(vp domain.Viewport) domain.DeviceType {
	switch {
	case vp.Touch && vp.Width >= tabletProMinWidth && vp.Height >= tabletProMinHeight:
		return domain.DeviceTabletPro
	case vp.Touch && vp.Width >= 768 && vp.Width <= breakpointTablet:
		return domain.DeviceTablet
	case vp.Touch && vp.Width <= breakpointMobile:
		return domain.DeviceMobile
	default:
		// Big screens count as desktop regardless of touch support.
		return domain.DeviceDesktop
	}
}

var profiles = map[domain.DeviceType]domain.LayoutConfig{
	domain.DeviceDesktop: {
		Device:          domain.DeviceDesktop,
		Cols:            4,
		Rows:            3,
		CardWidth:       "12.5rem",
		CardHeight:      "15.65rem",
		ContainerWidth:  "calc(4 * 12.5rem + 3 * 1rem)",
		ContainerHeight: "calc(3 * 15.65rem + 2 * 1rem)",
		SearchBarTop:    "top-34",
		PaddingBottom:   "1rem",
	},
	domain.DeviceTabletPro: {
		Device:          domain.DeviceTabletPro,
		Cols:            4,
		Rows:            5,
		CardWidth:       "11rem",
		CardHeight:      "13.75rem",
		ContainerWidth:  "calc(4 * 11rem + 3 * 1rem)",
		ContainerHeight: "calc(5 * 13.75rem + 4 * 1rem)",
		SearchBarTop:    "top-38",
		PaddingBottom:   "1rem",
	},
	domain.DeviceTablet: {
		Device:          domain.DeviceTablet,
		Cols:            4,
		Rows:            5,
		CardWidth:       "9.5rem",
		CardHeight:      "11.875rem",
		ContainerWidth:  "calc(4 * 9.5rem + 3 * 1rem)",
		ContainerHeight: "calc(5 * 11.875rem + 4 * 1rem)",
		SearchBarTop:    "top-34",
		PaddingBottom:   "1rem",
	},
	domain.DeviceMobile: {
		Device: domain.DeviceMobile,
		Cols:   2,
		Rows:   0, // auto flow, clamped by the container instead
		// Two columns share the viewport minus outer padding and one gap.
		CardWidth:        "calc((100vw - 2rem - 1rem) / 2)",
		CardHeight:       "calc(((100vw - 2rem - 1rem) / 2) * 1.252)",
		MaxCardWidth:     "12.5rem",
		MaxCardHeight:    "15.65rem",
		ContainerWidth:   "calc(100vw - 2rem)",
		ContainerHeight:  "calc(100vh - 2rem)",
		SearchBarTop:     "top-16",
		SearchBarCompact: true,
		PaddingBottom:    "3rem",
	},
}

// Profile returns the layout profile for a device type. An unknown type is a
// logic gap in the classifier and fails loudly.
func Profile(dt domain.DeviceType) (domain.LayoutConfig, error) {
	cfg, ok := profiles[dt]
	if !ok {
		return domain.LayoutConfig{}, fmt.Errorf("unsupported device type: %q", dt)
	}
	return cfg, nil
}

// Resolve classifies the viewport and returns its full layout profile.
// Non-touch screens at tablet width get a fourth desktop row so the grid
// fills the shorter window.
func Resolve(vp domain.Viewport) (domain.LayoutConfig, error) {
	cfg, err := Profile(Detect(vp))
	if err != nil {
		return domain.LayoutConfig{}, err
	}
	if cfg.Device == domain.DeviceDesktop && !vp.Touch && vp.Width <= breakpointTablet {
		cfg.Rows = 4
		cfg.ContainerHeight = "calc(4 * 15.65rem + 3 * 1rem)"
	}
	return cfg, nil
}
