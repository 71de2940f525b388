package domain

// DeviceType classifies the viewer's runtime environment. The grid layout,
// card sizing and search-bar placement all key off this.
type DeviceType string

const (
	DeviceDesktop   DeviceType = "desktop"
	DeviceTabletPro DeviceType = "tabletLargePro"
	DeviceTablet    DeviceType = "tabletRegular"
	DeviceMobile    DeviceType = "mobile"
)

// Viewport is the raw input to device classification.
type Viewport struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Touch  bool `json:"touch"`
}

// LayoutConfig is the derived per-device layout profile. Dimension fields are
// CSS length expressions so calc()-based sizes survive round-tripping to the
// client untouched. Rows == 0 means auto flow (mobile).
type LayoutConfig struct {
	Device           DeviceType `json:"device"`
	Cols             int        `json:"cols"`
	Rows             int        `json:"rows,omitempty"`
	CardWidth        string     `json:"cardWidth"`
	CardHeight       string     `json:"cardHeight"`
	MaxCardWidth     string     `json:"maxCardWidth,omitempty"`
	MaxCardHeight    string     `json:"maxCardHeight,omitempty"`
	ContainerWidth   string     `json:"containerWidth"`
	ContainerHeight  string     `json:"containerHeight"`
	SearchBarTop     string     `json:"searchBarTop"`
	SearchBarCompact bool       `json:"searchBarCompact"`
	PaddingBottom    string     `json:"paddingBottom"`
}

// GridStyle is the computed style descriptor for the grid element itself.
type GridStyle struct {
	TemplateColumns string `json:"gridTemplateColumns"`
	MarginTop       string `json:"marginTop"`
	PaddingBottom   string `json:"paddingBottom"`
}

type CardStyle struct {
	Width     string `json:"width"`
	Height    string `json:"height"`
	MaxWidth  string `json:"maxWidth,omitempty"`
	MaxHeight string `json:"maxHeight,omitempty"`
}

type ContainerStyle struct {
	Width    string `json:"width"`
	Height   string `json:"height"`
	MaxWidth string `json:"maxWidth,omitempty"`
}
