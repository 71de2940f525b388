package ws

import "heartdrop/internal/gesture"

// Envelope is the inbound message frame. Type selects which fields matter;
// everything else is ignored.
type Envelope struct {
	Type string `json:"type"`

	// press / move / release / cancel
	Source  string  `json:"source,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	OriginX float64 `json:"originX,omitempty"`
	OriginY float64 `json:"originY,omitempty"`

	// rects
	Rects []gesture.Rect `json:"rects,omitempty"`

	// story
	ProductID int64   `json:"productId,omitempty"`
	Frac      float64 `json:"frac,omitempty"`
	DX        float64 `json:"dx,omitempty"`
	DY        float64 `json:"dy,omitempty"`

	// viewport
	W     int  `json:"w,omitempty"`
	H     int  `json:"h,omitempty"`
	Touch bool `json:"touch,omitempty"`

	// search
	Q string `json:"q,omitempty"`
}

// Inbound message types.
const (
	MsgPress    = "press"
	MsgMove     = "move"
	MsgRelease  = "release"
	MsgCancel   = "cancel"
	MsgRects    = "rects"
	MsgExpand   = "expand"
	MsgCollapse = "collapse"
	MsgNext     = "story.next"
	MsgPrev     = "story.prev"
	MsgClick    = "story.click"
	MsgSwipe    = "story.swipe"
	MsgPause    = "story.pause"
	MsgResume   = "story.resume"
	MsgViewport = "viewport"
	MsgSearch   = "search"
	MsgBarEnter = "searchbar.enter"
	MsgBarLeave = "searchbar.leave"
)

// Outbound message types.
const (
	EvtHover        = "hover"
	EvtNotice       = "notice"
	EvtShake        = "shake"
	EvtFrame        = "frame"
	EvtSlides       = "slides"
	EvtGesture      = "gesture"
	EvtMode         = "mode"
	EvtLayout       = "layout"
	EvtSearchBar    = "searchbar"
	EvtAnnouncement = "announcement"
	EvtError        = "error"
)
