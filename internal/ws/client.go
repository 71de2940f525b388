package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"heartdrop/internal/clock"
	"heartdrop/internal/config"
	"heartdrop/internal/domain"
	"heartdrop/internal/gesture"
	"heartdrop/internal/layout"
	"heartdrop/internal/store"
	"heartdrop/internal/story"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 16384
)

// Client is one websocket connection. Each connection runs its own gesture
// recognizer, story controller and layout resolver; the like overlay and
// expansion slot live in the session's shared collection.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn

	// Buffered channel of outbound messages.
	Send chan []byte

	SessionID string

	coll     *store.Collection
	index    *gesture.HitIndex
	notifier *gesture.Notifier
	shaker   *gesture.ShakeTracker
	rec      *gesture.Recognizer
	story    *story.Controller
	bar      *layout.SearchBar

	clk      clock.Clock
	debounce time.Duration

	mu       sync.Mutex
	resolver *layout.Resolver
	touch    bool

	sendMu     sync.Mutex
	sendClosed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, sessionID string, coll *store.Collection,
	eng config.EngineConfig, clk clock.Clock) *Client {

	c := &Client{
		Hub:       hub,
		Conn:      conn,
		Send:      make(chan []byte, 64),
		SessionID: sessionID,
		coll:      coll,
		clk:       clk,
		debounce:  time.Duration(eng.ResizeDebounceMs) * time.Millisecond,
	}

	c.index = gesture.NewHitIndex()
	c.notifier = gesture.NewNotifier(clk,
		time.Duration(eng.ShakeMs)*time.Millisecond,
		time.Duration(eng.NoticeHoldMs)*time.Millisecond,
		time.Duration(eng.NoticeFadeMs)*time.Millisecond)
	c.shaker = gesture.NewShakeTracker(clk, time.Duration(eng.ShakeMs)*time.Millisecond)
	c.rec = gesture.NewRecognizer(clk, eng.DragThresholdPx,
		time.Duration(eng.ClickBudgetMs)*time.Millisecond,
		coll, c.index, c.notifier, c.shaker)
	c.story = story.NewController(clk,
		time.Duration(eng.ImageSlideMs)*time.Millisecond,
		time.Duration(eng.DescriptionSlideMs)*time.Millisecond,
		eng.SwipeThresholdPx, coll)
	c.bar = layout.NewSearchBar(clk, time.Duration(eng.SearchBarHideMs)*time.Millisecond)

	c.rec.OnHover(func(h gesture.Hover) {
		c.push(map[string]any{"type": EvtHover, "productId": h.ProductID, "likeMode": h.LikeMode, "canDrop": h.CanDrop})
	})
	c.notifier.OnChange(func(phase gesture.NoticePhase, message string) {
		c.push(map[string]any{"type": EvtNotice, "phase": int(phase), "message": message})
	})
	c.shaker.OnChange(func(productID int64, shaking bool) {
		c.push(map[string]any{"type": EvtShake, "productId": productID, "shaking": shaking})
	})
	c.story.OnFrame(func(f story.Frame) {
		c.push(map[string]any{"type": EvtFrame, "frame": f})
	})
	c.bar.OnChange(func(visible bool) {
		c.push(map[string]any{"type": EvtSearchBar, "visible": visible})
	})

	return c
}

// push marshals and queues an outbound event, dropping it if the send
// buffer is full (slow consumer; the write pump will close the socket).
// Engine timers can outlive the connection, so push must also tolerate a
// Send channel the hub has already closed.
func (c *Client) push(v map[string]any) {
	msg, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.sendClosed {
		return
	}
	select {
	case c.Send <- msg:
	default:
	}
}

// closeSend closes the outbound channel exactly once. Only the hub calls
// this; push holds the same lock so no engine event can race the close.
func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.sendClosed {
		return
	}
	c.sendClosed = true
	close(c.Send)
}

// shutdown tears the engine down: every pending timer is stopped so nothing
// fires into a dead connection.
func (c *Client) shutdown() {
	c.rec.Cancel(gesture.SourceMouse)
	c.rec.Cancel(gesture.SourcePointer)
	c.story.Collapse()
	c.notifier.Stop()
	c.shaker.ResetAll()
	c.bar.Stop()
	c.mu.Lock()
	if c.resolver != nil {
		c.resolver.Stop()
	}
	c.mu.Unlock()
}

// ReadPump pumps messages from the websocket connection into the engine.
func (c *Client) ReadPump() {
	defer func() {
		c.shutdown()
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws read: %v", err)
			}
			break
		}
		c.handleMessage(message)
	}
}

// WritePump pumps messages from the engine to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func source(s string) gesture.Source {
	if s == string(gesture.SourcePointer) {
		return gesture.SourcePointer
	}
	return gesture.SourceMouse
}

func (c *Client) handleMessage(message []byte) {
	var e Envelope
	if err := json.Unmarshal(message, &e); err != nil {
		log.Printf("ws unmarshal: %v", err)
		return
	}

	switch e.Type {
	case MsgPress:
		c.rec.Press(source(e.Source), e.X, e.Y, e.OriginX, e.OriginY)
	case MsgMove:
		c.rec.Move(source(e.Source), e.X, e.Y)
	case MsgRelease:
		c.finishGesture(source(e.Source), e.X, e.Y)
	case MsgCancel:
		c.rec.Cancel(source(e.Source))

	case MsgRects:
		c.index.Rebuild(e.Rects)

	case MsgExpand:
		p, err := c.coll.Get(e.ProductID)
		if err != nil {
			c.push(map[string]any{"type": EvtError, "error": "unknown product"})
			return
		}
		c.mu.Lock()
		touch := c.touch
		c.mu.Unlock()
		if err := c.story.Expand(p.Product, touch); err != nil {
			c.push(map[string]any{"type": EvtError, "error": "could not expand"})
			return
		}
		// The frame observer only carries indices; the deck itself goes out
		// once per expansion.
		c.push(map[string]any{"type": EvtSlides, "productId": p.ID, "slides": c.story.Slides()})
	case MsgCollapse:
		c.story.Collapse()
	case MsgNext:
		c.story.Next()
	case MsgPrev:
		c.story.Prev()
	case MsgClick:
		c.story.ClickAt(e.Frac)
	case MsgSwipe:
		c.story.Swipe(e.DX, e.DY)
	case MsgPause:
		c.story.Pause()
	case MsgResume:
		c.story.Resume()

	case MsgViewport:
		c.viewportChanged(domain.Viewport{Width: e.W, Height: e.H, Touch: e.Touch})

	case MsgSearch:
		c.coll.SetSearch(e.Q)
		c.push(map[string]any{"type": EvtSearchBar, "visible": c.bar.Visible(), "count": len(c.coll.Products())})
	case MsgBarEnter:
		c.bar.Enter()
	case MsgBarLeave:
		c.bar.Leave()
	}
}

func (c *Client) finishGesture(src gesture.Source, x, y float64) {
	outcome, pid := c.rec.Release(src, x, y)
	out := map[string]any{
		"type":     EvtGesture,
		"outcome":  int(outcome),
		"likeMode": c.rec.Mode() == gesture.ModeLike,
	}
	if pid != 0 {
		out["productId"] = pid
	}
	if outcome == gesture.OutcomeDrop {
		if p, err := c.coll.Get(pid); err == nil {
			out["liked"] = p.IsLiked
			out["favorites"] = p.Favorites
		}
	}
	c.push(out)
	if outcome == gesture.OutcomeModeToggle {
		c.push(map[string]any{"type": EvtMode, "likeMode": c.rec.Mode() == gesture.ModeLike})
	}
}

func (c *Client) viewportChanged(vp domain.Viewport) {
	c.mu.Lock()
	c.touch = vp.Touch
	r := c.resolver
	c.mu.Unlock()

	if r == nil {
		nr, err := layout.NewResolver(c.clk, c.debounce, vp)
		if err != nil {
			c.push(map[string]any{"type": EvtError, "error": "could not resolve layout"})
			return
		}
		nr.Observe(func(cfg domain.LayoutConfig) {
			c.push(map[string]any{"type": EvtLayout, "config": cfg})
		})
		c.mu.Lock()
		c.resolver = nr
		c.mu.Unlock()
		c.push(map[string]any{"type": EvtLayout, "config": nr.Current()})
		return
	}
	r.ViewportChanged(vp)
}
