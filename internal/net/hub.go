package net

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"BezierBoard/internal/export"
	"BezierBoard/internal/state"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	// sendQueue is how many snapshots a viewer may lag behind before it is
	// dropped.
	sendQueue = 8
)

// Message is the JSON form of a snapshot sent to viewers.
type Message struct {
	Session    string       `json:"session"`
	Revision   uint64       `json:"revision"`
	SourcePath string       `json:"source_path"`
	Curves     [][6]float32 `json:"curves"`
}

// NewMessage converts snap to its wire form. Curves are in insertion order,
// each as from.x from.y to.x to.y control.x control.y.
func NewMessage(snap state.Snapshot) Message {
	m := Message{
		Session:    snap.Session,
		Revision:   snap.Revision,
		SourcePath: snap.Document.SourcePath,
		Curves:     make([][6]float32, 0, snap.Document.Curves.Len()),
	}
	for c := range snap.Document.Curves.All() {
		m.Curves = append(m.Curves, c.Record())
	}
	return m
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans published snapshots out to read-only websocket viewers and keeps
// the latest one for new connections and the SVG endpoint. It only ever sees
// immutable snapshots.
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	latest  state.Snapshot
	frame   []byte
	svg     []byte
	clients map[*client]struct{}
}

// NewHub returns a hub with an empty document published.
func NewHub(log *zap.Logger) *Hub {
	h := &Hub{
		log:     log,
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Viewers are read-only, any origin may watch.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	if err := h.Publish(state.Snapshot{}); err != nil {
		log.Error("share: encode empty snapshot", zap.Error(err))
	}
	return h
}

// Publish makes snap the current document. Snapshots older than the current
// revision of the same session are ignored.
func (h *Hub) Publish(snap state.Snapshot) error {
	frame, err := json.Marshal(NewMessage(snap))
	if err != nil {
		return err
	}
	svg, err := export.SVG(snap.Document.Curves).Bytes()
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.frame != nil && snap.Session == h.latest.Session && snap.Revision < h.latest.Revision {
		return nil
	}
	h.latest, h.frame, h.svg = snap, frame, svg
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.log.Warn("share: dropping slow viewer", zap.String("remote", c.conn.RemoteAddr().String()))
			h.removeLocked(c)
		}
	}
	return nil
}

// Latest returns the most recently published snapshot.
func (h *Hub) Latest() state.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Handler serves /ws and /document.svg.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", h.serveWS)
	mux.HandleFunc("GET /document.svg", h.serveSVG)
	return mux
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) serveSVG(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	svg, rev := h.svg, h.latest.Revision
	h.mu.RUnlock()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, "document.svg", time.Time{}, bytes.NewReader(svg))
	h.log.Debug("share: served svg", zap.Uint64("revision", rev), zap.String("remote", r.RemoteAddr))
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("share: websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendQueue)}

	h.mu.Lock()
	c.send <- h.frame
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Info("share: viewer connected", zap.String("remote", conn.RemoteAddr().String()), zap.Int("viewers", n))

	go h.writePump(c)
	go h.readPump(c)
}

// removeLocked unregisters c and closes its queue, which ends its writer.
func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// readPump discards anything a viewer sends and notices when it goes away.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("share: viewer read", zap.Error(err))
			}
			h.log.Info("share: viewer disconnected", zap.String("remote", c.conn.RemoteAddr().String()))
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(c)
				return
			}
		}
	}
}
