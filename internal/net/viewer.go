// Package net shares the live board with read-only viewers over WebSocket
// and advertises the viewer on the local network.
package net

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"CurveBoard/internal/render"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 4 * 1024

	sendBuffer = 16
)

// Viewer fans recorded frames out to connected browsers. The most recent
// frame is kept so late joiners and /frame.png see the current board.
type Viewer struct {
	mu    sync.RWMutex
	peers map[string]*peer
	last  render.Frame
	raw   []byte

	upgrader websocket.Upgrader
	router   *mux.Router
}

type peer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// NewViewer creates a viewer with its routes registered.
func NewViewer() *Viewer {
	v := &Viewer{
		peers: make(map[string]*peer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	r := mux.NewRouter()
	r.HandleFunc("/ws", v.handleWS)
	r.HandleFunc("/frame", v.handleFrame).Methods(http.MethodGet)
	r.HandleFunc("/frame.png", v.handlePNG).Methods(http.MethodGet)
	r.HandleFunc("/healthz", v.handleHealth).Methods(http.MethodGet)
	v.router = r
	return v
}

// Handler returns the HTTP handler serving the viewer routes.
func (v *Viewer) Handler() http.Handler { return v.router }

// Peers returns the number of connected viewers.
func (v *Viewer) Peers() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.peers)
}

// Publish stores the recorder's frame as the current board and sends it to
// every viewer. A frame identical to the last one is dropped and Publish
// reports false. Viewers that cannot keep up skip frames.
func (v *Viewer) Publish(rec *render.Recorder, revision uint64) (bool, error) {
	raw, err := rec.MarshalFrame(revision)
	if err != nil {
		return false, fmt.Errorf("encode frame: %w", err)
	}

	// Sends happen under the lock so remove cannot close a channel mid-send.
	v.mu.Lock()
	defer v.mu.Unlock()
	if bytes.Equal(raw, v.raw) {
		return false, nil
	}
	v.last = rec.Frame(revision)
	v.raw = raw
	for _, p := range v.peers {
		select {
		case p.send <- raw:
		default:
		}
	}
	return true, nil
}

// Latest returns the last published frame.
func (v *Viewer) Latest() render.Frame {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.last
}

// ListenAndServe serves the viewer on addr until ctx is cancelled.
func (v *Viewer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           v.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[VIEWER] Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("viewer server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		v.closeAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("viewer shutdown: %w", err)
		}
		return nil
	}
}

func (v *Viewer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := v.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[VIEWER] Upgrade failed: %v", err)
		return
	}

	p := &peer{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	v.mu.Lock()
	v.peers[p.id] = p
	if v.raw != nil {
		p.send <- v.raw
	}
	v.mu.Unlock()
	log.Printf("[VIEWER] Viewer %s connected from %s", p.id, r.RemoteAddr)

	go v.writePump(p)
	v.readPump(p)
}

// readPump discards incoming messages; it exists to service pongs and detect
// the connection closing.
func (v *Viewer) readPump(p *peer) {
	defer v.remove(p)

	p.conn.SetReadLimit(maxMsgSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[VIEWER] Viewer %s read error: %v", p.id, err)
			}
			return
		}
	}
}

func (v *Viewer) writePump(p *peer) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.send:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := p.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (v *Viewer) remove(p *peer) {
	v.mu.Lock()
	if _, ok := v.peers[p.id]; ok {
		delete(v.peers, p.id)
		close(p.send)
	}
	v.mu.Unlock()
	log.Printf("[VIEWER] Viewer %s disconnected", p.id)
}

func (v *Viewer) closeAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for id, p := range v.peers {
		delete(v.peers, id)
		close(p.send)
	}
}

func (v *Viewer) handleFrame(w http.ResponseWriter, r *http.Request) {
	v.mu.RLock()
	raw := v.raw
	v.mu.RUnlock()
	if raw == nil {
		http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

func (v *Viewer) handlePNG(w http.ResponseWriter, r *http.Request) {
	frame := v.Latest()
	if frame.Width <= 0 || frame.Height <= 0 {
		http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
		return
	}

	raster := render.NewRaster(frame.Width, frame.Height)
	render.Replay(frame, raster)

	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf); err != nil {
		log.Printf("[VIEWER] PNG encode failed: %v", err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (v *Viewer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"peers":  v.Peers(),
	})
}
