package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("net")

// InputPath is where the remote input endpoint is served.
const InputPath = "/input"

// ErrDeviceAttached is returned to a device that connects while another
// one is attached.
var ErrDeviceAttached = errors.New("another input device is attached")

// Sink receives decoded input. It is called from the connection's
// goroutine.
type Sink func(Input)

// InputServer accepts a single remote input device over websocket and
// feeds its messages into a Sink.
type InputServer struct {
	sink     Sink
	upgrader websocket.Upgrader

	mu     sync.Mutex
	device *websocket.Conn
}

// NewInputServer returns a server delivering input to sink.
func NewInputServer(sink Sink) *InputServer {
	return &InputServer{
		sink: sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // devices on the local network
			},
		},
	}
}

// Attached reports whether a device is connected.
func (s *InputServer) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device != nil
}

func (s *InputServer) claim(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.device != nil {
		return false
	}
	s.device = conn
	return true
}

func (s *InputServer) release(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.device == conn {
		s.device = nil
	}
}

// ServeHTTP upgrades the request and reads the device until it leaves.
func (s *InputServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.Attached() {
		http.Error(w, ErrDeviceAttached.Error(), http.StatusConflict)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()
	if !s.claim(conn) {
		// lost the race against another device
		s.reject(conn, ErrDeviceAttached)
		return
	}
	defer s.release(conn)

	addr := conn.RemoteAddr().String()
	log.Infof("input device connected from %s", addr)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Infof("input device %s disconnected: %v", addr, err)
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.reject(conn, fmt.Errorf("malformed message: %w", err))
			continue
		}
		in, err := Decode(msg)
		if err != nil {
			s.reject(conn, err)
			continue
		}
		log.Debugf("received %q from %s", msg.Type, addr)
		s.sink(in)
	}
}

func (s *InputServer) reject(conn *websocket.Conn, err error) {
	log.Debugf("rejecting message from %s: %v", conn.RemoteAddr(), err)
	if werr := conn.WriteJSON(Reply{Type: "error", Message: err.Error()}); werr != nil {
		log.Errorf("error reply to %s failed: %v", conn.RemoteAddr(), werr)
	}
}

// Handler returns a mux serving the endpoint at InputPath.
func (s *InputServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(InputPath, s)
	return mux
}

// ListenAndServe serves the endpoint on addr until ctx is done.
func (s *InputServer) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves the endpoint on ln until ctx is done.
func (s *InputServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	log.Infof("remote input listening on %s%s", ln.Addr(), InputPath)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Client is the device side of the endpoint.
type Client struct {
	conn    *websocket.Conn
	replies chan Reply
}

// Dial connects to the endpoint on addr (host:port).
func Dial(ctx context.Context, addr string) (*Client, error) {
	url := "ws://" + addr + InputPath
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			return nil, ErrDeviceAttached
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c := &Client{conn: conn, replies: make(chan Reply, 16)}
	go c.read()
	return c, nil
}

func (c *Client) read() {
	defer close(c.replies)
	for {
		var r Reply
		if err := c.conn.ReadJSON(&r); err != nil {
			return
		}
		select {
		case c.replies <- r:
		default:
			log.Errorf("dropping reply %q: %s", r.Type, r.Message)
		}
	}
}

// Replies delivers the error replies sent by the board. It is closed when
// the connection ends.
func (c *Client) Replies() <-chan Reply { return c.replies }

// Send writes one message.
func (c *Client) Send(m Message) error {
	return c.conn.WriteJSON(m)
}

// Close says goodbye and closes the connection.
func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.conn.Close()
}
