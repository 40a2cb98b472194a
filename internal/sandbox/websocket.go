package sandbox

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is one frame of the SMS feed
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SMSMessage is the payload of an "sms" frame: the one-time code the sandbox
// would have texted to the merchant.
type SMSMessage struct {
	TransactionID string `json:"transactionId"`
	WalletID      string `json:"walletId"`
	SMSCode       string `json:"smsCode"`
	Message       string `json:"message"`
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

type smsHub struct {
	logger  *zap.Logger
	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

func newSMSHub(logger *zap.Logger) *smsHub {
	return &smsHub{
		logger:  logger,
		clients: make(map[*wsClient]struct{}),
	}
}

func (h *smsHub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *smsHub) unregister(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *smsHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast sends msg to every connected client. Slow clients drop frames.
func (h *smsHub) broadcast(msg SMSMessage) {
	frame, err := encodeFrame("sms", msg)
	if err != nil {
		h.logger.Error("failed to encode sms frame", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.logger.Warn("sms feed client too slow, dropping frame")
		}
	}
}

func encodeFrame(msgType string, payload any) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(WSMessage{Type: msgType, Payload: payloadBytes})
}

// HandleSMSFeed handles GET /sandbox/sms. Every one-time code issued after
// the "connected" frame is pushed to the client.
func (s *Server) HandleSMSFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade error", zap.Error(err))
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 64),
	}
	s.hub.register(client)

	if frame, err := encodeFrame("connected", map[string]string{"message": "Connected to sandbox SMS feed"}); err == nil {
		client.send <- frame
	}

	go client.writePump()
	go s.readPump(client)
}

// writePump pumps frames from the send channel to the connection
func (c *wsClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client frames and unregisters the client once the
// connection closes
func (s *Server) readPump(c *wsClient) {
	defer func() {
		s.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Debug("websocket closed", zap.Error(err))
			}
			return
		}
	}
}
