package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/igor-rodz/Projeto-delivery/repository"
	"github.com/igor-rodz/Projeto-delivery/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans order changes out to dashboard sessions, keyed by business.
// Events are opaque "something changed" pokes: the dashboard re-fetches its
// order list on receipt instead of patching local state, so a lost or
// duplicated event can at worst delay freshness, never corrupt it.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // businessID -> connections
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	bizRepo    *repository.BusinessRepository
}

type subscription struct {
	Conn       *websocket.Conn
	BusinessID uint
}

type OrderEvent struct {
	BusinessID uint   `json:"businessId"`
	OrderID    uint   `json:"orderId"`
	Action     string `json:"action"` // insert | update
}

func NewOrderHub(bizRepo *repository.BusinessRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		bizRepo:    bizRepo,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.BusinessID] == nil {
				h.clients[sub.BusinessID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.BusinessID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.BusinessID][sub.Conn]; ok {
				delete(h.clients[sub.BusinessID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.BusinessID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.BusinessID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify implements services.Notifier.
func (h *OrderHub) Notify(businessID, orderID uint, action string) {
	h.broadcast <- OrderEvent{BusinessID: businessID, OrderID: orderID, Action: action}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/dashboard/orders — one subscription per dashboard session,
// scoped to the business the authenticated user owns.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	b, err := h.bizRepo.GetByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no business for this user"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, BusinessID: b.ID}
	h.register <- sub

	go h.listen(sub)
}

// listen drains the connection until it drops; the dashboard never sends
// anything we act on.
func (h *OrderHub) listen(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
