package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/mohameddsalmann/resturants-mangment/entity"
	"github.com/mohameddsalmann/resturants-mangment/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans order events out to kitchen displays and owner dashboards,
// one room per restaurant.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type OrderEvent struct {
	Type  string        `json:"type"` // order_created | status_changed
	Order *entity.Order `json:"order"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.Order.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.Order.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderCreated implements services.OrderNotifier.
func (h *OrderHub) OrderCreated(o *entity.Order) {
	h.broadcast <- OrderEvent{Type: "order_created", Order: o}
}

// OrderStatusChanged implements services.OrderNotifier.
func (h *OrderHub) OrderStatusChanged(o *entity.Order) {
	h.broadcast <- OrderEvent{Type: "status_changed", Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (kitchen and owner tokens only; the restaurant comes
// from the token, never from the client).
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	claims := utils.CurrentClaims(c)
	if claims == nil || claims.RestaurantID == 0 {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no restaurant"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: claims.RestaurantID}
	h.register <- sub

	// Reader loop only drains control frames; the feed is one-way.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
