package controllers

import (
	"encoding/json"
	"log"

	"github.com/olahol/melody"
)

var wsHub *melody.Melody

// InitNotifier gắn hub websocket cho các controller cần đẩy thông báo
func InitNotifier(m *melody.Melody) {
	wsHub = m
}

// BroadcastEvent đẩy một sự kiện tới mọi client websocket đang kết nối
func BroadcastEvent(event string, data interface{}) {
	if wsHub == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  data,
	})
	if err != nil {
		log.Printf("Không thể serialize sự kiện %s: %v", event, err)
		return
	}
	if err := wsHub.Broadcast(payload); err != nil {
		log.Printf("Không thể broadcast sự kiện %s: %v", event, err)
	}
}
