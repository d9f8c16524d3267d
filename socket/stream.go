package socket

import (
	"campushub_server/global"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
)

type stream_message struct {
	Type    string
	From    string
	Message string
	Clients int
}

func marshal_message(msg stream_message) []byte {
	payload, err := jsoniter.Marshal(msg)
	if err != nil {
		global.InternalLogger.Println("jsoniter_marshal: " + err.Error())
		return nil
	}
	return payload
}

func broadcast_system(message string) {
	payload := marshal_message(stream_message{
		Type:    "system",
		Message: message,
		Clients: client_count(),
	})
	if payload != nil {
		broadcast(payload)
	}
}

// Stream relays every inbound message to all connected clients. Delivery
// is best effort with no ordering or persistence guarantees.
func Stream(ws *websocket.Conn) {

	username := ws.Locals("username").(string)

	clientID, messageChannel := create_client()
	if clientID == "" {
		ws.Close()
		return
	}

	done := make(chan struct{})

	go func() {
		defer ws.Close()
		for {
			select {
			case payload := <-messageChannel:
				if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	broadcast_system(username + " joined")

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}
		payload := marshal_message(stream_message{
			Type:    "chat",
			From:    username,
			Message: string(data),
		})
		if payload != nil {
			broadcast(payload)
		}
	}

	close(done)
	delete_client(clientID)
	broadcast_system(username + " left")
}
