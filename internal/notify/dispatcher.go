package notify

import "log"

type Kind string

const (
	KindCheckIn Kind = "check-in"
	KindReady   Kind = "ready"
)

type Message struct {
	Kind         Kind
	Phone        string
	PetName      string
	ClientName   string
	ServiceNames string
}

// Dispatcher decouples notification delivery from the transaction that
// triggered it: the caller enqueues after commit and moves on. Send
// failures are logged, never surfaced.
type Dispatcher struct {
	client *WhatsAppClient
	queue  chan Message
}

func NewDispatcher(client *WhatsAppClient) *Dispatcher {
	d := &Dispatcher{
		client: client,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		var err error
		switch msg.Kind {
		case KindCheckIn:
			err = d.client.SendCheckIn(msg.Phone, msg.PetName, msg.ClientName, msg.ServiceNames)
		case KindReady:
			err = d.client.SendReady(msg.Phone, msg.PetName, msg.ClientName)
		}
		if err != nil {
			log.Printf("notify error (%s, pet %s): %v", msg.Kind, msg.PetName, err)
		}
	}
}

// Dispatch is fire-and-forget and nil-safe; a full queue drops the message.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}
	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
