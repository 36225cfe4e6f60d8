package tracking

import (
	"encoding/json"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"
)

const trackingTopic = "storefront_tracking"

type RabbitTracking struct {
	connection *amqp.Connection
}

func NewRabbitTracking(url string) (*RabbitTracking, error) {
	ret := &RabbitTracking{}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(
		trackingTopic,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return err
	}
	_, err = ch.QueueDeclare(
		trackingTopic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	ch, err := t.connection.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return ch.Publish(
		trackingTopic,
		trackingTopic,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        bytes,
		},
	)
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) error {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return t.send(SessionEvent{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId},
		UserAgent: r.UserAgent(),
		Ip:        ip,
		Language:  r.Header.Get("Accept-Language"),
	})
}

func (t *RabbitTracking) TrackListing(sessionId string, domain types.Domain, state types.FilterState, page int) error {
	return t.send(ListingEvent{
		BaseEvent: &BaseEvent{Event: 1, SessionId: sessionId},
		Domain:    domain,
		State:     state,
		Page:      page,
	})
}

func (t *RabbitTracking) TrackPage(sessionId string, domain types.Domain, page int) error {
	return t.send(PageEvent{
		BaseEvent: &BaseEvent{Event: 2, SessionId: sessionId},
		Domain:    domain,
		Page:      page,
	})
}

func (t *RabbitTracking) TrackClick(sessionId string, productId uint, position float32) error {
	return t.send(ClickEvent{
		BaseEvent: &BaseEvent{Event: 3, SessionId: sessionId},
		ProductId: productId,
		Position:  position,
	})
}
