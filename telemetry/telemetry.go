// Package telemetry publishes placement events and a terminal summary for
// a single packing run over MQTT, mirroring the fire-and-forget position
// telemetry of a Valetudo vacuum-tracking service but for packed shapes
// instead of robot positions.
package telemetry

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/danherbriley/mamba-crystal-sorting-solution-riley/config"
)

// PlacementEvent describes one committed shape, published as JSON on
// <prefix>/placements.
type PlacementEvent struct {
	Count       int     `json:"count"`
	RotationDeg float64 `json:"rotationDeg"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	FilledRatio float64 `json:"filledRatio"`
	Timestamp   int64   `json:"timestamp"`
}

// Summary describes the terminal state of a run, published once on
// <prefix>/summary when the placer halts.
type Summary struct {
	Count       int     `json:"count"`
	FilledRatio float64 `json:"filledRatio"`
	Timestamp   int64   `json:"timestamp"`
}

// EventPublisher is the telemetry sink a Placer-driving caller reports
// progress to. Disabled telemetry and tests both use NoopPublisher /
// MockPublisher instead of MQTTPublisher.
type EventPublisher interface {
	PublishPlacement(PlacementEvent) error
	PublishSummary(Summary) error
	Disconnect()
}

// MQTTPublisher publishes events over MQTT: one message per commit plus a
// terminal summary, QoS 0 fire-and-forget.
type MQTTPublisher struct {
	client mqtt.Client
	prefix string
	qos    byte
}

// NewMQTTPublisher builds an MQTTPublisher from cfg. If cfg.MQTTBroker is
// empty (after the MQTT_BROKER env-var override) telemetry is disabled
// and a nil publisher, nil error is returned; callers should fall back
// to NoopPublisher in that case.
func NewMQTTPublisher(cfg config.Telemetry) (*MQTTPublisher, error) {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		broker = cfg.MQTTBroker
	}
	if broker == "" {
		return nil, nil
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)

	clientID := os.Getenv("MQTT_CLIENT_ID")
	if clientID == "" {
		clientID = "packer"
	}
	opts.SetClientID(clientID)

	username := os.Getenv("MQTT_USERNAME")
	if username != "" {
		opts.SetUsername(username)
		opts.SetPassword(os.Getenv("MQTT_PASSWORD"))
	}

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetMaxReconnectInterval(60 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("telemetry: MQTT connection interrupted (%v), auto-reconnect will retry", err)
	})

	prefix := os.Getenv("MQTT_PUBLISH_PREFIX")
	if prefix == "" {
		prefix = cfg.TopicPrefix
	}
	if prefix == "" {
		prefix = "packer"
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.WaitTimeout(10*time.Second) && token.Error() != nil {
		return nil, fmt.Errorf("connecting to MQTT broker %s: %w", broker, token.Error())
	}

	return &MQTTPublisher{client: client, prefix: prefix, qos: 0}, nil
}

// PublishPlacement implements EventPublisher. e.Timestamp is stamped with
// the current Unix time if the caller left it zero.
func (p *MQTTPublisher) PublishPlacement(e PlacementEvent) error {
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}
	return p.publish(p.prefix+"/placements", e)
}

// PublishSummary implements EventPublisher. s.Timestamp is stamped with
// the current Unix time if the caller left it zero.
func (p *MQTTPublisher) PublishSummary(s Summary) error {
	if s.Timestamp == 0 {
		s.Timestamp = time.Now().Unix()
	}
	return p.publish(p.prefix+"/summary", s)
}

func (p *MQTTPublisher) publish(topic string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling telemetry payload: %w", err)
	}
	token := p.client.Publish(topic, p.qos, false, payload)
	if token.WaitTimeout(2*time.Second) && token.Error() != nil {
		return fmt.Errorf("publishing to %s: %w", topic, token.Error())
	}
	return nil
}

// Disconnect implements EventPublisher.
func (p *MQTTPublisher) Disconnect() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}

// NoopPublisher discards every event; used when telemetry is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishPlacement(PlacementEvent) error { return nil }
func (NoopPublisher) PublishSummary(Summary) error          { return nil }
func (NoopPublisher) Disconnect()                           {}
