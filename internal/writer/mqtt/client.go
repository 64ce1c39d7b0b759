// internal/writer/mqtt/client.go
package mqtt

import (
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

type Config struct {
	Broker   string
	ClientID string
	Timeout  time.Duration
}

// Client is a connected MQTT publisher.
type Client struct {
	c       paho.Client
	timeout time.Duration
}

// Dial connects to the broker. Reconnects are handled by the library.
func Dial(cfg Config) (*Client, error) {
	if cfg.Broker == "" {
		return nil, errors.New("writer mqtt: broker required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(cfg.Timeout).
		SetWriteTimeout(cfg.Timeout).
		SetAutoReconnect(true)

	c := paho.NewClient(opts)
	tok := c.Connect()
	if !tok.WaitTimeout(cfg.Timeout) {
		return nil, fmt.Errorf("writer mqtt: connect %s: timeout", cfg.Broker)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("writer mqtt: connect %s: %w", cfg.Broker, err)
	}

	return &Client{c: c, timeout: cfg.Timeout}, nil
}

// Publish sends one message and waits for the broker to accept it.
func (c *Client) Publish(topic string, qos byte, payload []byte) error {
	tok := c.c.Publish(topic, qos, false, payload)
	if !tok.WaitTimeout(c.timeout) {
		return fmt.Errorf("writer mqtt: publish %s: timeout", topic)
	}
	return tok.Error()
}

// Close disconnects, allowing 250ms for in-flight work.
func (c *Client) Close() error {
	c.c.Disconnect(250)
	return nil
}
