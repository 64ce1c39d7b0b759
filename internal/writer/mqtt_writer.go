// internal/writer/mqtt_writer.go
package writer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tamzrod/ultrasonic-ranger/internal/poller"
)

// publisher is the contract the MQTT writer uses.
type publisher interface {
	Publish(topic string, qos byte, payload []byte) error
}

// Reading is the JSON document published per cycle.
type Reading struct {
	Sensor   string    `json:"sensor"`
	Seq      uint64    `json:"seq"`
	At       time.Time `json:"at"`
	Distance uint16    `json:"distance"`
	Ticks    uint16    `json:"ticks"`
	Outcome  string    `json:"outcome"`
}

type mqttWriter struct {
	pub   publisher
	topic string
	qos   byte
}

// NewMQTTWriter publishes each reading as JSON on topic.
func NewMQTTWriter(pub publisher, topic string, qos byte) Writer {
	return &mqttWriter{pub: pub, topic: topic, qos: qos}
}

func (w *mqttWriter) Write(res poller.PollResult) error {
	b, err := json.Marshal(Reading{
		Sensor:   res.SensorID,
		Seq:      res.Seq,
		At:       res.At.UTC(),
		Distance: res.Distance,
		Ticks:    res.Ticks,
		Outcome:  res.Outcome.String(),
	})
	if err != nil {
		return fmt.Errorf("mqtt: encode: %w", err)
	}
	if err := w.pub.Publish(w.topic, w.qos, b); err != nil {
		return fmt.Errorf("mqtt: topic=%s: %w", w.topic, err)
	}
	return nil
}
