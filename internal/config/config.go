// internal/config/config.go
package config

type Config struct {
	Ranger RangerConfig `yaml:"ranger"`
}

type RangerConfig struct {
	Sensor  SensorConfig  `yaml:"sensor"`
	Sim     SimConfig     `yaml:"sim"`
	Poll    PollConfig    `yaml:"poll"`
	Display DisplayConfig `yaml:"display"`
	Debug   DebugConfig   `yaml:"debug"`
	Modbus  ModbusConfig  `yaml:"modbus"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Log     LogConfig     `yaml:"log"`
}

// ---- SENSOR ----

const (
	BackendPeriph = "periph"
	BackendRpio   = "rpio"
	BackendSim    = "sim"
)

type SensorConfig struct {
	ID         string `yaml:"id"`
	Backend    string `yaml:"backend"`
	TriggerPin string `yaml:"trigger_pin"`
	EchoPin    string `yaml:"echo_pin"`
}

// SimConfig scripts the simulated sensor (backend: sim).
type SimConfig struct {
	RiseTicks  uint32 `yaml:"rise_ticks"`
	WidthTicks uint32 `yaml:"width_ticks"`
	NoEcho     bool   `yaml:"no_echo"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- OUTPUTS ----

const (
	UnitsRaw = "raw"
	UnitsCm  = "cm"
)

type DisplayConfig struct {
	Enabled bool   `yaml:"enabled"`
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
	Units   string `yaml:"units"`
}

type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Device  string `yaml:"device"` // serial device; empty => stderr
	Baud    int    `yaml:"baud"`
	Units   string `yaml:"units"`
}

const (
	ModbusTCP    = "tcp"
	ModbusRTU    = "rtu"
	ModbusIngest = "ingest" // Raw Ingest v1 over TCP
)

type ModbusConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Mode      string `yaml:"mode"`
	Endpoint  string `yaml:"endpoint"` // host:port (tcp, ingest) or serial device (rtu)
	Baud      int    `yaml:"baud"`
	UnitID    uint8  `yaml:"unit_id"`
	Register  uint16 `yaml:"register"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Device status block (optional, opt-in)
	StatusSlot *uint16 `yaml:"status_slot"`
	DeviceName string  `yaml:"device_name"`
}

type MQTTConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Broker    string `yaml:"broker"`
	ClientID  string `yaml:"client_id"`
	Topic     string `yaml:"topic"`
	QoS       byte   `yaml:"qos"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
