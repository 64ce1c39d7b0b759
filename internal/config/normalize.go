// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultSensorID      = "hcsr04"
	DefaultIntervalMs    = 1000
	DefaultColumns       = 16
	DefaultRows          = 2
	DefaultDebugBaud     = 57600
	DefaultRTUBaud       = 19200
	DefaultModbusTimeout = 1000
	DefaultMQTTTimeout   = 2000
	DeviceNameMaxChars   = 16
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	r := &cfg.Ranger

	if r.Sensor.ID == "" {
		r.Sensor.ID = DefaultSensorID
	}
	if r.Poll.IntervalMs == 0 {
		r.Poll.IntervalMs = DefaultIntervalMs
	}

	if r.Display.Columns == 0 {
		r.Display.Columns = DefaultColumns
	}
	if r.Display.Rows == 0 {
		r.Display.Rows = DefaultRows
	}
	if r.Display.Units == "" {
		r.Display.Units = UnitsRaw
	}

	if r.Debug.Baud == 0 {
		r.Debug.Baud = DefaultDebugBaud
	}
	if r.Debug.Units == "" {
		r.Debug.Units = UnitsRaw
	}

	if r.Modbus.Mode == "" {
		r.Modbus.Mode = ModbusTCP
	}
	if r.Modbus.TimeoutMs == 0 {
		r.Modbus.TimeoutMs = DefaultModbusTimeout
	}
	if r.Modbus.Mode == ModbusRTU && r.Modbus.Baud == 0 {
		r.Modbus.Baud = DefaultRTUBaud
	}
	// ASCII already validated; truncate to the status block capacity.
	if len(r.Modbus.DeviceName) > DeviceNameMaxChars {
		r.Modbus.DeviceName = r.Modbus.DeviceName[:DeviceNameMaxChars]
	}
	if r.Modbus.DeviceName == "" {
		r.Modbus.DeviceName = r.Sensor.ID
		if len(r.Modbus.DeviceName) > DeviceNameMaxChars {
			r.Modbus.DeviceName = r.Modbus.DeviceName[:DeviceNameMaxChars]
		}
	}

	if r.MQTT.ClientID == "" {
		r.MQTT.ClientID = "ranger-" + r.Sensor.ID
	}
	if r.MQTT.TimeoutMs == 0 {
		r.MQTT.TimeoutMs = DefaultMQTTTimeout
	}
}
