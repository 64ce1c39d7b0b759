// internal/status/constants.go
package status

// Device Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the sensor health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the code of the last failed ranging outcome.
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the sensor has been failing.
const SlotSecondsInError = 2

// SlotLastDistance holds the last good distance value.
const SlotLastDistance = 3

// ---- RESERVED RANGE ----

// Slots 4-10 are reserved for future use.
const SlotReservedStart = 4
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// MaxSecondsInError is where seconds_in_error stops counting.
const MaxSecondsInError = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before the first reading.
const HealthUnknown uint16 = 0

// HealthOK represents a sensor returning echoes.
const HealthOK uint16 = 1

// HealthError represents a sensor returning no echo or overlong echoes.
const HealthError uint16 = 2
