// internal/writer/modbus/client_test.go
package modbus

import (
	"bytes"
	"testing"
)

func TestPackRegisters(t *testing.T) {
	got := packRegisters([]uint16{400, 0x0102, 0xFFFF})
	want := []byte{0x01, 0x90, 0x01, 0x02, 0xFF, 0xFF}
	if !bytes.Equal(got, want) {
		t.Fatalf("packRegisters = % x, want % x", got, want)
	}
}

func TestNewEndpointClient_Validation(t *testing.T) {
	if _, err := NewEndpointClient(Config{}); err == nil {
		t.Fatalf("expected endpoint error")
	}
	if _, err := NewEndpointClient(Config{Mode: "ascii", Endpoint: "x"}); err == nil {
		t.Fatalf("expected mode error")
	}
}
