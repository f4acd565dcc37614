//go:build rp2040 || rp2350

package main

import (
	"io"
	"machine"
)

// usbConsole adapts the USB CDC serial port to core.ByteStream.
type usbConsole struct{}

func newUSBConsole() usbConsole { return usbConsole{} }

func (usbConsole) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}

func (usbConsole) TryReadByte() (byte, bool) {
	if machine.Serial.Buffered() == 0 {
		return 0, false
	}
	b, err := machine.Serial.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// newMirrorUART configures UART0 on GPIO 16/17 as the secondary status
// stream at 115200 baud. Status blocks are duplicated there so a bench
// terminal can watch the device without claiming the USB console.
func newMirrorUART() io.Writer {
	uart := machine.UART0
	err := uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.Pin(16),
		RX:       machine.Pin(17),
	})
	if err != nil {
		return nil
	}
	return uart
}
