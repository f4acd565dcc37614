// clockctl is an interactive terminal for the clock source's UART
// control console. It forwards command lines over the serial port and
// prints whatever the device sends back, keeping the local prompt out
// of the way of asynchronous device output.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"

	hostserial "github.com/inthewhirlwind/retro-pico-multimode-clock-source/host/serial"
)

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device of the clock source console")
	baud := flag.Int("baud", 115200, "baud rate")
	flag.Parse()

	cfg := hostserial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := hostserial.Open(cfg)
	if err != nil {
		log.Fatalf("open %s: %v", *device, err)
	}
	defer port.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "clock> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatalf("failed to create readline: %v", err)
	}
	defer rl.Close()

	// Device output is copied through readline's writer so it does not
	// mangle the line being edited.
	go func() {
		buf := make([]byte, 256)
		for {
			n, rerr := port.Read(buf)
			if n > 0 {
				rl.Stdout().Write(buf[:n])
			}
			if rerr != nil && rerr != io.EOF {
				return
			}
		}
	}()

	fmt.Fprintf(rl.Stdout(), "Connected to %s. Type 'menu' for device commands, 'exit' to quit.\n", *device)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			// EOF
			return
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			return
		}
		if _, err := port.Write([]byte(line + "\r")); err != nil {
			log.Printf("write: %v", err)
			return
		}
	}
}
