// This example program decodes RDS blocks from a serial tuner and prints
// the station's program service name whenever it changes, until Ctrl+C is
// pressed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kradlow-go/rds"
	"github.com/kradlow-go/rds/ingest"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	decoder := rds.New(rds.RDS)
	source := ingest.NewSerialSource("/dev/ttyUSB0", 9600)

	handler := func(block rds.RawBlock) {
		if decoder.Add(block).Has(rds.FieldPS) {
			fmt.Printf("PS: %s\n", string(decoder.PS[:]))
		}
	}

	fmt.Println("awaiting blocks")
	if err := source.Run(ctx, handler); err != nil && ctx.Err() == nil {
		fmt.Println("error:", err)
	}
	fmt.Println("exiting")
}
