// Command rdsscan walks a list of FM frequencies, listening on the serial
// source for a dwell period per entry, and reports newly-seen stations (by
// PI code), deduplicating repeat sightings the way go1090 deduplicates
// recently-seen ICAO addresses. It sends no tune command to the tuner; the
// frequency list only labels each dwell period.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/pflag"

	"github.com/kradlow-go/rds"
	"github.com/kradlow-go/rds/ingest"
)

// piCacheTTL mirrors go1090's MODES_ICAO_CACHE_TTL: how long a PI code is
// considered "recently seen" before it's reported again.
const piCacheTTL = 60 * time.Second

func main() {
	port := pflag.StringP("port", "p", "/dev/ttyUSB0", "serial port of the tuner")
	baud := pflag.IntP("baud", "b", 9600, "serial baud rate")
	dwell := pflag.DurationP("dwell", "d", 4*time.Second, "time to listen per frequency")
	rbds := pflag.Bool("rbds", false, "decode PTY as RBDS instead of RDS")
	freqList := pflag.StringP("frequencies", "f", "", "comma-separated list of frequencies in kHz")
	pflag.Parse()

	frequencies, err := parseFrequencies(*freqList)
	if err != nil {
		log.Fatalln(err)
	}
	if len(frequencies) == 0 {
		log.Fatalln("rdsscan: no frequencies given, use --frequencies")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	variant := rds.RDS
	if *rbds {
		variant = rds.RBDS
	}

	seen := cache.New(piCacheTTL, 2*piCacheTTL)
	source := ingest.NewSerialSource(*port, *baud)

	for _, freq := range frequencies {
		if ctx.Err() != nil {
			break
		}
		fmt.Printf("listening on %.1f kHz...\n", freq)
		scanOne(ctx, source, variant, *dwell, seen)
	}

	cancel()
}

// scanOne listens on the already-tuned source for dwell and reports any PI
// code not recently present in seen. Sending the tune command itself is
// tuner-hardware-specific and out of scope here; this assumes an external
// process or a future Tuner interface has already set the frequency.
func scanOne(ctx context.Context, source *ingest.SerialSource, variant rds.Variant, dwell time.Duration, seen *cache.Cache) {
	decoder := rds.New(variant)

	dwellCtx, stop := context.WithTimeout(ctx, dwell)
	defer stop()

	handler := func(block rds.RawBlock) {
		updated := decoder.Add(block)
		if !updated.Has(rds.FieldPI) {
			return
		}
		key := fmt.Sprint(decoder.PI)
		if _, found := seen.Get(key); found {
			return
		}
		seen.SetDefault(key, decoder.PI)

		ptyName, _ := decoder.PTYString()
		fmt.Printf("  PI %04X  PTY %-12s  PS %q\n", decoder.PI, ptyName, string(trimNulls(decoder.PS[:])))
	}

	if err := source.Run(dwellCtx, handler); err != nil && dwellCtx.Err() == nil {
		log.Println("rdsscan: ingest error:", err)
	}
}

func parseFrequencies(list string) ([]float64, error) {
	if list == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	freqs := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("rdsscan: invalid frequency %q: %w", p, err)
		}
		freqs = append(freqs, f)
	}
	return freqs, nil
}

func trimNulls(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}
