// Command rdsmonitor renders a live decoded RDS/RBDS station snapshot in a
// terminal dashboard, adapted from go1090's gocui aircraft table.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	charmlog "github.com/charmbracelet/log"

	"github.com/kradlow-go/rds"
	"github.com/kradlow-go/rds/ingest"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to YAML config file")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	var logger *charmlog.Logger
	if *verbose {
		logger = charmlog.New(os.Stderr)
		logger.SetLevel(charmlog.DebugLevel)
	}

	variant := rds.RDS
	if cfg.Station.RBDS {
		variant = rds.RBDS
	}
	decoder := rds.New(variant, rds.WithLogger(logger))

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
	}()

	source := ingest.NewSerialSource(cfg.Serial.Port, cfg.Serial.BaudRate)
	go func() {
		handler := func(block rds.RawBlock) {
			decoder.Add(block)
			g.Update(func(g *gocui.Gui) error { return render(g, decoder, cfg.Display.TimeFormat) })
		}
		if err := source.Run(ctx, handler); err != nil && ctx.Err() == nil {
			log.Println("rdsmonitor: ingest stopped:", err)
		}
	}()

	go func() {
		ticker := time.NewTicker(cfg.Display.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				g.Update(func(g *gocui.Gui) error { return render(g, decoder, cfg.Display.TimeFormat) })
			}
		}
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
}

func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView("status", 0, 0, maxX-1, 2); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " STATION "
		fmt.Fprintln(v, " waiting for blocks...")
	}

	if v, err := g.SetView("tmc", 0, 3, maxX-1, maxY-1); err != nil && err != gocui.ErrUnknownView {
		return err
	} else if err == gocui.ErrUnknownView {
		v.Title = " TMC / AF "
	}

	return nil
}

func render(g *gocui.Gui, d *rds.Decoder, timeFormat string) error {
	status, err := g.View("status")
	if err != nil {
		return err
	}
	status.Clear()

	ptyName, _ := d.PTYString()
	fmt.Fprintf(status, " PI: %04X  PS: %-8s  PTY: %-12s  TP:%-5t TA:%-5t\n",
		d.PI, string(trimNulls(d.PS[:])), ptyName, d.TP, d.TA)
	fmt.Fprintf(status, " Country: %-4s  Language: %-10s  Coverage: %s\n",
		d.CountryString(), d.LanguageString(), d.CoverageString())

	if d.ValidFields.Has(rds.FieldTime) {
		formatted, ferr := strftime.Format(timeFormat, d.Time)
		if ferr == nil {
			fmt.Fprintf(status, " Station time: %s\n", formatted)
		}
	}

	tmc, err := g.View("tmc")
	if err != nil {
		return err
	}
	tmc.Clear()

	fmt.Fprintln(tmc, " RT: "+string(trimNulls(d.RT[:d.RTLength])))

	fmt.Fprintln(tmc, " Alternative frequencies:")
	freqs := append([]uint32{}, d.AF.Frequencies[:d.AF.Count]...)
	sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })
	for _, f := range freqs {
		fmt.Fprintf(tmc, "   %.1f kHz\n", float64(f)/1000)
	}

	if d.ValidFields.Any(rds.FieldTMCSingleGroup | rds.FieldTMCMultiGroup) {
		fmt.Fprintf(tmc, " TMC event=%d location=%d extent=%d duration=%d\n",
			d.TMC.Message.Event, d.TMC.Message.Location, d.TMC.Message.Extent, d.TMC.Message.Duration)
	}

	return nil
}

func trimNulls(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

func quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}
