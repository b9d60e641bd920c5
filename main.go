package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	logging "github.com/ipfs/go-log/v2"

	"MyWhiteboard/internal/config"
	wbnet "MyWhiteboard/internal/net"
	"MyWhiteboard/internal/ui"
)

var log = logging.Logger("main")

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg, err := config.Parse(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "whiteboard: %v\n", err)
		os.Exit(2)
	}
	if err := logging.SetLogLevel("*", cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "whiteboard: log level: %v\n", err)
		os.Exit(2)
	}

	app, err := ui.New(cfg)
	if err != nil {
		log.Fatalf("could not create the board: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Remote.Enabled {
		startRemote(ctx, cfg.Remote, app)
	}

	app.ShowAndRun()
}

// startRemote serves the remote input endpoint and, if asked, advertises it
// on the local network.
func startRemote(ctx context.Context, cfg config.Remote, app *ui.App) {
	bw := app.Board()
	server := wbnet.NewInputServer(func(in wbnet.Input) {
		fyne.Do(func() {
			if in.IsTool {
				bw.SetTool(in.Tool)
				return
			}
			bw.Dispatch(in.Event)
		})
	})
	go func() {
		if err := server.ListenAndServe(ctx, ":"+strconv.Itoa(cfg.Port)); err != nil {
			log.Errorf("remote input stopped: %v", err)
			app.SetStatus("Remote input unavailable: " + err.Error())
		}
	}()

	url := wbnet.EndpointURL(cfg.Port)
	app.SetStatus("Remote input at " + url)
	log.Infof("remote input at %s", url)

	if !cfg.Advertise {
		return
	}
	adv, err := wbnet.Advertise(cfg.Port)
	if err != nil {
		log.Errorf("mDNS advertisement failed: %v", err)
		return
	}
	go func() {
		<-ctx.Done()
		adv.Shutdown()
	}()
}
