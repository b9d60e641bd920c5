// Command replay feeds a recorded input script into a whiteboard. It either
// drives a running board through its remote input endpoint or replays the
// script headlessly and prints the result to a PNG or PDF file.
//
// A script holds one JSON message per line, for example
//
//	{"type":"tool","tool":"rectangle"}
//	{"type":"pointerdown","x":10,"y":10}
//	{"type":"pointermove","x":120,"y":80}
//	{"type":"pointerup","x":120,"y":80}
//
// Blank lines and lines starting with # are skipped.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"MyWhiteboard/internal/board"
	"MyWhiteboard/internal/export"
	wbnet "MyWhiteboard/internal/net"
	"MyWhiteboard/internal/render"
)

var log = logging.Logger("replay")

func main() {
	script := flag.String("script", "", "input script, one JSON message per line (default stdin)")
	addr := flag.String("addr", "", "host:port of a running board (default: discover over mDNS)")
	out := flag.String("out", "", "replay headlessly and print the board to this .png or .pdf file")
	width := flag.Int("width", 1280, "surface width for -out")
	height := flag.Int("height", 800, "surface height for -out")
	delay := flag.Duration("delay", 10*time.Millisecond, "pause between messages sent to a board")
	wait := flag.Duration("wait", 3*time.Second, "how long to look for a board over mDNS")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	if err := logging.SetLogLevel("*", *level); err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(2)
	}

	in := io.Reader(os.Stdin)
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatalf("open script: %v", err)
		}
		defer f.Close()
		in = f
	}
	msgs, err := readScript(in)
	if err != nil {
		log.Fatalf("read script: %v", err)
	}

	if *out != "" {
		err = replayOffline(msgs, *width, *height, *out)
	} else {
		err = replayOnline(context.Background(), msgs, *addr, *wait, *delay)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func readScript(r io.Reader) ([]wbnet.Message, error) {
	var msgs []wbnet.Message
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var m wbnet.Message
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, sc.Err()
}

// apply runs msgs against b. Messages that do not decode are logged and
// skipped, like the remote endpoint does.
func apply(b *board.Board, msgs []wbnet.Message) {
	for _, m := range msgs {
		in, err := wbnet.Decode(m)
		if err != nil {
			log.Errorf("skipping %q: %v", m.Type, err)
			continue
		}
		if in.IsTool {
			if err := b.SetTool(in.Tool); err != nil {
				log.Errorf("skipping %q: %v", m.Type, err)
			}
			continue
		}
		b.Dispatch(in.Event)
	}
}

func replayOffline(msgs []wbnet.Message, width, height int, out string) error {
	r, err := render.New(render.NewSurface(width, height))
	if err != nil {
		return err
	}
	b := board.New(board.WithMeasurer(r))
	apply(b, msgs)
	r.RenderBoard(b)
	log.Infof("replayed %d messages into %d elements", len(msgs), b.Elements().Len())

	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		return export.PNG(out, r.Image())
	case ".pdf":
		return export.PDF(out, r.Image())
	}
	return fmt.Errorf("cannot print to %s: use a .png or .pdf file", out)
}

func replayOnline(ctx context.Context, msgs []wbnet.Message, addr string, wait, delay time.Duration) error {
	if addr == "" {
		found, err := wbnet.Discover(ctx, wait)
		if err != nil {
			return err
		}
		log.Infof("found board at %s", found)
		addr = found
	}
	c, err := wbnet.Dial(ctx, addr)
	if errors.Is(err, wbnet.ErrDeviceAttached) {
		return fmt.Errorf("board at %s already has an input device", addr)
	}
	if err != nil {
		return err
	}
	defer c.Close()

	go func() {
		for r := range c.Replies() {
			log.Errorf("board rejected a message: %s", r.Message)
		}
	}()
	for _, m := range msgs {
		if err := c.Send(m); err != nil {
			return fmt.Errorf("send %q: %w", m.Type, err)
		}
		time.Sleep(delay)
	}
	log.Infof("sent %d messages to %s", len(msgs), addr)
	return nil
}
