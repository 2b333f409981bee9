package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"pingpong/internal/app"
	"pingpong/internal/core"
	"pingpong/internal/score"
	_ "pingpong/internal/storage/memory"
	_ "pingpong/internal/storage/sqlite"
)

type eventList []score.Event

func (l *eventList) String() string {
	names := make([]string, len(*l))
	for i, ev := range *l {
		names[i] = ev.String()
	}
	return strings.Join(names, ",")
}

func (l *eventList) Set(value string) error {
	for _, name := range strings.Split(value, ",") {
		ev, err := score.ParseEvent(name)
		if err != nil {
			return err
		}
		*l = append(*l, ev)
	}
	return nil
}

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	var events eventList
	flag.Var(&events, "press", "event to apply: p1, p2, undo or reset (repeatable, comma separated)")
	asJSON := flag.Bool("json", false, "print the final state as JSON")
	flag.Parse()

	if err := run(context.Background(), cfg, events, *asJSON, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *app.Config, events []score.Event, asJSON bool, w io.Writer) (err error) {
	session, err := app.Open(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, ev := range events {
		if !session.Dispatch(ev) {
			log.Printf("%s: nothing to do", ev)
		}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(session.Snapshot())
	}
	frame := session.Frame()
	for _, r := range core.Regions() {
		if _, err := fmt.Fprintln(w, frame.Text(r)); err != nil {
			return err
		}
	}
	return nil
}
