package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"
	"github.com/talsforest/tether/pkg/board/fen"
	"github.com/talsforest/tether/pkg/engine"
	"github.com/talsforest/tether/pkg/engine/console"
)

var (
	position = flag.String("position", fen.Initial, "Starting position in FEN-shaped notation")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: talsforest [options]

TALSFOREST is an interactive Tether Chess ("Tal's Forest") engine. Moves
are entered in coordinate form, e.g. "d1-c3" or "d7-d8=Q".
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.NewGame(ctx)
	if *position != fen.Initial {
		if err := e.Reset(ctx, *position); err != nil {
			flag.Usage()
			logw.Exitf(ctx, "Invalid position: %v", err)
		}
	}

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
