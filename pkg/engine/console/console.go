// Package console implements an interactive line-oriented driver for
// exercising the engine by hand: making moves, printing the board and
// inspecting the entanglement analysis filters.
package console

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"github.com/talsforest/tether/pkg/board"
	"github.com/talsforest/tether/pkg/board/fen"
	"github.com/talsforest/tether/pkg/engine"
	"github.com/talsforest/tether/pkg/notation"
)

const ProtocolName = "console"

// Driver implements a console driver for playing and debugging.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				// reset [<fenstring>] moves ...

				fenParts := args
				if at := slices.Index(args, "moves"); at >= 0 {
					fenParts = args[:at]
				}
				pos := fen.Initial
				if len(fenParts) > 0 {
					pos = strings.Join(fenParts, " ")
				}
				if err := d.e.Reset(ctx, pos); err != nil {
					logw.Errorf(ctx, "Invalid position: %v", line)
					return
				}
				move := false
				for _, arg := range args {
					if arg == "moves" {
						move = true
						continue
					}
					if !move {
						continue
					}

					if err := d.move(ctx, arg); err != nil {
						logw.Errorf(ctx, "Invalid position move '%v': %v: %v", arg, line, err)
						return
					}
				}
				d.printBoard()

			case "print", "p":
				d.printBoard()

			case "state", "s":
				d.out <- d.e.State().String()

			case "moves", "m":
				// moves [<square>]

				if len(args) > 0 {
					sq, err := board.FromText(args[0])
					if err != nil {
						d.out <- fmt.Sprintf("invalid square: '%v'", args[0])
						break
					}
					d.printMoves(d.e.LegalMovesFrom(sq))
					break
				}
				d.printMoves(d.e.LegalMoves())

			case "rankmates", "rm":
				// rankmates <square>

				if len(args) == 0 {
					d.out <- "usage: rankmates <square>"
					break
				}
				sq, err := board.FromText(args[0])
				if err != nil {
					d.out <- fmt.Sprintf("invalid square: '%v'", args[0])
					break
				}
				mates := d.e.RankMatesOf(sq)
				if len(mates) == 0 {
					d.out <- fmt.Sprintf("no rank-mates of %v", sq)
					break
				}
				d.out <- fmt.Sprintf("rank-mates of %v: %v", sq, joinSquares(mates))

			case "transporters", "t":
				d.printMoves(d.e.TransporterMoves())

			case "apex":
				d.printMoves(d.e.PawnKnightApexMoves())

			case "checks":
				d.printMoves(d.e.CheckingMoves())

			case "tal":
				d.printMoves(d.e.MichaelTalMoves())

			case "fen":
				d.out <- d.e.Position()

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume move if not a recognized command.

				if err := d.move(ctx, cmd); err != nil {
					d.out <- fmt.Sprintf("invalid move '%v': %v", cmd, err)
				} else {
					d.printBoard()
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// move parses a coordinate move and plays it on the engine.
func (d *Driver) move(ctx context.Context, text string) error {
	parsed, err := notation.Parse(text)
	if err != nil {
		return err
	}

	result := d.e.Apply(ctx, parsed.From, parsed.To, parsed.Promotion)
	if !result.Ok {
		return result.Err
	}

	d.out <- result.Message
	if state := d.e.State(); state.IsTerminal() {
		d.out <- state.String()
	}
	return nil
}

func (d *Driver) printMoves(moves []board.Move) {
	if len(moves) == 0 {
		d.out <- "no moves"
		return
	}
	for i, m := range moves {
		d.out <- fmt.Sprintf(" %2d. %v", i+1, m)
	}
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	view := d.e.BoardView()

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		var sb strings.Builder
		sb.WriteString(board.Rank(r).String())
		sb.WriteString(vertical)
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			if piece, ok := view[r][f].V(); ok {
				sb.WriteString(printPiece(piece.Color, piece.Kind))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen:    %v", d.e.Position())
	d.out <- fmt.Sprintf("state:  %v, ply: %v", d.e.State(), len(d.e.History()))
	d.out <- ""
}

func printPiece(c board.Color, k board.Kind) string {
	if c == board.White {
		return strings.ToUpper(k.String())
	}
	return strings.ToLower(k.String())
}

func joinSquares(squares []board.Square) string {
	var parts []string
	for _, sq := range squares {
		parts = append(parts, sq.String())
	}
	return strings.Join(parts, " ")
}
