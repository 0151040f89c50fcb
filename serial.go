package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"go-tetris/internal/config"
	"go-tetris/internal/game"
	"go-tetris/internal/input"
	"go-tetris/internal/render"

	"github.com/charmbracelet/x/term"
	"github.com/sirupsen/logrus"
)

const (
	clearScreen     = "\x1b[H\x1b[2J"
	joystickTimeout = 5 * time.Millisecond
)

// runSerial plays on a plain byte stream, the way a device attached to a
// serial console would: stdin in raw mode, escape sequences for the cursor
// keys and the whole frame redrawn on every change.
func runSerial(cfg *config.Config, log logrus.FieldLogger) error {
	fd := os.Stdin.Fd()
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("unable to enter raw mode: %w", err)
		}
		defer term.Restore(fd, old)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var joy *input.Joystick
	if cfg.Joystick != "" {
		f, err := os.Open(cfg.Joystick)
		if err != nil {
			return fmt.Errorf("unable to open joystick: %w", err)
		}
		defer f.Close()
		joy = input.NewJoystick(input.NewStreamSampler(f), joystickTimeout)
	}

	bytes := make(chan byte)
	errs := make(chan error, 1)
	go readBytes(ctx, os.Stdin, bytes, errs)

	return serialLoop(ctx, cfg, log, bytes, errs, joy, os.Stdout)
}

func readBytes(ctx context.Context, r io.Reader, out chan<- byte, errs chan<- error) {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			errs <- err
			return
		}
		select {
		case out <- b:
		case <-ctx.Done():
			return
		}
	}
}

// serialLoop runs the game from bytes and, when joy is not nil, from the
// joystick polled on every tick.
func serialLoop(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, bytes <-chan byte, errs <-chan error, joy *input.Joystick, w io.Writer) error {
	var dec input.EscapeDecoder
	start := time.Now()
	sess := game.NewSession(newRand(cfg.Seed), gameOptions(cfg), log, start)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	draw := func() {
		var view string
		if sess.IsRoundOver() {
			entry, _ := sess.LastEntry()
			view = render.GameOver(entry, sess.History, topScores, sess.NewBest)
		} else {
			view = render.Game(sess.CurrentGame.Frame(!cfg.HideGhost, !cfg.HideNext))
		}
		// Raw mode does not translate newlines.
		fmt.Fprint(w, clearScreen+strings.ReplaceAll(view, "\n", "\r\n")+"\r\n")
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		case now := <-ticker.C:
			if sess.IsRoundOver() {
				continue
			}
			before := sess.CurrentGame.State.Frame()
			if joy != nil {
				cmd, err := joy.Poll(ctx, now.Sub(start))
				switch {
				case errors.Is(err, io.EOF):
					log.Info("joystick stream closed")
					joy = nil
				case err != nil:
					log.WithError(err).Warn("joystick poll failed")
				default:
					sess.CurrentGame.HandleCommand(cmd, now)
				}
			}
			sess.CurrentGame.HandleTick(now)
			sess.Update()
			if sess.CurrentGame.State.Frame() != before || sess.IsRoundOver() {
				draw()
			}
		case b := <-bytes:
			cmd := dec.Feed(b)
			if dec.Pending() {
				continue
			}
			now := time.Now()
			switch {
			case cmd == input.Quit:
				return nil
			case sess.IsRoundOver(), cmd == input.Restart:
				sess.NextRound(now)
			default:
				sess.CurrentGame.HandleCommand(cmd, now)
				sess.Update()
			}
			draw()
		}
	}
}
