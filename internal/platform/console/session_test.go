//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestPlayWithoutTerminal(t *testing.T) {
	r, w := pipe(t)
	if _, err := w.Write([]byte("\n")); err != nil {
		t.Fatal(err)
	}

	cfg := alwaysSpawn()
	cfg.Pace.Initial = time.Millisecond
	cfg.Pace.Floor = time.Millisecond

	var out bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := Play(ctx, Options{
		Config: cfg,
		Seed:   7,
		In:     r,
		Out:    &out,
		Logger: quietLogger(),
	})
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if res.Reason != EndCollision || res.Score != 49 {
		t.Errorf("Play() = %+v, expected collision at 49", res)
	}

	text := out.String()
	if !strings.HasPrefix(text, hideCursor) || !strings.HasSuffix(text, showCursor) {
		t.Error("cursor should be hidden for the run and shown afterwards")
	}
	if !strings.Contains(text, "Welcome to Lane Runner!") {
		t.Error("banner was not shown")
	}
}

func TestPlayInterruptedBeforeStart(t *testing.T) {
	r, _ := pipe(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := Play(ctx, Options{
		Config: alwaysSpawn(),
		In:     r,
		Out:    &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if res.Reason != EndInterrupted || res.Ticks != 0 {
		t.Errorf("Play() = %+v, expected interruption before the first tick", res)
	}
}
