package player

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jsphweid/midnote/logger"
	"github.com/jsphweid/midnote/model"
	"github.com/jsphweid/midnote/sheet"
	"github.com/jsphweid/midnote/timer"
	"github.com/pkg/errors"
)

type State int

const (
	Idle State = iota
	Playing
	Finished
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var (
	ErrSend    = errors.New("send failed")
	ErrNotIdle = errors.New("player has already played")
)

// SendError is returned when the connection rejects an event. Sends are
// never retried.
type SendError struct {
	Index int // position in the sheet
	Track int
	Err   error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send failed for event %v of track %v: %v", e.Index, e.Track, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

func (e *SendError) Is(target error) bool { return target == ErrSend }

// Connection is an open output. The player owns it from New until Play
// returns, and closes it.
type Connection interface {
	Send(msg model.ChannelMessage) error
	Close() error
}

// Player drives one sheet against one connection, once.
type Player struct {
	timer   timer.Timer
	conn    Connection
	sleep   func(ctx context.Context, d time.Duration) error
	state   State
	elapsed time.Duration
	sent    int
}

func New(t timer.Timer, conn Connection) *Player {
	return &Player{
		timer: t,
		conn:  conn,
		sleep: sleep,
		state: Idle,
	}
}

func (p *Player) State() State { return p.state }

// Elapsed is the sum of the delays waited so far.
func (p *Player) Elapsed() time.Duration { return p.elapsed }

// Sent is the number of messages delivered to the connection.
func (p *Player) Sent() int { return p.sent }

// Play sends every channel event of s in order, waiting the converted tick
// gap before each one. Tempo events update the timer and are not sent.
// Cancellation is checked before every send. The connection is closed when
// Play returns, whatever the outcome.
func (p *Player) Play(ctx context.Context, s sheet.Sheet) (err error) {
	if p.state != Idle {
		return errors.Wrapf(ErrNotIdle, "player is %v", p.state)
	}

	l := logger.FromContext(ctx).With("run", uuid.New().String())

	defer func() {
		if closeErr := p.conn.Close(); closeErr != nil {
			l.Warn("closing connection", "err", closeErr)
			if err == nil {
				err = errors.Wrap(closeErr, "closing connection")
			}
		}
	}()

	p.elapsed = 0
	p.state = Playing
	l.Info("starting playback", "events", len(s))

	for i, entry := range s {
		if ctx.Err() != nil {
			return p.abort(l, errors.Wrapf(ctx.Err(), "playback canceled before event %v", i))
		}

		d := p.timer.SleepDuration(s.Delta(i))
		if d > 0 {
			if err := p.sleep(ctx, d); err != nil {
				return p.abort(l, errors.Wrapf(err, "playback canceled waiting for event %v", i))
			}
			p.elapsed += d
		}
		if ctx.Err() != nil {
			return p.abort(l, errors.Wrapf(ctx.Err(), "playback canceled before event %v", i))
		}

		evt := entry.Event
		switch evt.Kind {
		case model.MetaEvent:
			if evt.Meta.Type == model.MetaTempo {
				p.timer.ChangeTempo(evt.Meta.Tempo)
				l.Debug("tempo change", "tick", entry.Tick, "track", entry.Track, "micros_per_beat", evt.Meta.Tempo)
			}
		case model.ChannelEvent:
			if err := p.conn.Send(evt.Channel); err != nil {
				return p.abort(l, &SendError{Index: i, Track: entry.Track, Err: err})
			}
			p.sent++
		}
	}

	p.state = Finished
	l.Info("playback finished", "sent", p.sent, "elapsed", p.elapsed)
	return nil
}

// Start runs Play on its own goroutine. The channel yields Play's result
// and is then closed.
func (p *Player) Start(ctx context.Context, s sheet.Sheet) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- p.Play(ctx, s)
	}()
	return done
}

func (p *Player) abort(l *log.Logger, err error) error {
	p.state = Aborted
	l.Error("playback aborted", "sent", p.sent, "elapsed", p.elapsed, "err", err)
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
