//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/midnote/cmd"
	"github.com/jsphweid/midnote/logger"
	"github.com/jsphweid/midnote/model"
	"github.com/jsphweid/midnote/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a format 1 file at 480 ticks per beat: a conductor track at 240 BPM and
// one violin note lasting 48 ticks
var duet = []byte{
	'M', 'T', 'h', 'd', 0, 0, 0, 6, 0, 1, 0, 2, 0x01, 0xE0,
	'M', 'T', 'r', 'k', 0, 0, 0, 11,
	0x00, 0xFF, 0x51, 0x03, 0x03, 0xD0, 0x90,
	0x00, 0xFF, 0x2F, 0x00,
	'M', 'T', 'r', 'k', 0, 0, 0, 25,
	0x00, 0xFF, 0x03, 0x06, 'V', 'i', 'o', 'l', 'i', 'n',
	0x00, 0xC0, 0x28,
	0x00, 0x90, 0x3C, 0x64,
	0x30, 0x80, 0x3C, 0x00,
	0x00, 0xFF, 0x2F, 0x00,
}

type recorder struct {
	sent   []model.ChannelMessage
	closed bool
}

func (r *recorder) Send(msg model.ChannelMessage) error {
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func writeDuet(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "duet.mid")
	require.NoError(t, os.WriteFile(path, duet, 0644))
	return path
}

func TestInspectJSONE2E(t *testing.T) {
	var out bytes.Buffer
	_, err := cmd.Report(&out, writeDuet(t), true)
	require.NoError(t, err)

	var mi model.MidiInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &mi))

	assert := assert.New(t)
	assert.Equal(2, mi.NumTracks)
	assert.Equal([]float64{240}, mi.Tempi)
	violin, ok := mi.Track(2)
	require.True(t, ok)
	assert.Equal([]string{"violin"}, violin.Instruments)
	assert.Equal([]int{0}, violin.Channels)
	assert.Equal(1, violin.NumNotes)
}

func TestInspectTextE2E(t *testing.T) {
	path := writeDuet(t)
	var out bytes.Buffer
	_, err := cmd.Report(&out, path, false)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "MIDI filepath: "+path)
	assert.Contains(t, report, "tempi: [240]")
	assert.Contains(t, report, `track 2 instruments: ["violin"]`)
	assert.Contains(t, report, "total number of notes: 1")
}

func TestPlayE2E(t *testing.T) {
	f, err := cmd.Report(&bytes.Buffer{}, writeDuet(t), true)
	require.NoError(t, err)

	tm, s, err := player.Prepare(f)
	require.NoError(t, err)

	conn := &recorder{}
	p := player.New(tm, conn)
	ctx := logger.WithContext(context.Background(), logger.Discard())
	require.NoError(t, <-p.Start(ctx, s))

	assert := assert.New(t)
	assert.Equal(player.Finished, p.State())
	assert.True(conn.closed)
	assert.Equal([]model.ChannelMessage{
		{Channel: 0, Type: model.ProgramChange, Data1: 40},
		{Channel: 0, Type: model.NoteOn, Data1: 60, Data2: 100},
		{Channel: 0, Type: model.NoteOff, Data1: 60},
	}, conn.sent)
	// 48 ticks at 250000 micros per beat
	assert.Equal(int64(25_000_000), p.Elapsed().Nanoseconds())
}
