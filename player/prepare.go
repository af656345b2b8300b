package player

import (
	"github.com/jsphweid/midnote/model"
	"github.com/jsphweid/midnote/sheet"
	"github.com/jsphweid/midnote/timer"
	"github.com/pkg/errors"
)

// Prepare builds the timer and the sheet for a decoded file, so that timing
// and merge problems surface before a device is opened.
func Prepare(f *model.File) (timer.Timer, sheet.Sheet, error) {
	t, err := timer.New(f.Timing)
	if err != nil {
		return nil, nil, err
	}
	s, err := sheet.ForFormat(f.Format, f.Tracks)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "building %v sheet", f.Format)
	}
	return t, s, nil
}
