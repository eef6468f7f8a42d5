package dump

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const Version = "0.1.1"

var ErrInvalidConfig = errors.New("invalid dump configuration")

// Dumper reads a byte stream and writes it out as aligned hex and ASCII
// columns. Configure with the chained setters, then call Dump once.
type Dumper struct {
	reader          io.Reader
	lineWidth       int
	groupLength     int
	lineCount       int
	controlPictures bool
	debug           bool
	err             error
}

func New(reader io.Reader) *Dumper {
	return &Dumper{
		reader:      reader,
		lineWidth:   DefaultLineWidth,
		groupLength: DefaultGroupLength,
		lineCount:   -1,
		debug:       ViperGetBool("debug"),
	}
}

// ControlPictures selects Unicode Control Pictures glyphs for C0 control
// bytes instead of the '.' placeholder.
func (d *Dumper) ControlPictures(enabled bool) *Dumper {
	d.controlPictures = enabled
	return d
}

// LineCount caps the number of data lines; negative means unlimited.
func (d *Dumper) LineCount(count int) *Dumper {
	d.lineCount = count
	return d
}

func (d *Dumper) LineWidth(width int) *Dumper {
	if width < 1 || width > MaxLineWidth {
		d.fail(fmt.Errorf("%w: line width %d outside [1,%d]", ErrInvalidConfig, width, MaxLineWidth))
		return d
	}
	d.lineWidth = width
	return d
}

func (d *Dumper) GroupLength(length int) *Dumper {
	if length < 1 || length > MaxGroupLength {
		d.fail(fmt.Errorf("%w: group length %d outside [1,%d]", ErrInvalidConfig, length, MaxGroupLength))
		return d
	}
	d.groupLength = length
	return d
}

// fail records the first configuration error; Dump returns it before
// touching the reader.
func (d *Dumper) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Dump writes the two header lines followed by one line per chunk until
// the reader is exhausted or the line-count cap is reached. When the cap
// is reached no further read is issued. A reader or writer failure stops
// the dump; lines already written stay written.
func (d *Dumper) Dump(out io.Writer) error {
	if d.err != nil {
		return d.err
	}
	if d.debug {
		log.Printf("Dump(width=%d, group=%d, count=%d, pictures=%v)\n",
			d.lineWidth, d.groupLength, d.lineCount, d.controlPictures)
	}
	for _, line := range headerLines(d.lineWidth, d.groupLength) {
		_, err := fmt.Fprintln(out, line)
		if err != nil {
			return fmt.Errorf("failed writing dump output: %w", err)
		}
	}
	buf := make([]byte, d.lineWidth)
	for offset := 0; ; offset += d.lineWidth {
		if d.lineCount >= 0 && offset >= d.lineCount*d.lineWidth {
			break
		}
		n, err := io.ReadFull(d.reader, buf)
		if err == io.EOF {
			break
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return fmt.Errorf("failed reading dump input: %w", err)
		}
		line := formatLine(offset, buf[:n], d.lineWidth, d.groupLength, d.controlPictures)
		_, werr := fmt.Fprintln(out, line)
		if werr != nil {
			return fmt.Errorf("failed writing dump output: %w", werr)
		}
		if err == io.ErrUnexpectedEOF {
			break
		}
	}
	return nil
}
