package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/koki-develop/samplesize/internal/samplesize"
)

type Writer struct {
	out   io.Writer
	plain bool

	name   *color.Color
	factor *color.Color
	detail *color.Color
	fail   *color.Color
}

type Option struct {
	Plain   bool
	NoColor bool
}

func NewWriter(out io.Writer, opt *Option) *Writer {
	w := &Writer{
		out:    out,
		plain:  opt.Plain,
		name:   color.New(color.Bold),
		factor: color.New(color.BgGreen, color.FgBlack),
		detail: color.New(color.Faint),
		fail:   color.New(color.BgRed, color.FgWhite),
	}
	if opt.NoColor {
		for _, c := range []*color.Color{w.name, w.factor, w.detail, w.fail} {
			c.DisableColor()
		}
	}
	return w
}

func (w *Writer) Result(name string, r samplesize.Result) error {
	if w.plain {
		_, err := fmt.Fprintf(w.out, "%s\t%d\t%s\n", name, r.Factor, r.Scaled())
		return err
	}

	_, err := fmt.Fprintf(w.out, "%s %s %s\n",
		w.name.Sprint(name),
		w.factor.Sprintf(" 1/%d ", r.Factor),
		w.detail.Sprintf("%s -> %s (desired %s)", r.Actual, r.Scaled(), r.Desired),
	)
	return err
}

func (w *Writer) Error(name string, err error) error {
	if w.plain {
		_, werr := fmt.Fprintf(w.out, "%s\terror\t%s\n", name, err)
		return werr
	}

	_, werr := fmt.Fprintf(w.out, "%s %s %s\n", w.name.Sprint(name), w.fail.Sprint(" error "), err)
	return werr
}
