package cmd

import (
	"errors"
	"fmt"

	"github.com/koki-develop/samplesize/internal/ffmpeg"
	"github.com/koki-develop/samplesize/internal/logger"
	"github.com/koki-develop/samplesize/internal/probe"
	"github.com/koki-develop/samplesize/internal/samplesize"
	"github.com/spf13/cobra"
)

type probeFlags struct {
	width   int
	height  int
	ffprobe bool
}

func newProbeCmd(flags *rootFlags) *cobra.Command {
	pf := &probeFlags{}

	cmd := &cobra.Command{
		Use:   "probe FILE...",
		Short: "Read image sizes from file headers and calculate their sample factors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := flags.writer(cmd)
			target := samplesize.Size{Width: pf.width, Height: pf.height}

			failed := 0
			for _, path := range args {
				r, err := pf.calculate(path, target)
				if err != nil {
					logger.Error.Printf("%s: %v", path, err)
					failed++
					if err := w.Error(path, err); err != nil {
						return err
					}
					continue
				}
				if err := w.Result(path, r); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("failed to process %d of %d files", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&pf.width, "width", "W", 0, "target width in pixels (0 = unconstrained)")
	cmd.Flags().IntVarP(&pf.height, "height", "H", 0, "target height in pixels (0 = unconstrained)")
	cmd.Flags().BoolVar(&pf.ffprobe, "ffprobe", false, "fall back to ffprobe for files that are not still images")

	return cmd
}

func (pf *probeFlags) calculate(path string, target samplesize.Size) (samplesize.Result, error) {
	actual, err := pf.dimensions(path)
	if err != nil {
		return samplesize.Result{}, err
	}
	logger.Debug.Printf("%s: %s", path, actual)

	return samplesize.Calculate(target, actual)
}

func (pf *probeFlags) dimensions(path string) (samplesize.Size, error) {
	img, err := probe.File(path)
	if err == nil {
		logger.Trace.Printf("%s: %s header", path, img.Format)
		return samplesize.Size{Width: img.Width, Height: img.Height}, nil
	}
	if !pf.ffprobe || !errors.Is(err, probe.ErrUnknownFormat) {
		return samplesize.Size{}, err
	}

	logger.Info.Printf("%s: not a still image, trying ffprobe", path)
	p, err := ffmpeg.FFProbe(path)
	if err != nil {
		return samplesize.Size{}, fmt.Errorf("failed to probe video: %w", err)
	}
	return samplesize.Size{Width: p.Width, Height: p.Height}, nil
}
