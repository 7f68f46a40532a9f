package ffmpeg

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
)

var ErrNoVideoStream = errors.New("no video streams found")

type Probe struct {
	Width  int
	Height int
}

type probe struct {
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
}

func (p *probe) Probe() (*Probe, error) {
	if len(p.Streams) == 0 {
		return nil, ErrNoVideoStream
	}

	s := p.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid video dimensions: %dx%d", s.Width, s.Height)
	}

	return &Probe{
		Width:  s.Width,
		Height: s.Height,
	}, nil
}

func parseProbe(out []byte) (*Probe, error) {
	var p probe
	if err := json.Unmarshal(out, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ffprobe output: %w", err)
	}
	return p.Probe()
}

// FFProbe reads the frame size of the first video stream of path.
func FFProbe(path string) (*Probe, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0", "-show_entries", "stream=width,height", "-of", "json", path)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to execute ffprobe: %w", err)
	}
	return parseProbe(out)
}
