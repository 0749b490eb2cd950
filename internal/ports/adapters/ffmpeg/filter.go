package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkoslow/prevgen/internal/types"
)

// buildPreviewGraph constructs the -filter_complex graph for a preview: one
// trim+setpts chain per segment, a concat node joining them in plan order,
// and an optional scale on the concatenated stream. Returns the graph and
// the label of the stream to map into the output.
func buildPreviewGraph(spec types.RenderSpec) (string, string) {
	var b strings.Builder
	for i, start := range spec.Starts {
		fmt.Fprintf(&b, "[0:v]trim=start=%s:duration=%s,setpts=PTS-STARTPTS[v%d];",
			fmtSeconds(start), fmtSeconds(spec.SampleDuration), i)
	}
	for i := range spec.Starts {
		fmt.Fprintf(&b, "[v%d]", i)
	}
	fmt.Fprintf(&b, "concat=n=%d:v=1:a=0[outv]", len(spec.Starts))

	out := "[outv]"
	if spec.Scale != "" {
		fmt.Fprintf(&b, ";[outv]scale=%s[outs]", normalizeScale(spec.Scale))
		out = "[outs]"
	}
	return b.String(), out
}

// normalizeScale maps an "auto" dimension to ffmpeg's -2, which keeps the
// aspect ratio and rounds to an even size so encoders do not reject odd
// dimensions.
func normalizeScale(scale string) string {
	parts := strings.Split(scale, ":")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, "auto") {
			p = "-2"
		}
		parts[i] = p
	}
	return strings.Join(parts, ":")
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 3, 64)
}
