package types

// MediaInfo is the structured metadata a probe returns for a source file.
type MediaInfo struct {
	Path       string
	Duration   float64 // seconds
	FormatName string
	Width      int
	Height     int
	VideoCodec string
	HasAudio   bool
}

// RenderSpec describes one preview render: which segments to trim out of the
// source, how to post-process the concatenated stream, and where to write it.
type RenderSpec struct {
	Input          string
	Output         string
	Starts         []float64 // segment start times, seconds, ascending
	SampleDuration float64   // seconds per segment
	Scale          string    // e.g. "320:-1" or "320:auto"; empty = no scaling
	Format         string    // output container, e.g. "mp4"
	Quiet          bool      // suppress forwarding of engine logs
}

// Preview describes the produced artifact.
type Preview struct {
	Output         string
	SourceDuration float64
	Starts         []float64
}
