package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// TEXT BUILDER — Produces a Summary of a Figure
// ============================================================================

// Summarize counts the traces, frames and points of fig and renders a
// one-line reply.
func Summarize(fig *Figure) *Summary {
	if fig == nil {
		return &Summary{Reply: "No chart."}
	}

	s := &Summary{
		Title:    fig.Layout.Title,
		Traces:   len(fig.Data),
		Frames:   len(fig.Frames),
		Is3D:     fig.Layout.Scene != nil,
		Animated: len(fig.Frames) > 0,
	}

	for _, t := range fig.Data {
		if t.Name != "" {
			s.Series = append(s.Series, t.Name)
		}
	}

	if s.Animated {
		for _, f := range fig.Frames {
			s.Points += countPoints(f.Data)
		}
	} else {
		s.Points = countPoints(fig.Data)
	}

	s.Reply = summaryReply(s, fig)
	return s
}

func countPoints(traces []Trace) int {
	n := 0
	for _, t := range traces {
		n += len(cells(t.X))
	}
	return n
}

func summaryReply(s *Summary, fig *Figure) string {
	var b strings.Builder

	kind := "2D"
	if s.Is3D {
		kind = "3D"
	}
	if s.Title != "" {
		fmt.Fprintf(&b, "%s: ", s.Title)
	}
	fmt.Fprintf(&b, "%s bubble chart with %s points", kind, FormatInt(s.Points))

	switch {
	case len(s.Series) > 0:
		fmt.Fprintf(&b, " in %d series (%s)", len(s.Series), strings.Join(s.Series, ", "))
	case s.Traces > 1:
		fmt.Fprintf(&b, " in %d traces", s.Traces)
	}

	if s.Animated {
		first := fig.Frames[0].Name
		last := fig.Frames[len(fig.Frames)-1].Name
		if s.Frames == 1 {
			fmt.Fprintf(&b, ", 1 frame (%s)", first)
		} else {
			fmt.Fprintf(&b, ", %d frames (%s to %s)", s.Frames, first, last)
		}
	}

	b.WriteString(".")
	return b.String()
}

// FormatInt formats an integer with comma thousands separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
