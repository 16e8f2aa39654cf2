package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-student-registry/models"
)

const (
	emptyStateText        = "No students found."
	connectivityStateText = "Could not load the student list. Check the server URL and that the server is running."
)

// consoleSink prints engine output for one-shot commands. Snapshots go to
// out, everything else to errOut so JSON output stays parseable.
type consoleSink struct {
	format string
	out    io.Writer
	errOut io.Writer
}

func newConsoleSink(format string, out, errOut io.Writer) *consoleSink {
	return &consoleSink{format: format, out: out, errOut: errOut}
}

func (s *consoleSink) RenderSnapshot(students []models.Student) {
	if s.format == formatJSON {
		writeJSON(s.out, students)
		return
	}

	if len(students) == 0 {
		fmt.Fprintln(s.out, emptyStateText)
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNIM\tNAMA\tJURUSAN")
	for _, st := range students {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", st.ID, st.NIM, st.Name, st.Major)
	}
	_ = w.Flush()
}

func (s *consoleSink) RenderConnectivityFailure() {
	fmt.Fprintln(s.errOut, connectivityStateText)
}

func (s *consoleSink) Notify(message string, severity models.Severity) {
	fmt.Fprintf(s.errOut, "[%s] %s\n", severity, message)
}

// SetBusy is a no-op: console commands block until the result is printed.
func (s *consoleSink) SetBusy(bool) {}

func writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
