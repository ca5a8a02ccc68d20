package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/wrydhan/trackday/core/model"
)

// Document bundles the two core outputs into one exportable schedule.
type Document struct {
	Groups   model.GroupAssignment `json:"groups"`
	Timeline model.Timeline        `json:"timeline"`
}

// WriteJSON writes the schedule document to w in JSON format.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteCSV writes the timetable to w in CSV format, one row per
// activity, times rendered as wall-clock "HH:MM".
func WriteCSV(w io.Writer, timeline model.Timeline) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "start", "end", "group", "kind", "description"}); err != nil {
		return err
	}
	for _, a := range timeline {
		rec := []string{
			strconv.Itoa(a.ID),
			model.FormatClock(a.Start),
			model.FormatClock(a.End),
			a.Group,
			a.Kind.String(),
			a.Description,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes the human-readable paddock sheet: the run groups
// with their drivers, then the full timetable. Activity ordering is
// preserved exactly as the builder emitted it.
func WriteText(w io.Writer, doc Document) error {
	for _, g := range doc.Groups.Groups {
		if _, err := fmt.Fprintf(w, "%s (%d drivers)\n", g.Label, len(g.Participants)); err != nil {
			return err
		}
		for _, p := range g.Participants {
			if _, err := fmt.Fprintf(w, "  - %s [%s]\n", p.Name, p.Level); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, a := range doc.Timeline {
		scope := ""
		if a.Group != model.AllGroups {
			scope = " (" + a.Group + ")"
		}
		if _, err := fmt.Fprintf(w, "%s-%s  %s%s\n",
			model.FormatClock(a.Start), model.FormatClock(a.End), a.Description, scope); err != nil {
			return err
		}
	}
	return nil
}
