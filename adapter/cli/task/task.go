package task

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
	"github.com/felixgeelhaar/taskbook/internal/productivity/application/registry"
	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
)

// Cmd is the task command group
var Cmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Create, list, edit, complete, and delete your tasks.`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(doneCmd)
	Cmd.AddCommand(reopenCmd)
	Cmd.AddCommand(rmCmd)
}

func getStatusIcon(status task.Status) string {
	if status == task.StatusCompleted {
		return "[x]"
	}
	return "[ ]"
}

func getPriorityBadge(priority string) string {
	switch priority {
	case "high":
		return "(!)"
	case "medium":
		return "(~)"
	case "low":
		return "(.)"
	default:
		return ""
	}
}

// dueMarker flags a pending task whose due date is before or on the
// calendar day of now. Due dates that are not a date or RFC 3339 timestamp
// get no marker.
func dueMarker(t task.Task, now time.Time) string {
	if t.DueDate == nil || t.IsCompleted() {
		return ""
	}
	due, ok := parseDueDate(*t.DueDate, now.Location())
	if !ok {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case due.Before(today):
		return " [OVERDUE]"
	case due.Equal(today):
		return " [TODAY]"
	default:
		return ""
	}
}

func parseDueDate(s string, loc *time.Location) (time.Time, bool) {
	if d, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return d, true
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	ts = ts.In(loc)
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc), true
}

func printSummary(w io.Writer, t task.Task, now time.Time) {
	fmt.Fprintf(w, "%s %s %s%s\n", getStatusIcon(t.Status), t.Title, getPriorityBadge(t.Priority.String()), dueMarker(t, now))
	fmt.Fprintf(w, "   ID: %s\n", t.ID)
	if t.DueDate != nil {
		fmt.Fprintf(w, "   Due: %s\n", *t.DueDate)
	}
}

func printDetail(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "ID:          %s\n", t.ID)
	fmt.Fprintf(w, "Title:       %s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", t.Description)
	}
	fmt.Fprintf(w, "Priority:    %s\n", t.Priority)
	fmt.Fprintf(w, "Status:      %s\n", t.Status)
	if t.DueDate != nil {
		fmt.Fprintf(w, "Due:         %s\n", *t.DueDate)
	}
	fmt.Fprintf(w, "Created:     %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Updated:     %s\n", t.UpdatedAt.Local().Format("2006-01-02 15:04"))
	if t.CompletedAt != nil {
		fmt.Fprintf(w, "Completed:   %s\n", t.CompletedAt.Local().Format("2006-01-02 15:04"))
	}
}

// reportResult prints the outcome of a mutation on a single task.
func reportResult(cmd *cobra.Command, id string, res registry.Result, verb string) error {
	if !res.Found() {
		return fmt.Errorf("task not found: %s", id)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Task %s: %s\n", verb, res.Task.Title)
	cli.WarnUnsaved(out, res.Persisted)
	return nil
}
