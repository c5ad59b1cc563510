package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

const idleLabel = "idle"

// Schedule writes a title, a textual gantt line and the per-process table.
func Schedule(w io.Writer, title string, resp responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, resp.Timeline)
	outputSchedule(w, resp)
}

// Comparison writes one row of averages per algorithm.
func Comparison(w io.Writer, resps []responses.ScheduleResponse) {
	outputTitle(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Avg response", "Utilization", "Throughput", "Total time"})
	for _, resp := range resps {
		table.Append([]string{
			resp.Algorithm,
			fmt.Sprintf("%.2f", resp.AverageWaitingTime),
			fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", resp.AverageResponseTime),
			fmt.Sprintf("%.0f%%", resp.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", resp.CpuThroughput),
			fmt.Sprint(resp.TotalTime),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		label := s.ProcessID
		if s.Idle {
			label = idleLabel
		}
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	for _, d := range resp.Details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", resp.CpuThroughput)})
	table.Render()
}
