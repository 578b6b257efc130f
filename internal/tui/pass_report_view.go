package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/cyphers-laptop/models"
)

// outcomeOrder is the display order of the per-outcome counters.
var outcomeOrder = []models.ReminderOutcome{
	models.OutcomeNotified,
	models.OutcomeSkipped,
	models.OutcomeUnreachable,
	models.OutcomeNoCredential,
	models.OutcomeAuthFailed,
	models.OutcomeRateLimited,
	models.OutcomeMFARequired,
	models.OutcomeBlocked,
	models.OutcomeSendFailed,
	models.OutcomeUnexpectedFail,
}

func RenderPassReport(r models.PassReport) string {
	rows := [][2]string{
		{"Run", valueOrNA(r.RunID)},
		{"Started", r.StartedAt.UTC().Format(time.RFC3339)},
		{"Completed", r.CompletedAt.UTC().Format(time.RFC3339)},
		{"Subscribers", fmt.Sprintf("%d", len(r.Outcomes))},
	}
	for _, o := range outcomeOrder {
		if n := r.Count(o); n > 0 {
			rows = append(rows, [2]string{string(o), fmt.Sprintf("%d", n)})
		}
	}

	status := okStyle.Render("completed without errors")
	if r.HadErrors {
		status = errorStyle.Render("completed with errors")
	}

	return renderPage("Reminder pass", renderRows(rows), status)
}
