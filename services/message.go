package services

import (
	"fmt"
	"hotelpro-backend/models"
	"hotelpro-backend/query"
)

func reminderMessage(e models.Event, halls []models.Hall) string {
	greeting := "Hello"
	if e.OrganizerName != "" {
		greeting = "Hello " + e.OrganizerName
	}
	return fmt.Sprintf("%s, this is a reminder that %q starts tomorrow at %s in %s. We look forward to hosting %d guests.",
		greeting,
		e.Name,
		e.StartDateTime.Format("15:04"),
		query.HallNames(e.HallIDs, halls),
		e.ExpectedAttendees,
	)
}
