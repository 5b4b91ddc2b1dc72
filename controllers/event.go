// controllers/event.go
package controllers

import (
	"hotelpro-backend/forms"
	"hotelpro-backend/models"
	"hotelpro-backend/query"
	"hotelpro-backend/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventInput is the JSON body for creating an event. Omitted fields keep
// the defaults of a new event form.
type EventInput struct {
	Name                 string                     `json:"name"`
	Type                 *models.EventType          `json:"type"`
	OrganizerName        string                     `json:"organizerName"`
	OrganizerPhone       string                     `json:"organizerPhone"`
	IdentificationType   *models.IdentificationType `json:"identificationType"`
	IdentificationNumber string                     `json:"identificationNumber"`
	StartDateTime        *time.Time                 `json:"startDateTime"`
	EndDateTime          *time.Time                 `json:"endDateTime"`
	ExpectedAttendees    *int                       `json:"expectedAttendees"`
	HallIDs              []uuid.UUID                `json:"hallIds"`
	TotalRevenue         float64                    `json:"totalRevenue"`
	Status               *models.EventStatus        `json:"status"`
	PaymentStatus        *models.PaymentStatus      `json:"paymentStatus"`
}

func (in EventInput) apply(d *forms.EventDraft) {
	d.Name = in.Name
	d.OrganizerName = in.OrganizerName
	d.OrganizerPhone = in.OrganizerPhone
	d.IdentificationNumber = in.IdentificationNumber
	d.TotalRevenue = in.TotalRevenue
	if in.HallIDs != nil {
		d.HallIDs = in.HallIDs
	}
	if in.Type != nil {
		d.Type = *in.Type
	}
	if in.IdentificationType != nil {
		d.IdentificationType = *in.IdentificationType
	}
	if in.StartDateTime != nil {
		d.StartDateTime = *in.StartDateTime
		if in.EndDateTime == nil {
			d.EndDateTime = in.StartDateTime.Add(time.Hour)
		}
	}
	if in.EndDateTime != nil {
		d.EndDateTime = *in.EndDateTime
	}
	if in.ExpectedAttendees != nil {
		d.ExpectedAttendees = *in.ExpectedAttendees
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	if in.PaymentStatus != nil {
		d.PaymentStatus = *in.PaymentStatus
	}
}

// UpdateEventInput changes only the fields that are present.
type UpdateEventInput struct {
	Name                 *string                    `json:"name"`
	Type                 *models.EventType          `json:"type"`
	OrganizerName        *string                    `json:"organizerName"`
	OrganizerPhone       *string                    `json:"organizerPhone"`
	IdentificationType   *models.IdentificationType `json:"identificationType"`
	IdentificationNumber *string                    `json:"identificationNumber"`
	StartDateTime        *time.Time                 `json:"startDateTime"`
	EndDateTime          *time.Time                 `json:"endDateTime"`
	ExpectedAttendees    *int                       `json:"expectedAttendees"`
	HallIDs              *[]uuid.UUID               `json:"hallIds"`
	TotalRevenue         *float64                   `json:"totalRevenue"`
	Status               *models.EventStatus        `json:"status"`
	PaymentStatus        *models.PaymentStatus      `json:"paymentStatus"`
	// UpdatedAt, when sent, must match the stored event.
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (in UpdateEventInput) apply(d *forms.EventDraft) {
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Type != nil {
		d.Type = *in.Type
	}
	if in.OrganizerName != nil {
		d.OrganizerName = *in.OrganizerName
	}
	if in.OrganizerPhone != nil {
		d.OrganizerPhone = *in.OrganizerPhone
	}
	if in.IdentificationType != nil {
		d.IdentificationType = *in.IdentificationType
	}
	if in.IdentificationNumber != nil {
		d.IdentificationNumber = *in.IdentificationNumber
	}
	if in.StartDateTime != nil {
		d.StartDateTime = *in.StartDateTime
	}
	if in.EndDateTime != nil {
		d.EndDateTime = *in.EndDateTime
	}
	if in.ExpectedAttendees != nil {
		d.ExpectedAttendees = *in.ExpectedAttendees
	}
	if in.HallIDs != nil {
		d.HallIDs = *in.HallIDs
	}
	if in.TotalRevenue != nil {
		d.TotalRevenue = *in.TotalRevenue
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	if in.PaymentStatus != nil {
		d.PaymentStatus = *in.PaymentStatus
	}
}

// GetEvents lists events with their hall names, statistics and counts.
func (h *Handler) GetEvents(c *gin.Context) {
	status, err := query.ParseStatusFilter(c.Query("status"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	view := h.eventForm().List(query.EventFilter{Search: c.Query("search"), Status: status})
	c.JSON(http.StatusOK, view)
}

func (h *Handler) GetEventStats(c *gin.Context) {
	c.JSON(http.StatusOK, query.EventStatistics(h.store.Snapshot().Events))
}

// GetEventDefaults returns the draft a new event form starts with, along
// with the halls it can book.
func (h *Handler) GetEventDefaults(c *gin.Context) {
	f := h.eventForm()
	if err := f.OpenCreate(); err != nil {
		h.respondError(c, err, "", "Failed to prepare event form")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"draft": f.Draft,
		"halls": f.AvailableHalls(),
	})
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	f := h.eventForm()
	if err := f.OpenView(id); err != nil {
		h.respondError(c, err, "Event not found", "Failed to retrieve event")
		return
	}
	e, _ := f.Selected()
	c.JSON(http.StatusOK, query.EventRows([]models.Event{e}, h.store.Halls())[0])
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	f := h.eventForm()
	if err := f.OpenCreate(); err != nil {
		h.respondError(c, err, "", "Failed to create event")
		return
	}
	input.apply(&f.Draft)

	event, err := f.Submit(c.Request.Context(), utils.CurrentUser(c))
	if err != nil {
		h.respondError(c, err, "", "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	var input UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	f := h.eventForm()
	if err := f.OpenEdit(id); err != nil {
		h.respondError(c, err, "Event not found", "Failed to update event")
		return
	}
	input.apply(&f.Draft)
	if input.UpdatedAt != nil {
		f.ExpectVersion(*input.UpdatedAt)
	}

	event, err := f.Submit(c.Request.Context(), utils.CurrentUser(c))
	if err != nil {
		h.respondError(c, err, "Event not found", "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent requires ?confirm=true.
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}

	ok = confirmed(c)
	removed, err := h.eventForm().Delete(c.Request.Context(), id, func(models.Event) bool { return ok })
	if err != nil {
		h.respondError(c, err, "Event not found", "Failed to delete event")
		return
	}
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Deletion must be confirmed")
		return
	}
	if !removed {
		utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
