package controllers

import (
	"hotelpro-backend/query"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHalls returns every hall. ?active=true limits the list to halls that
// can be booked.
func (h *Handler) GetHalls(c *gin.Context) {
	if c.Query("active") == "true" {
		c.JSON(http.StatusOK, h.store.ActiveHalls())
		return
	}
	c.JSON(http.StatusOK, h.store.Halls())
}

func (h *Handler) GetEventPackages(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().EventPackages)
}

type DashboardOverview struct {
	Events       query.EventStats   `json:"events"`
	Services     query.ServiceStats `json:"services"`
	Halls        int                `json:"halls"`
	ActiveHalls  int                `json:"activeHalls"`
	Packages     int                `json:"packages"`
	UpcomingSoon []query.EventRow   `json:"upcomingSoon"`
}

const upcomingLimit = 5

// GetDashboardOverview summarises the venue from a single snapshot.
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, DashboardOverview{
		Events:       query.EventStatistics(snap.Events),
		Services:     query.ServiceStatistics(snap.AdditionalServices),
		Halls:        len(snap.Halls),
		ActiveHalls:  len(snap.ActiveHalls()),
		Packages:     len(snap.EventPackages),
		UpcomingSoon: query.EventRows(query.Upcoming(snap.Events, h.now(), upcomingLimit), snap.Halls),
	})
}
