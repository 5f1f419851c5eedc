package controllers

import (
	"net/http"
	"strconv"

	"github.com/Eklavvyaaaaa/CIVIX/models"
	"github.com/Eklavvyaaaaa/CIVIX/store"

	"github.com/gin-gonic/gin"
)

// Fixed offsets simulating historical volume from before this session.
const (
	reportsMadeOffset = 124
	resolvedOffset    = 98
	homeRecentLimit   = 4
)

// ReportController serves the read-only feed and map projections of the
// report store.
type ReportController struct {
	store *store.ReportStore
}

func NewReportController(s *store.ReportStore) *ReportController {
	return &ReportController{store: s}
}

// marker is what the map widget consumes to render a pin.
type marker struct {
	ID          string               `json:"id"`
	Lat         float64              `json:"lat"`
	Lng         float64              `json:"lng"`
	Title       string               `json:"title"`
	Category    models.IssueCategory `json:"category"`
	Description string               `json:"description"`
}

func markersOf(reports []models.Report) []marker {
	markers := make([]marker, 0, len(reports))
	for _, r := range reports {
		markers = append(markers, marker{
			ID:          r.ID,
			Lat:         r.Location.Lat,
			Lng:         r.Location.Lng,
			Title:       r.Title,
			Category:    r.Category,
			Description: r.Description,
		})
	}
	return markers
}

// Home returns the summary card counts, the latest reports and their map
// markers for the home screen.
func (rc *ReportController) Home(c *gin.Context) {
	recent := rc.store.Recent(homeRecentLimit)

	resolved := 0
	for _, r := range recent {
		if r.Status == models.Resolved {
			resolved++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reportsMade":   len(recent) + reportsMadeOffset,
		"resolved":      resolved + resolvedOffset,
		"recentReports": recent,
		"markers":       markersOf(recent),
	})
}

// List returns the community feed, filtered by the optional search term
// and status/category filters. A blank term returns the full feed.
func (rc *ReportController) List(c *gin.Context) {
	term := c.Query("search")
	reports := rc.store.Search(term)

	if raw := c.Query("status"); raw != "" && raw != "all" {
		status, ok := models.ParseStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		reports = filterReports(reports, func(r models.Report) bool { return r.Status == status })
	}
	if raw := c.Query("category"); raw != "" && raw != "all" {
		category, ok := models.ParseCategory(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		reports = filterReports(reports, func(r models.Report) bool { return r.Category == category })
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"results": len(reports),
		"total":   rc.store.Len(),
	})
}

func filterReports(reports []models.Report, keep func(models.Report) bool) []models.Report {
	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Recent returns the newest reports, capped by the limit query parameter.
func (rc *ReportController) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if limit < 1 || limit > 100 {
		limit = 4
	}
	c.JSON(http.StatusOK, gin.H{"reports": rc.store.Recent(limit)})
}

// Markers returns map pins for the (optionally filtered) feed.
func (rc *ReportController) Markers(c *gin.Context) {
	reports := rc.store.Search(c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"markers": markersOf(reports)})
}

// Get retrieves a single report for the detail drawer.
func (rc *ReportController) Get(c *gin.Context) {
	report, ok := rc.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}
