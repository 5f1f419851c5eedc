package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Eklavvyaaaaa/CIVIX/models"
	"github.com/Eklavvyaaaaa/CIVIX/workflow"

	"github.com/gin-gonic/gin"
)

// The client advertises "Max 5MB" on the capture control.
const maxImageBytes = 5 << 20

// DraftController drives the submission workflow over HTTP. One draft is
// in flight per session.
type DraftController struct {
	flow *workflow.Workflow
}

func NewDraftController(flow *workflow.Workflow) *DraftController {
	return &DraftController{flow: flow}
}

func (dc *DraftController) draftPayload() gin.H {
	return gin.H{
		"state": dc.flow.State(),
		"draft": dc.flow.Draft(),
	}
}

// State reports where the in-flight draft sits and its field values.
func (dc *DraftController) State(c *gin.Context) {
	c.JSON(http.StatusOK, dc.draftPayload())
}

// UploadImage accepts the captured photo and kicks off AI analysis. The
// response does not wait for the analysis: the client keeps editing while
// it runs and polls the draft state for autofilled fields.
func (dc *DraftController) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 5MB limit"})
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image uploads are accepted"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	if err := dc.flow.AttachImage(data, mimeType); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, dc.draftPayload())
}

// Update hand-edits the draft fields. Absent fields are left untouched.
func (dc *DraftController) Update(c *gin.Context) {
	var input struct {
		Category    *string `json:"category,omitempty"`
		Description *string `json:"description,omitempty"`
		UserName    *string `json:"userName,omitempty"`
		Phone       *string `json:"phone,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Category != nil {
		category, ok := models.ParseCategory(*input.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		if err := dc.flow.SetCategory(category); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}
	if input.Description != nil {
		if err := dc.flow.SetDescription(*input.Description); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}
	if input.UserName != nil || input.Phone != nil {
		draft := dc.flow.Draft()
		name, phone := draft.UserName, draft.Phone
		if input.UserName != nil {
			name = *input.UserName
		}
		if input.Phone != nil {
			phone = *input.Phone
		}
		if err := dc.flow.SetContact(name, phone); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, dc.draftPayload())
}

// clientLocator adapts the device's geolocation result onto the workflow's
// Locator boundary. The platform lookup itself happens on the device.
type clientLocator struct {
	lat, lng *float64
	denied   bool
}

func (l clientLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	if l.denied || l.lat == nil || l.lng == nil {
		return models.Coordinates{}, workflow.ErrLocationDenied
	}
	return models.Coordinates{Lat: *l.lat, Lng: *l.lng}, nil
}

// Location records the geolocation outcome: coordinates, or a denial.
// Denial is not a hard error; the user may retry detection.
func (dc *DraftController) Location(c *gin.Context) {
	var input struct {
		Lat    *float64 `json:"lat,omitempty"`
		Lng    *float64 `json:"lng,omitempty"`
		Denied bool     `json:"denied,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	locator := clientLocator{lat: input.Lat, lng: input.Lng, denied: input.Denied}
	_, err := dc.flow.DetectLocation(c.Request.Context(), locator)
	if err != nil && !errors.Is(err, workflow.ErrLocationDenied) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dc.draftPayload())
}

// Review validates the draft and opens the read-only confirmation surface.
func (dc *DraftController) Review(c *gin.Context) {
	if err := dc.flow.RequestReview(); err != nil {
		var vErr *workflow.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "missing": vErr.Missing})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	review, _ := dc.flow.Review()
	c.JSON(http.StatusOK, gin.H{"state": dc.flow.State(), "review": review})
}

// Confirm commits the reviewed draft to the feed and resets the workflow.
func (dc *DraftController) Confirm(c *gin.Context) {
	report, err := dc.flow.Confirm()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"report":     report,
		"navigateTo": "neighborhood",
	})
}

// CancelReview goes back to editing with every field value preserved.
func (dc *DraftController) CancelReview(c *gin.Context) {
	if err := dc.flow.CancelReview(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dc.draftPayload())
}

// Discard drops the whole draft.
func (dc *DraftController) Discard(c *gin.Context) {
	dc.flow.Discard()
	c.JSON(http.StatusOK, dc.draftPayload())
}
