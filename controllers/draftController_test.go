package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eklavvyaaaaa/CIVIX/controllers"
	"github.com/Eklavvyaaaaa/CIVIX/routes"
	"github.com/Eklavvyaaaaa/CIVIX/store"
	"github.com/Eklavvyaaaaa/CIVIX/workflow"
)

func newSubmissionRouter(t *testing.T) (*gin.Engine, *store.ReportStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reports := store.New(store.SeedReports()...)
	flow := workflow.New(reports, nil)

	r := gin.New()
	routes.DraftRoutes(r, controllers.NewDraftController(flow))
	routes.ReportRoutes(r, controllers.NewReportController(reports))
	return r, reports
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var body map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func uploadImage(t *testing.T, r *gin.Engine, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="issue.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/draft/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestSubmissionCycleOverHTTP(t *testing.T) {
	r, reports := newSubmissionRouter(t)
	before := reports.Len()

	// Capture evidence.
	w := uploadImage(t, r, "image/jpeg")
	require.Equal(t, http.StatusAccepted, w.Code)

	// Review without the remaining fields fails with a combined message.
	w, body := doJSON(t, r, http.MethodPost, "/api/draft/review", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.ElementsMatch(t, []any{"Category", "Description", "Location"}, body["missing"])

	// Fill in details and location.
	w, _ = doJSON(t, r, http.MethodPatch, "/api/draft", gin.H{
		"category":    "Pothole",
		"description": "crack",
		"userName":    "Ada",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = doJSON(t, r, http.MethodPost, "/api/draft/location", gin.H{"lat": 40.71, "lng": -74.00})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(workflow.StateReady), body["state"])

	// Review, then confirm.
	w, body = doJSON(t, r, http.MethodPost, "/api/draft/review", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(workflow.StateReviewing), body["state"])

	w, body = doJSON(t, r, http.MethodPost, "/api/draft/confirm", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "neighborhood", body["navigateTo"])

	report := body["report"].(map[string]any)
	assert.Equal(t, "Pothole Report", report["title"])
	assert.Equal(t, "Pending", report["status"])
	assert.EqualValues(t, 0, report["upvotes"])
	assert.Equal(t, "Ada", report["userName"])
	assert.True(t, strings.HasPrefix(report["imageUrl"].(string), "data:image/jpeg;base64,"))

	// The feed gained exactly one report, at the front.
	require.Equal(t, before+1, reports.Len())
	assert.Equal(t, report["id"], reports.All()[0].ID)

	// Workflow reset for the next cycle.
	_, body = doJSON(t, r, http.MethodGet, "/api/draft", nil)
	assert.Equal(t, string(workflow.StateEmpty), body["state"])
}

func TestUploadRejectsNonImage(t *testing.T) {
	r, _ := newSubmissionRouter(t)

	w := uploadImage(t, r, "application/pdf")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationDenialKeepsDraftNonReady(t *testing.T) {
	r, _ := newSubmissionRouter(t)

	w := uploadImage(t, r, "image/png")
	require.Equal(t, http.StatusAccepted, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/draft/location", gin.H{"denied": true})
	require.Equal(t, http.StatusOK, w.Code, "denial is a status, not a hard error")

	draft := body["draft"].(map[string]any)
	assert.Equal(t, "GPS Access Denied.", draft["locationStatus"])
	assert.Nil(t, draft["location"])
}

func TestCancelReviewKeepsFieldValues(t *testing.T) {
	r, _ := newSubmissionRouter(t)

	uploadImage(t, r, "image/jpeg")
	doJSON(t, r, http.MethodPatch, "/api/draft", gin.H{"category": "Graffiti", "description": "tagging"})
	doJSON(t, r, http.MethodPost, "/api/draft/location", gin.H{"lat": 40.7135, "lng": -74.0040})

	w, _ := doJSON(t, r, http.MethodPost, "/api/draft/review", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/draft/cancel-review", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(workflow.StateReady), body["state"])

	draft := body["draft"].(map[string]any)
	assert.Equal(t, "Graffiti", draft["category"])
	assert.Equal(t, "tagging", draft["description"])
}

func TestUpdateRejectsUnknownCategory(t *testing.T) {
	r, _ := newSubmissionRouter(t)

	w, body := doJSON(t, r, http.MethodPatch, "/api/draft", gin.H{"category": "Road Damage"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category", body["error"])
}

func TestDiscardResetsCycle(t *testing.T) {
	r, _ := newSubmissionRouter(t)

	uploadImage(t, r, "image/jpeg")
	doJSON(t, r, http.MethodPatch, "/api/draft", gin.H{"description": "something"})

	w, body := doJSON(t, r, http.MethodPost, "/api/draft/discard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(workflow.StateEmpty), body["state"])
}
