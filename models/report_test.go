package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Eklavvyaaaaa/CIVIX/models"
)

func TestParseCategoryAcceptsClosedEnumerationOnly(t *testing.T) {
	for _, c := range models.Categories {
		got, ok := models.ParseCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	for _, s := range []string{"", "Road", "pothole", "POTHOLE", "Trash", "Streetlight"} {
		_, ok := models.ParseCategory(s)
		assert.False(t, ok, "%q must be rejected", s)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Pending", "In Progress", "Resolved"} {
		got, ok := models.ParseStatus(s)
		assert.True(t, ok)
		assert.Equal(t, models.ReportStatus(s), got)
	}

	for _, s := range []string{"", "pending", "Done", "InProgress"} {
		_, ok := models.ParseStatus(s)
		assert.False(t, ok, "%q must be rejected", s)
	}
}
