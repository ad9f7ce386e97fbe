package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-crm/leadline/internal/model"
)

func TestParseLeadCSV(t *testing.T) {
	input := strings.Join([]string{
		"name,mobile,email,status,branch,source,course,specialization,handled_by",
		"Asha Verma,9876543210,asha@example.com,Interested,North,Walk-in,Engineering,Civil,Ravi",
		"Bilal Khan,9123456780,,,South,Website,,,",
	}, "\n")

	leads, err := parseLeadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, "Asha Verma", leads[0].Name)
	assert.Equal(t, model.StatusInterested, leads[0].Status)
	assert.Equal(t, "Civil", leads[0].Specialization)

	// Missing status falls back to the default pipeline stage.
	assert.Equal(t, model.StatusNextFollowUp, leads[1].Status)
	assert.Equal(t, "South", leads[1].Branch)
}

func TestParseLeadCSV_ColumnOrderIndependent(t *testing.T) {
	input := strings.Join([]string{
		"mobile,name",
		"9876543210,Asha Verma",
	}, "\n")

	leads, err := parseLeadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Asha Verma", leads[0].Name)
	assert.Equal(t, "9876543210", leads[0].Mobile)
}

func TestParseLeadCSV_MissingRequiredColumn(t *testing.T) {
	_, err := parseLeadCSV(strings.NewReader("name,email\nAsha,a@b.c\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mobile")
}

func TestParseLeadCSV_BadStatusReportsLine(t *testing.T) {
	input := strings.Join([]string{
		"name,mobile,status",
		"Asha Verma,9876543210,Interested",
		"Bilal Khan,9123456780,Maybe",
	}, "\n")

	_, err := parseLeadCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseLeadCSV_InvalidRowAbortsWholeFile(t *testing.T) {
	input := strings.Join([]string{
		"name,mobile",
		"Asha Verma,9876543210",
		",9123456780",
	}, "\n")

	leads, err := parseLeadCSV(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, leads)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseLeadCSV_EmptyFile(t *testing.T) {
	leads, err := parseLeadCSV(strings.NewReader("name,mobile\n"))
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestWriteLeadCSV_RoundTrip(t *testing.T) {
	leads := []model.Lead{
		{Name: "Asha Verma", Mobile: "9876543210", Status: model.StatusInterested, Branch: "North"},
		{Name: "Bilal Khan", Mobile: "9123456780", Status: model.StatusConverted},
	}

	var sb strings.Builder
	require.NoError(t, writeLeadCSV(&sb, leads))

	parsed, err := parseLeadCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, leads[0].Name, parsed[0].Name)
	assert.Equal(t, leads[1].Status, parsed[1].Status)
}
