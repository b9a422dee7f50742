package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyops/complyops/internal/application/dto"
	"github.com/complyops/complyops/internal/domain/values"
)

func sampleReport() *dto.ComplianceReport {
	return &dto.ComplianceReport{
		GeneratedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		Frameworks: []dto.FrameworkReport{
			{
				FrameworkID: values.NewRecordID().String(),
				Name:        "SOC 2",
				Version:     "2017",
				Snapshot: values.ControlCountSnapshot{
					Total: 10, Implemented: 6, PartiallyImplemented: 2, NotImplemented: 2,
				},
				Rate: 70,
				Controls: []dto.ControlRow{
					{Code: "CC6.1", Title: "Logical access security", Status: "implemented"},
					{Code: "CC7.1", Title: "Vulnerability management", Status: "not_implemented"},
				},
			},
		},
	}
}

func Test_NewFormatter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range SupportedFormats() {
		f, err := NewFormatter(format, &buf)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("xml", &buf)
	assert.Error(t, err)
}

func Test_TableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false

	require.NoError(t, f.Format(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "SOC 2 (2017)")
	assert.Contains(t, out, "70.0%")
	assert.Contains(t, out, "CC6.1")
	assert.Contains(t, out, "not_implemented")
	assert.NotContains(t, out, "\033[")
}

func Test_TableFormatter_Format_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false

	require.NoError(t, f.Format(&dto.ComplianceReport{GeneratedAt: time.Now().UTC()}))
	assert.Contains(t, buf.String(), "No active frameworks.")
}

func Test_JSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf, true)

	require.NoError(t, f.Format(sampleReport()))

	var decoded dto.ComplianceReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Frameworks, 1)
	assert.Equal(t, "SOC 2", decoded.Frameworks[0].Name)
	assert.Equal(t, 70.0, decoded.Frameworks[0].Rate)
}

func Test_YAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(&buf)

	require.NoError(t, f.Format(sampleReport()))

	var decoded dto.ComplianceReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Frameworks, 1)
	assert.Equal(t, 10, decoded.Frameworks[0].Snapshot.Total)
}
