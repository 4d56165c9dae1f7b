package document

import (
	"bytes"
	"testing"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExportConfig() config.ExportConfig {
	return config.ExportConfig{PageWidthPx: 794, PageHeightPx: 1123, Scale: 2}
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Jane Doe-Treatment-Plan.pdf", ExportFilename("Jane Doe"))
}

func TestExport_WritesPDF(t *testing.T) {
	catalog := entities.DefaultCatalog()
	plan := samplePlan(t, catalog)

	exporter := NewExporter(testExportConfig(), services.NewPricingService())
	var buf bytes.Buffer
	require.NoError(t, exporter.Export(&buf, plan, catalog, entities.LanguageEN))

	require.Greater(t, buf.Len(), 1000)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Contains(t, string(buf.Bytes()[buf.Len()-32:]), "%%EOF")
}

func TestExport_NilPlanWritesNothing(t *testing.T) {
	exporter := NewExporter(testExportConfig(), services.NewPricingService())

	var buf bytes.Buffer
	err := exporter.Export(&buf, nil, entities.DefaultCatalog(), entities.LanguageEN)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestExport_OverflowingPageProducesMoreOutputPages(t *testing.T) {
	catalog := entities.DefaultCatalog()
	plan := samplePlan(t, catalog)
	// Inflate the details page well past one page of content
	for i := 0; i < 80; i++ {
		plan.NextSteps = append(plan.NextSteps, "Repeat the at-home regimen and log progress in the patient portal every week.")
	}

	exporter := NewExporter(testExportConfig(), services.NewPricingService())
	var small, large bytes.Buffer
	require.NoError(t, exporter.Export(&small, samplePlan(t, catalog), catalog, entities.LanguageEN))
	require.NoError(t, exporter.Export(&large, plan, catalog, entities.LanguageEN))

	// More slices mean more embedded page images
	assert.Greater(t, bytes.Count(large.Bytes(), []byte("/Type /Page")), bytes.Count(small.Bytes(), []byte("/Type /Page")))
}
