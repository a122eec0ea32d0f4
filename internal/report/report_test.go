package report

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goeda/domain/dataset"
	"goeda/internal/eda"
)

func fixtureAnalyzer(t *testing.T) *eda.Analyzer {
	t.Helper()

	rows := 40
	amounts := make([]float64, rows)
	fraud := make([]float64, rows)
	currency := make([]string, rows)
	provider := make([]string, rows)
	product := make([]string, rows)
	channel := make([]string, rows)
	for i := 0; i < rows; i++ {
		amounts[i] = float64(50 + i*37%900)
		currency[i] = "UGX"
		provider[i] = []string{"ProviderId_4", "ProviderId_6"}[i%2]
		product[i] = []string{"airtime", "data_bundles", "tv"}[i%3]
		channel[i] = []string{"ChannelId_1", "ChannelId_2", "ChannelId_3"}[i%3]
	}
	for i, amt := range []float64{15, 25, 35, 45, 55, 65} {
		fraud[i] = 1
		amounts[i] = amt
	}

	ds, err := dataset.New([]dataset.Column{
		{Name: "Amount", Type: dataset.TypeNumeric, Floats: amounts},
		{Name: "FraudResult", Type: dataset.TypeBoolean, Floats: fraud},
		{Name: "CurrencyCode", Type: dataset.TypeCategorical, Labels: currency},
		{Name: "ProviderId", Type: dataset.TypeCategorical, Labels: provider},
		{Name: "ProductCategory", Type: dataset.TypeCategorical, Labels: product},
		{Name: "ChannelId", Type: dataset.TypeCategorical, Labels: channel},
	})
	require.NoError(t, err)
	return eda.New(ds)
}

func TestGenerator_Run(t *testing.T) {
	outDir := t.TempDir()
	generator := NewGenerator(fixtureAnalyzer(t), outDir)

	result, err := generator.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Len(t, result.TextFiles, 3)
	assert.Len(t, result.Figures, 7)

	for _, path := range append(result.TextFiles, result.Figures...) {
		info, err := os.Stat(path)
		require.NoError(t, err, "expected output file %s", path)
		assert.Greater(t, info.Size(), int64(0), "output file %s is empty", path)
	}

	md, err := os.ReadFile(result.MarkdownFile)
	require.NoError(t, err)
	for _, want := range []string{"# Transaction Data Analysis Report", "## Summary Statistics", "figures/fraud_amount_bins.png"} {
		assert.Contains(t, string(md), want)
	}
}

func TestServer_ServesReport(t *testing.T) {
	outDir := t.TempDir()
	result, err := NewGenerator(fixtureAnalyzer(t), outDir).Run(context.Background())
	require.NoError(t, err)

	ts := httptest.NewServer(NewServer(result.Dir).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<img")
	assert.Contains(t, string(body), "Summary Statistics")

	figure, err := http.Get(ts.URL + "/figures/correlation_heatmap.png")
	require.NoError(t, err)
	defer figure.Body.Close()
	assert.Equal(t, http.StatusOK, figure.StatusCode)
}

func TestServer_NoReport(t *testing.T) {
	ts := httptest.NewServer(NewServer(t.TempDir()).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
