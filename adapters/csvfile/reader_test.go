package csvfile

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goeda/domain/dataset"
)

const sampleCSV = `TransactionId,Amount,Value,CurrencyCode,FraudResult
T1,1000.5,1000,UGX,0
T2,-50,50,UGX,0
T3,NaN,500,UGX,1
T4,250,250,,0
`

func TestReadFrom_TypesAndValues(t *testing.T) {
	ds, err := ReadFrom(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Rows())
	assert.Len(t, ds.Columns(), 5)

	amount, ok := ds.Column("Amount")
	require.True(t, ok)
	assert.True(t, amount.IsNumeric())
	assert.Equal(t, 1000.5, amount.Floats[0])
	assert.True(t, math.IsNaN(amount.Floats[2]), "NaN cell should load as missing")

	currency, ok := ds.Column("CurrencyCode")
	require.True(t, ok)
	assert.Equal(t, dataset.TypeCategorical, currency.Type)
	assert.Equal(t, "UGX", currency.Labels[0])

	fraud, ok := ds.Column("FraudResult")
	require.True(t, ok)
	assert.True(t, fraud.IsNumeric(), "0/1 indicator must participate in numeric analysis")
	assert.Equal(t, 1.0, fraud.Floats[2])
}

func TestReadFrom_Garbage(t *testing.T) {
	_, err := ReadFrom(strings.NewReader(""))
	assert.Error(t, err)
}
