package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductInput_DistinguishesAbsentNullAndValue(t *testing.T) {
	var in ProductInput
	require.NoError(t, json.Unmarshal([]byte(`{"productName":null,"stockAmount":5}`), &in))

	assert.True(t, in.ProductName.Set)
	assert.True(t, in.ProductName.Null)
	assert.False(t, in.ProductName.Present())

	assert.True(t, in.StockAmount.Present())
	assert.Equal(t, int64(5), in.StockAmount.Value)

	assert.False(t, in.TotalCost.Set)
	assert.False(t, in.ProductTypeID.Set)
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var in ProductInput
	err := json.Unmarshal([]byte(`{"productTypeID":"abc"}`), &in)
	assert.Error(t, err)
}
