package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderInvoicePDF(t *testing.T) {
	order, err := seededStore(t).Orders.Get("ORD-7352")
	require.NoError(t, err)

	pdf, err := GenerateOrderInvoicePDF(order)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Greater(t, len(pdf), 1000)
}
