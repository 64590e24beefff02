package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransferReference(t *testing.T) {
	assert.Equal(t, "RES-9FA1C2", TransferReference("64b0f00dd1e2aa34569fa1c2"))
	assert.Equal(t, "RES-ABC", TransferReference("abc"))
}

func TestInvoiceNumber(t *testing.T) {
	issued := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "FCT-20240610-9FA1C2", InvoiceNumber("64b0f00dd1e2aa34569fa1c2", issued))
}
