package controllers

import (
	"detailcrm/config"
	"detailcrm/models"
	"detailcrm/store"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	st, err := store.New(store.WithLogger(log))
	require.NoError(t, err)
	h := NewHandler(st, config.Config{}, nil, log)

	wash := st.AddService(models.Service{Name: "Basic Wash", Price: 49.99})
	polish := st.AddService(models.Service{Name: "Clay Bar & Polish", Price: 129.99})
	john := st.AddCustomer(models.Customer{FirstName: "John", LastName: "Smith"})
	emily := st.AddCustomer(models.Customer{FirstName: "Emily", LastName: "Johnson"})

	paid := st.CreateInvoice(john, []string{wash, polish}, "")
	st.CreateInvoice(emily, []string{wash}, "")
	cancelled := st.CreateInvoice(emily, []string{polish}, "")
	require.True(t, st.UpdateInvoiceStatus(paid, models.InvoicePaid))
	require.True(t, st.UpdateInvoiceStatus(cancelled, models.InvoiceCancelled))

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local)
	sum := h.summarize(from, to, st.Invoices())

	assert.Equal(t, "2024-06-01", sum.From)
	assert.Equal(t, 30, sum.Days)
	assert.Equal(t, 3, sum.Invoices)
	assert.Equal(t, 1, sum.Cancelled)
	assert.Equal(t, 179.98, sum.Revenue)
	assert.Equal(t, 49.99, sum.Outstanding)
	assert.Equal(t, []ServiceSummary{
		{Name: "Basic Wash", Count: 2},
		{Name: "Clay Bar & Polish", Count: 1},
	}, sum.TopServices)
	assert.Equal(t, []CustomerSummary{
		{Name: "John Smith", Invoices: 1, Spent: 179.98},
		{Name: "Emily Johnson", Invoices: 1},
	}, sum.TopCustomers)
}
