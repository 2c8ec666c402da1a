package store

import (
	"detailcrm/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNames(t *testing.T) {
	s := newTestStore(t)
	wash, polish := addTestServices(t, s)
	cid := s.AddCustomer(models.Customer{FirstName: "Emily", LastName: "Johnson"})

	assert.Equal(t, "Emily Johnson", s.CustomerName(cid))
	assert.Equal(t, UnknownName, s.CustomerName("gone"))
	assert.Equal(t, []string{"Clay Bar & Polish", UnknownName, "Basic Wash"},
		s.ServiceNames([]string{polish, "gone", wash}))
	assert.Empty(t, s.ServiceNames(nil))
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	wash, polish := addTestServices(t, s)
	s.AddCustomer(models.Customer{FirstName: "John"})
	s.AddAppointment(models.Appointment{DateTime: testNow.Add(3 * time.Hour)})
	s.AddAppointment(models.Appointment{DateTime: testNow.AddDate(0, 0, 1)})

	paid := s.CreateInvoice("c1", []string{wash, polish}, "")
	s.CreateInvoice("c1", []string{wash}, "")
	cancelled := s.CreateInvoice("c1", []string{polish}, "")
	require.True(t, s.UpdateInvoiceStatus(paid, models.InvoicePaid))
	require.True(t, s.UpdateInvoiceStatus(cancelled, models.InvoiceCancelled))

	assert.Equal(t, Stats{
		Customers:         1,
		AppointmentsToday: 1,
		PendingInvoices:   1,
		Services:          2,
		PaidRevenue:       179.98,
		OutstandingAmount: 49.99,
	}, s.Stats(testNow))
}

func TestAddSampleData(t *testing.T) {
	s := newTestStore(t)
	s.AddSampleData()

	customers := s.SearchCustomers("smith")
	require.Len(t, customers, 1)
	john := customers[0]
	assert.Equal(t, "John Smith", john.FullName())
	assert.Len(t, s.Customers(), 2)
	assert.Len(t, s.Services(), 3, "only the services the samples use are installed")

	appts := s.Appointments()
	require.Len(t, appts, 2)
	assert.Equal(t, john.ID, appts[0].CustomerID)
	assert.Equal(t, time.Date(2024, 6, 5, 10, 0, 0, 0, time.Local), appts[0].DateTime)
	assert.Equal(t, time.Date(2024, 6, 6, 14, 30, 0, 0, time.Local), appts[1].DateTime)
	assert.Equal(t, []string{"Basic Wash & Vacuum", "Clay Bar & Polish"}, s.ServiceNames(appts[1].ServiceIDs))

	invoices := s.Invoices()
	require.Len(t, invoices, 2)
	var totals []float64
	for _, inv := range invoices {
		assert.Equal(t, models.InvoicePending, inv.Status)
		totals = append(totals, inv.TotalAmount)
	}
	assert.ElementsMatch(t, []float64{149.99, 179.98}, totals)
}

func TestAddSampleDataReusesLoadedServices(t *testing.T) {
	s := newTestStore(t)
	s.Load()
	require.Len(t, s.Services(), len(DefaultServices))

	s.AddSampleData()
	assert.Len(t, s.Services(), len(DefaultServices))
}
