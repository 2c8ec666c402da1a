package flatfile

import (
	"bytes"
	"detailcrm/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func sampleCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:           "c1",
			FirstName:    "John",
			LastName:     "Smith",
			Email:        "john.smith@example.com",
			Phone:        "555-123-4567",
			Address:      "123 Main St|Unit 4\nAnytown",
			VehicleMake:  "Honda",
			VehicleModel: "Accord",
			VehicleYear:  "2019",
			VehicleColor: "Black",
			Notes:        "prefers mornings|\nno wax",
			CreatedAt:    at(2024, 3, 1, 9, 30),
		},
		{
			ID:        "c2",
			FirstName: "Emily",
			LastName:  "Johnson",
			Address:   "456 Oak Ave",
			Notes:     "gate|code\n1234",
			CreatedAt: at(2024, 3, 2, 14, 0),
		},
	}
}

func TestCustomersRoundTrip(t *testing.T) {
	in := sampleCustomers()
	var buf bytes.Buffer
	require.NoError(t, WriteCustomers(&buf, in))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	out, rep, err := ReadCustomers(&buf)
	require.NoError(t, err)
	assert.True(t, rep.Loaded)
	assert.Equal(t, 2, rep.Records)
	assert.Equal(t, 0, rep.Skipped)
	assert.Equal(t, in, out)
}

func TestAppointmentsRoundTrip(t *testing.T) {
	in := []models.Appointment{
		{
			ID:         "a1",
			CustomerID: "c1",
			DateTime:   at(2024, 6, 3, 10, 0),
			Location:   "Lot B|level 2\nnear exit",
			ServiceIDs: []string{"s1", "s2"},
			Status:     models.AppointmentConfirmed,
			Notes:      "bring|ladder\n",
		},
		{
			ID:         "a2",
			CustomerID: "c2",
			DateTime:   at(2024, 6, 4, 14, 30),
			Location:   "home",
			Status:     models.AppointmentScheduled,
			Notes:      "x|y\nz",
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteAppointments(&buf, in))
	out, rep, err := ReadAppointments(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Records)
	assert.Equal(t, in, out)
}

func TestServicesRoundTrip(t *testing.T) {
	in := []models.Service{
		{ID: "s1", Code: "BASIC_WASH", Name: "Basic Wash & Vacuum", Description: "wash|vacuum\ninterior", Price: 49.99},
		{ID: "s2", Code: "CERAMIC_COAT", Name: "Ceramic Coating", Description: "pro|coat\n", Price: 300},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteServices(&buf, in))
	out, _, err := ReadServices(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestInvoicesRoundTrip(t *testing.T) {
	paid := at(2024, 6, 5, 16, 45)
	in := []models.Invoice{
		{
			ID:            "i1",
			CustomerID:    "c1",
			AppointmentID: "a1",
			ServiceIDs:    []string{"s1", "s2"},
			TotalAmount:   179.98,
			Status:        models.InvoicePaid,
			CreationDate:  at(2024, 6, 3, 12, 0),
			PaymentDate:   &paid,
		},
		{
			ID:           "i2",
			CustomerID:   "c2",
			ServiceIDs:   []string{"s1"},
			TotalAmount:  49.99,
			Status:       models.InvoicePending,
			CreationDate: at(2024, 6, 4, 12, 0),
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteInvoices(&buf, in))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], "|"), "absent payment date is an empty field")

	out, _, err := ReadInvoices(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestShortLineIsSkipped(t *testing.T) {
	data := "c1|John|Smith|j@example.com|555|addr|Honda|Accord|2019|Black|notes|2024-03-01T09:30:00\n" +
		"c2|Emily|Johnson\n"
	out, rep, err := ReadCustomers(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].ID)
	assert.Equal(t, 1, rep.Skipped)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "line 2")
}

func TestMalformedTimestampAbortsFile(t *testing.T) {
	data := "c1|John|Smith|j@example.com|555|addr|Honda|Accord|2019|Black|notes|2024-03-01T09:30:00\n" +
		"c2|Emily|Johnson|e@example.com|555|addr|Toyota|Camry|2021|Silver|notes|yesterday\n"
	out, rep, err := ReadCustomers(strings.NewReader(data))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.False(t, rep.Loaded)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "customers.txt", pe.File)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "createdAt", pe.Field)
}

func TestMalformedPriceAbortsFile(t *testing.T) {
	_, _, err := ReadServices(strings.NewReader("s1|CODE|Name|desc|cheap\n"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "price", pe.Field)
}

func TestUnknownStatusIsRejected(t *testing.T) {
	data := "a1|c1|2024-06-03T10:00:00|home|s1|SCHEDULED|\n" +
		"a2|c1|2024-06-04T10:00:00|home|s1|POSTPONED|\n"
	out, rep, err := ReadAppointments(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].ID)
	assert.Equal(t, 1, rep.Skipped)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "POSTPONED")
}

func TestLegacyInvoiceLine(t *testing.T) {
	// Older files end without the payment date and write "null" for a
	// missing appointment.
	data := "i1|c1|null|s1,s2|179.98|PENDING|2024-06-03T12:00:00\r\n"
	out, rep, err := ReadInvoices(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0, rep.Skipped)
	inv := out[0]
	assert.Empty(t, inv.AppointmentID)
	assert.Nil(t, inv.PaymentDate)
	assert.Equal(t, []string{"s1", "s2"}, inv.ServiceIDs)
	assert.Equal(t, models.InvoicePending, inv.Status)
}

func TestLegacyAppointmentWithoutNotes(t *testing.T) {
	out, _, err := ReadAppointments(strings.NewReader("a1|c1|2024-06-03T10:00:00|home||COMPLETED\n"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].ServiceIDs)
	assert.Empty(t, out[0].Notes)
	assert.Equal(t, models.AppointmentCompleted, out[0].Status)
}

func TestBlankLinesAreIgnored(t *testing.T) {
	out, rep, err := ReadServices(strings.NewReader("\ns1|C|N|D|10\n\n"))
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 0, rep.Skipped)
}

func TestTrailingBackslashRoundTrip(t *testing.T) {
	paid := at(2024, 6, 5, 16, 0)

	customers := []models.Customer{{ID: `c1\`, FirstName: `Jo\`, Notes: `see C:\`, CreatedAt: at(2024, 3, 1, 9, 0)}}
	var buf bytes.Buffer
	require.NoError(t, WriteCustomers(&buf, customers))
	gotCustomers, rep, err := ReadCustomers(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Skipped, rep.Warnings)
	assert.Equal(t, customers, gotCustomers)

	appointments := []models.Appointment{{
		ID:         "a1",
		CustomerID: `c1\`,
		DateTime:   at(2024, 6, 3, 10, 0),
		Location:   `bay 3\`,
		ServiceIDs: []string{`s1\`, "s2"},
		Status:     models.AppointmentScheduled,
		Notes:      `\\server\share\`,
	}}
	buf.Reset()
	require.NoError(t, WriteAppointments(&buf, appointments))
	gotAppointments, rep, err := ReadAppointments(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Skipped, rep.Warnings)
	assert.Equal(t, appointments, gotAppointments)

	services := []models.Service{{ID: "s1", Code: `WASH\`, Name: `Wash\`, Description: `a\|b\`, Price: 10}}
	buf.Reset()
	require.NoError(t, WriteServices(&buf, services))
	gotServices, rep, err := ReadServices(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Skipped, rep.Warnings)
	assert.Equal(t, services, gotServices)

	invoices := []models.Invoice{{
		ID:            `i1\`,
		CustomerID:    `c1\`,
		AppointmentID: `a1\`,
		ServiceIDs:    []string{`s1\`},
		TotalAmount:   10,
		Status:        models.InvoicePaid,
		CreationDate:  at(2024, 6, 3, 10, 0),
		PaymentDate:   &paid,
	}}
	buf.Reset()
	require.NoError(t, WriteInvoices(&buf, invoices))
	gotInvoices, rep, err := ReadInvoices(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Skipped, rep.Warnings)
	assert.Equal(t, invoices, gotInvoices)
}

func TestIDsWithDelimitersRoundTrip(t *testing.T) {
	paid := at(2024, 6, 5, 16, 0)
	invoices := []models.Invoice{{
		ID:            "inv|1",
		CustomerID:    "cust\n1",
		AppointmentID: "appt,1",
		ServiceIDs:    []string{"s,1", "s|2", `s\3`},
		TotalAmount:   42.5,
		Status:        models.InvoicePaid,
		CreationDate:  at(2024, 6, 3, 10, 0),
		PaymentDate:   &paid,
	}}
	var buf bytes.Buffer
	require.NoError(t, WriteInvoices(&buf, invoices))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))

	out, rep, err := ReadInvoices(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Skipped, rep.Warnings)
	assert.Equal(t, invoices, out)
}

func TestBareBackslashesInOlderFiles(t *testing.T) {
	line := `c1|John|Smith|||C:\temp|||||path a\b|2024-03-01T09:30:00` + "\n"
	out, rep, err := ReadCustomers(strings.NewReader(line))
	require.NoError(t, err)
	require.Equal(t, 1, rep.Records)
	assert.Equal(t, `C:\temp`, out[0].Address)
	assert.Equal(t, `path a\b`, out[0].Notes)
}
