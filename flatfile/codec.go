package flatfile

import (
	"bufio"
	"detailcrm/models"
	"errors"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

// Report describes how one file was read.
type Report struct {
	Kind    Kind
	Path    string
	Loaded  bool // false when the file does not exist or failed to parse
	Records int
	Skipped int
	// Warnings lists every skipped line with the reason.
	Warnings []string
	Err      error
}

func writeLines[T any](w io.Writer, items []T, encode func(T) string) error {
	bw := bufio.NewWriter(w)
	for _, it := range items {
		if _, err := bw.WriteString(encode(it)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// readLines decodes every line of r. Lines with fewer than minFields
// fields, or with a status outside the known set, are skipped and noted
// in the report. Any other decoding failure aborts the read.
func readLines[T any](r io.Reader, kind Kind, minFields int, decode func([]string) (T, error)) ([]T, Report, error) {
	rep := Report{Kind: kind}
	var items []T
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := splitFields(line)
		if len(fields) < minFields {
			rep.Skipped++
			rep.Warnings = append(rep.Warnings,
				fmt.Sprintf("line %d: %d fields, want at least %d", lineNo, len(fields), minFields))
			continue
		}
		item, err := decode(fields)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.File = kind.FileName()
				pe.Line = lineNo
			}
			if errors.Is(err, models.ErrInvalidStatus) {
				rep.Skipped++
				rep.Warnings = append(rep.Warnings, err.Error())
				continue
			}
			return nil, rep, err
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, rep, err
	}
	rep.Records = len(items)
	rep.Loaded = true
	return items, rep, nil
}

func WriteCustomers(w io.Writer, customers []models.Customer) error {
	return writeLines(w, customers, encodeCustomer)
}

func ReadCustomers(r io.Reader) ([]models.Customer, Report, error) {
	return readLines(r, KindCustomers, customerFields, decodeCustomer)
}

func WriteAppointments(w io.Writer, appointments []models.Appointment) error {
	return writeLines(w, appointments, encodeAppointment)
}

func ReadAppointments(r io.Reader) ([]models.Appointment, Report, error) {
	return readLines(r, KindAppointments, appointmentFields, decodeAppointment)
}

func WriteServices(w io.Writer, services []models.Service) error {
	return writeLines(w, services, encodeService)
}

func ReadServices(r io.Reader) ([]models.Service, Report, error) {
	return readLines(r, KindServices, serviceFields, decodeService)
}

func WriteInvoices(w io.Writer, invoices []models.Invoice) error {
	return writeLines(w, invoices, encodeInvoice)
}

func ReadInvoices(r io.Reader) ([]models.Invoice, Report, error) {
	return readLines(r, KindInvoices, invoiceFields, decodeInvoice)
}
