package controllers

import (
	"detailcrm/models"
	"detailcrm/store"
	"detailcrm/utils"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const topN = 5

// ReportSummary covers the invoices created in [From, To].
type ReportSummary struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	Days         int               `json:"days"`
	Invoices     int               `json:"invoices"`
	Revenue      float64           `json:"revenue"`     // paid
	Outstanding  float64           `json:"outstanding"` // pending
	Cancelled    int               `json:"cancelled"`
	TopServices  []ServiceSummary  `json:"topServices"`
	TopCustomers []CustomerSummary `json:"topCustomers"`
}

type ServiceSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CustomerSummary struct {
	Name     string  `json:"name"`
	Invoices int     `json:"invoices"`
	Spent    float64 `json:"spent"`
}

// GetReport summarizes invoicing between the from and to dates, the
// current month by default.
func (h *Handler) GetReport(c *gin.Context) {
	now := h.now()
	from, ok := dateParam(c, "from")
	if !ok {
		return
	}
	to, ok := dateParam(c, "to")
	if !ok {
		return
	}
	if from.IsZero() {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	}
	if to.IsZero() {
		to = from.AddDate(0, 1, -1)
	}

	invoices := h.store.FilterInvoices(store.InvoiceFilter{From: from, To: to})
	c.JSON(http.StatusOK, h.summarize(from, to, invoices))
}

func (h *Handler) summarize(from, to time.Time, invoices []models.Invoice) ReportSummary {
	sum := ReportSummary{
		From:     from.Format("2006-01-02"),
		To:       to.Format("2006-01-02"),
		Days:     utils.DaysBetween(from, to) + 1,
		Invoices: len(invoices),
	}
	serviceCounts := map[string]int{}
	customers := map[string]*CustomerSummary{}

	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoicePaid:
			sum.Revenue += inv.TotalAmount
		case models.InvoicePending:
			sum.Outstanding += inv.TotalAmount
		case models.InvoiceCancelled:
			sum.Cancelled++
			continue
		}
		for _, name := range h.store.ServiceNames(inv.ServiceIDs) {
			serviceCounts[name]++
		}
		cs, ok := customers[inv.CustomerID]
		if !ok {
			cs = &CustomerSummary{Name: h.store.CustomerName(inv.CustomerID)}
			customers[inv.CustomerID] = cs
		}
		cs.Invoices++
		if inv.Status == models.InvoicePaid {
			cs.Spent = models.RoundCents(cs.Spent + inv.TotalAmount)
		}
	}
	sum.Revenue = models.RoundCents(sum.Revenue)
	sum.Outstanding = models.RoundCents(sum.Outstanding)

	sum.TopServices = make([]ServiceSummary, 0, len(serviceCounts))
	for name, n := range serviceCounts {
		sum.TopServices = append(sum.TopServices, ServiceSummary{Name: name, Count: n})
	}
	sort.Slice(sum.TopServices, func(i, j int) bool {
		a, b := sum.TopServices[i], sum.TopServices[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})

	sum.TopCustomers = make([]CustomerSummary, 0, len(customers))
	for _, cs := range customers {
		sum.TopCustomers = append(sum.TopCustomers, *cs)
	}
	sort.Slice(sum.TopCustomers, func(i, j int) bool {
		a, b := sum.TopCustomers[i], sum.TopCustomers[j]
		if a.Spent != b.Spent {
			return a.Spent > b.Spent
		}
		return a.Name < b.Name
	})

	if len(sum.TopServices) > topN {
		sum.TopServices = sum.TopServices[:topN]
	}
	if len(sum.TopCustomers) > topN {
		sum.TopCustomers = sum.TopCustomers[:topN]
	}
	return sum
}
