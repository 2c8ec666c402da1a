package services

import (
	"detailcrm/models"
	"detailcrm/utils"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// AppointmentBook is the part of the record store reminders read from.
type AppointmentBook interface {
	AppointmentsOn(date time.Time) []models.Appointment
	Customer(id string) (models.Customer, bool)
	ServiceNames(ids []string) []string
}

type ReminderService struct {
	book     AppointmentBook
	sender   Sender
	whatsApp bool
	template string
	log      logrus.FieldLogger
}

// NewReminderService sends through sender. With whatsApp set, customers
// whose phone is in international format are messaged on WhatsApp.
//
// template may use the placeholders [CustomerName], [Date], [Time],
// [Location] and [Services]. An empty template selects the built-in
// wording.
func NewReminderService(book AppointmentBook, sender Sender, whatsApp bool, template string, log logrus.FieldLogger) *ReminderService {
	return &ReminderService{book: book, sender: sender, whatsApp: whatsApp, template: template, log: log}
}

type ReminderResult struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// SendReminders messages every customer with a scheduled or confirmed
// appointment on the day after now.
func (s *ReminderService) SendReminders(now time.Time) ReminderResult {
	var res ReminderResult
	tomorrow := utils.BeginningOfDay(now).AddDate(0, 0, 1)

	for _, a := range s.book.AppointmentsOn(tomorrow) {
		if a.Status != models.AppointmentScheduled && a.Status != models.AppointmentConfirmed {
			continue
		}
		log := s.log.WithField("appointment", a.ID)

		customer, ok := s.book.Customer(a.CustomerID)
		if !ok {
			log.Warn("reminder skipped: customer not found")
			res.Skipped++
			continue
		}
		if !utils.ValidatePhone(customer.Phone) {
			log.WithField("phone", customer.Phone).Warn("reminder skipped: invalid phone")
			res.Skipped++
			continue
		}

		msg := s.message(customer, a)
		sid, err := s.sender.Send(msg)
		if err != nil {
			log.WithError(err).Error("reminder failed")
			res.Failed++
			continue
		}
		log.WithFields(logrus.Fields{"channel": msg.Channel, "sid": sid}).Info("reminder sent")
		res.Sent++
	}

	s.log.WithFields(logrus.Fields{
		"sent":    res.Sent,
		"skipped": res.Skipped,
		"failed":  res.Failed,
	}).Info("reminders processed")
	return res
}

func (s *ReminderService) message(c models.Customer, a models.Appointment) Message {
	msg := Message{To: utils.CleanPhone(c.Phone), Channel: ChannelSMS}
	if s.whatsApp && strings.HasPrefix(msg.To, "+") {
		msg.Channel = ChannelWhatsApp
	}

	names := s.book.ServiceNames(a.ServiceIDs)
	if s.template != "" {
		msg.Body = strings.NewReplacer(
			"[CustomerName]", c.FirstName,
			"[Date]", a.DateTime.Format("Mon Jan 2"),
			"[Time]", a.DateTime.Format("3:04 PM"),
			"[Location]", a.Location,
			"[Services]", strings.Join(names, ", "),
		).Replace(s.template)
		return msg
	}

	body := fmt.Sprintf("Hi %s, this is a reminder of your appointment tomorrow at %s",
		c.FirstName, a.DateTime.Format("3:04 PM"))
	if a.Location != "" {
		body += " at " + a.Location
	}
	if len(names) > 0 {
		body += " for " + strings.Join(names, ", ")
	}
	msg.Body = body + "."
	return msg
}
