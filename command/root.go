// Package command holds the detailcrm CLI. The root command serves the
// HTTP API over the data directory; sub-commands run the maintenance
// jobs once and exit.
//
//	detailcrm [-e .env]              # serve the API
//	detailcrm backup [--suffix s]
//	detailcrm seed
//	detailcrm remind
//	detailcrm mirror
//	detailcrm hash-password <password>
package command

import (
	"context"
	"detailcrm/config"
	"detailcrm/controllers"
	"detailcrm/flatfile"
	"detailcrm/routes"
	"detailcrm/services"
	"detailcrm/store"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:   "detailcrm",
	Short: "Customer, appointment and invoice records for an auto-detailing business",
	Long: `detailcrm keeps the customers, appointments, service catalog and
invoices of an auto-detailing business in pipe-delimited text files and
serves them over a JSON API. Reminders and backups run on a schedule.`,
	SilenceUsage: true,
	RunE:         serve,
}

// app is what every command needs: settings, a logger and the loaded
// records.
type app struct {
	cfg   config.Config
	log   *logrus.Logger
	store *store.Store
}

func setup() (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	log, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	opts := []store.Option{store.WithLogger(log)}
	if cfg.Persist {
		dir, err := flatfile.OpenDir(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, store.WithPersister(dir))
		log.WithField("dir", dir.Path()).Info("using data directory")
	} else {
		log.Warn("persistence disabled, changes are kept in memory only")
	}

	st, err := store.New(opts...)
	if err != nil {
		return nil, err
	}
	st.Load()
	return &app{cfg: cfg, log: log, store: st}, nil
}

// reminders returns nil when Twilio is not configured.
func (a *app) reminders() *services.ReminderService {
	if !a.cfg.TwilioConfigured() {
		return nil
	}
	sender := services.NewTwilioSender(a.cfg.TwilioAccountSID, a.cfg.TwilioAuthToken,
		a.cfg.TwilioPhoneNumber, a.cfg.TwilioWhatsAppNumber)
	return services.NewReminderService(a.store, sender, sender.WhatsApp(), a.cfg.ReminderTemplate, a.log)
}

func (a *app) scheduler(reminders *services.ReminderService) (*services.Scheduler, error) {
	sched := services.NewScheduler(a.log)
	if a.cfg.RemindersEnabled {
		if reminders == nil {
			a.log.Warn("reminders enabled but Twilio is not configured")
		} else if err := sched.AddReminders(a.cfg.ReminderSchedule, reminders); err != nil {
			return nil, err
		}
	}
	if a.cfg.Persist && a.cfg.BackupSchedule != "" {
		if err := sched.AddBackups(a.cfg.BackupSchedule, a.store); err != nil {
			return nil, err
		}
	}
	return sched, nil
}

func serve(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	if a.cfg.SampleData && len(a.store.Customers()) == 0 {
		a.store.AddSampleData()
		a.log.Info("added sample data")
	}

	reminders := a.reminders()
	sched, err := a.scheduler(reminders)
	if err != nil {
		return err
	}

	if a.log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	h := controllers.NewHandler(a.store, a.cfg, reminders, a.log)
	r := routes.SetupRouter(h, a.cfg, a.log)
	for _, route := range r.Routes() {
		a.log.Debugf("%-6s %s", route.Method, route.Path)
	}

	srv := &http.Server{Addr: ":" + a.cfg.Port, Handler: r}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start()
	errc := make(chan error, 1)
	go func() {
		a.log.WithField("addr", srv.Addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		<-sched.Stop().Done()
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	<-sched.Stop().Done()
	if err := a.store.Save(); err != nil && !errors.Is(err, store.ErrNoPersister) {
		a.log.WithError(err).Error("final save failed")
	}
	return errors.Wrap(err, "shutdown")
}

// Execute runs the command named on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env", "file with environment settings")
}
