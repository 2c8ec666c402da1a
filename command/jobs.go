package command

import (
	"detailcrm/mirror"
	"detailcrm/services"
	"detailcrm/utils"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var backupSuffix string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the data files next to themselves with a suffix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		suffix := backupSuffix
		if suffix == "" {
			suffix = services.BackupSuffix(time.Now())
		}
		if err := a.store.Backup(suffix); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), suffix)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add two sample customers with appointments and invoices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		a.store.AddSampleData()
		fmt.Fprintf(cmd.OutOrStdout(), "%d customers, %d appointments, %d invoices\n",
			len(a.store.Customers()), len(a.store.Appointments()), len(a.store.Invoices()))
		return nil
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send reminders for tomorrow's appointments now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		reminders := a.reminders()
		if reminders == nil {
			return errors.New("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER must be set")
		}
		res := reminders.SendReminders(time.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "sent %d, skipped %d, failed %d\n", res.Sent, res.Skipped, res.Failed)
		if res.Failed > 0 {
			return errors.Errorf("%d reminders failed", res.Failed)
		}
		return nil
	},
}

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copy all records into the PostgreSQL database at DB_URL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		db, err := mirror.Open(a.cfg.DBURL)
		if err != nil {
			return err
		}
		res, err := mirror.Sync(db, a.store.Snapshot())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "mirrored %d customers, %d appointments, %d services, %d invoices\n",
			res.Customers, res.Appointments, res.Services, res.Invoices)
		return nil
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash to use as OWNER_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := utils.HashPassword(args[0])
		if err != nil {
			return errors.Wrap(err, "hash password")
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Print a random value to use as JWT_SECRET",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), utils.GenerateJWTSecret())
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupSuffix, "suffix", "", "backup file suffix (default bak-<timestamp>)")
	rootCmd.AddCommand(backupCmd, seedCmd, remindCmd, mirrorCmd, hashPasswordCmd, secretCmd)
}
