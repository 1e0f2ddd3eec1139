package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/recargaexpress/ms-go-recharges/app/repository"
	"github.com/recargaexpress/ms-go-recharges/app/service"

	_ "github.com/go-sql-driver/mysql"
)

var fixPaymentOptionsCmd = &cobra.Command{
	Use:   "fix-payment-options",
	Short: "Repair plans whose stored payment options are invalid",
	Long:  "Reset plans whose payment_options column holds NULL, an empty string or 'undefined' back to an empty list.",
	Run:   runFixPaymentOptions,
}

func init() {
	rootCmd.AddCommand(fixPaymentOptionsCmd)
}

func runFixPaymentOptions(_ *cobra.Command, _ []string) {
	db := mustOpenDatabase()
	defer db.Close()

	planService := service.NewPlanService(repository.NewPlanRepository(db))

	ids, err := planService.RepairPaymentOptions(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to repair payment options")
	}

	if len(ids) == 0 {
		logrus.Info("No invalid payment options found")
		return
	}

	for _, id := range ids {
		logrus.WithField("plan_id", id).Info("Repaired plan payment options")
	}
	logrus.WithField("count", len(ids)).Info("Payment options repaired")
}
