package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actual-software/sms-bridge/pkg/clickatell"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authenticate and print the issued session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			ok, err := app.client.Auth(cmd.Context())
			if err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("authentication rejected by gateway")
			}

			fmt.Println(app.client.SessionID())

			return nil
		},
	}
}

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Keep the configured session valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			ok, err := app.client.Ping(cmd.Context())
			if err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("session rejected by gateway")
			}

			fmt.Println("OK")

			return nil
		},
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show remaining SMS credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			credit, err := app.client.Balance(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(credit)

			return nil
		},
	}
}

func sendCmd() *cobra.Command {
	var msg clickatell.Message

	cmd := &cobra.Command{
		Use:   "send --to <msisdn> --message <text>",
		Short: "Send an SMS message",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			apiMsgID, err := app.client.SendMessage(cmd.Context(), &msg)
			if err != nil {
				return err
			}

			fmt.Println(apiMsgID)

			return nil
		},
	}

	cmd.Flags().StringVar(&msg.To, "to", "", "Destination address (MSISDN)")
	cmd.Flags().StringVar(&msg.Body, "message", "", "Message body")
	cmd.Flags().StringVar(&msg.From, "from", "", "Sender id (numeric or alphanumeric)")
	cmd.Flags().StringVar(&msg.ClientMsgID, "climsgid", "", "Client-assigned message id")
	cmd.Flags().StringVar(&msg.MaxCredits, "max-credits", "", "Credit cap for this message")
	cmd.Flags().StringVar(&msg.Escalate, "escalate", "", "Escalation level")
	cmd.Flags().StringVar(&msg.Unicode, "unicode", "", "Unicode flag")
	cmd.Flags().StringVar(&msg.MO, "mo", "", "Opt in to mobile-originated replies")
	cmd.Flags().StringVar(&msg.UDH, "udh", "", "User-data-header for binary payloads")
	cmd.Flags().StringVar(&msg.Data, "data", "", "Binary payload")
	cmd.Flags().StringVar(&msg.Binary, "binary", "", "Binary payload flag")
	cmd.Flags().StringVar(&msg.Validity, "validity", "", "Validity period")
	cmd.Flags().StringVar(&msg.ScheduledTime, "scheduled-time", "", "Deferred delivery time")
	cmd.Flags().IntVar(&msg.Queue, "queue", 0, "Delivery queue (1-3)")
	cmd.Flags().StringVar(&msg.Type, "msg-type", "", "Message type (default SMS_TEXT)")

	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <apimsgid>",
		Short: "Query delivery status of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			ok, status, err := app.client.QueryMessage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("message status unavailable")
			}

			if text, known := clickatell.StatusText(status); known {
				fmt.Printf("%s (%s)\n", status, text)
			} else {
				fmt.Println(status)
			}

			return nil
		},
	}
}

func chargeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charge <apimsgid>",
		Short: "Look up the cost of a sent message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			charge, err := app.client.MessageCharge(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("id=%s charge=%s status=%s\n", charge.APIMsgID, charge.Charge, charge.Status)

			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <apimsgid>",
		Short: "Cancel a queued message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			result, err := app.client.DeleteMessage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if result.Credit != "" {
				fmt.Printf("credit=%s\n", result.Credit)
			} else {
				fmt.Printf("charge=%s status=%s\n", result.Charge, result.Status)
			}

			return nil
		},
	}
}

func coverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage <msisdn>",
		Short: "Check deliverability and minimum price for a destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			ok, charge, err := app.client.RouteCoverage(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("destination not routable")
			}

			fmt.Printf("routable, minimum charge %s\n", charge)

			return nil
		},
	}
}

func tokenPayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenpay <voucher>",
		Short: "Redeem a prepaid voucher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			value, err := app.client.TokenPay(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(value)

			return nil
		},
	}
}
