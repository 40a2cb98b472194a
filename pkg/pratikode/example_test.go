package pratikode_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

func ExampleComputeHash() {
	hash, err := pratikode.ComputeHash("my-secret", "W1", int64(15000), "TR330006100519786457841326", "order-1001")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
	// Output: 7f396c705190c46d7c9797f91c6f3343646e767c3554b9d60c5a668bd8b21dd0
}

func ExampleFormatAmount() {
	fmt.Println(pratikode.FormatAmount(decimal.RequireFromString("5.00")))
	fmt.Println(pratikode.FormatAmount(decimal.RequireFromString("0.50")))
	// Output:
	// 500
	// 50
}

func ExampleParseAmount() {
	amount, err := pratikode.ParseAmount(json.Number("150075"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(pratikode.FormatDecimal(amount))
	// Output: 1500.75
}

// Logs in, fetches the secret key and reads balances, IBANs and the last
// month of completed transactions.
func Example_basicUsage() {
	ctx := context.Background()
	client := pratikode.NewClient(&pratikode.ClientConfig{
		BaseURL:   "https://api.pratikode.com.tr",
		ChannelID: "your-channel-id",
		Timeout:   30 * time.Second,
	})

	if _, err := client.Login(ctx, &pratikode.LoginRequest{
		UserName:   "merchant",
		Password:   "password",
		DealerCode: "dealer",
	}); err != nil {
		log.Fatal(err)
	}
	if _, err := client.CreateSecretKey(ctx); err != nil {
		log.Fatal(err)
	}

	balance, err := client.FormattedBalance(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range balance.Wallets {
		fmt.Printf("%s: %s %s available\n", w.WalletID, pratikode.FormatDecimal(w.AvailableBalance), w.CurrencyCode)
	}

	ibans, err := client.IBANList(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(ibans.List("ibanList")), "saved IBANs")

	history, err := client.CompletedTransactions(ctx, pratikode.HistoryQuery{PageSize: pratikode.PageSizeTop25})
	if err != nil {
		log.Fatal(err)
	}
	for _, tx := range history.List("transactionList") {
		fmt.Println(tx["transactionAmountFormatted"], tx["description"])
	}
}

// Sends money to a bank account and confirms it with the one-time code. In
// the test environment the code is returned in the smscode header.
func Example_transferFlow() {
	ctx := context.Background()
	client := pratikode.NewClient(&pratikode.ClientConfig{
		BaseURL:   "https://api.pratikode.com.tr",
		ChannelID: "your-channel-id",
	})
	// Login and CreateSecretKey as in the basic example.

	amount := decimal.RequireFromString("150.00")
	resp, err := client.SendMoneyToBank(ctx, &pratikode.SendToBankRequest{
		SenderWalletID:            "your-wallet-id",
		ReceiverAccountHolderName: "Ayşe Yılmaz",
		ReceiverIBAN:              "TR330006100519786457841326",
		ReceiverNationalIDOrTaxNo: "12345678901",
		SenderDescription:         "invoice 17",
		Amount:                    amount,
		ExtTransactionID:          pratikode.NewExtTransactionID(),
	})
	if apiErr, ok := pratikode.IsAPIError(err); ok {
		log.Fatalf("transfer rejected: %s (code %s)", apiErr.Message, apiErr.Code)
	} else if err != nil {
		log.Fatal(err)
	}

	if resp.RequiresApproval() {
		_, err = client.ApproveSendMoney(ctx, &pratikode.ApproveRequest{
			SenderWalletID: "your-wallet-id",
			Amount:         amount,
			TransactionID:  resp.TransactionID(),
			PassCode:       resp.SideChannel()[pratikode.HeaderSMSCode],
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	status, err := client.TransactionStatus(ctx, &pratikode.StatusRequest{TransactionID: resp.TransactionID()})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(status.String("transactionStatus"))
}
