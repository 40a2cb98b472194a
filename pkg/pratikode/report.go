package pratikode

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EndpointTransactionHistory = "merchantapi/money-transaction-history"
	EndpointTransactionSummary = "merchantapi/money-transaction-summary"
)

// dateLayout is the provider's dd-mm-yyyy date format.
const dateLayout = "02-01-2006"

const reportWindow = 30 * 24 * time.Hour

// DayStart formats t as the first second of its day in the history format.
func DayStart(t time.Time) string {
	return t.Format(dateLayout) + "T00:00:00"
}

// DayEnd formats t as the last second of its day in the history format.
func DayEnd(t time.Time) string {
	return t.Format(dateLayout) + "T23:59:59"
}

// StatusFilter returns a pointer suitable for HistoryQuery.TransactionStatus.
func StatusFilter(s TransactionStatus) *TransactionStatus {
	return &s
}

// TransactionHistory lists wallet movements. A nil query uses the defaults:
// completed transactions of the last 30 days, first page of 100.
func (c *Client) TransactionHistory(ctx context.Context, q *HistoryQuery) (Response, error) {
	if q == nil {
		q = &HistoryQuery{}
	}
	now := c.now()

	pageSize := q.PageSize
	if pageSize == "" {
		pageSize = PageSizeTop100
	}
	if !pageSize.IsValid() {
		return nil, invalidPageSize()
	}

	status := TransactionStatusCompleted
	if q.TransactionStatus != nil {
		status = *q.TransactionStatus
	}
	if status != TransactionStatusAll && !status.IsValid() {
		return nil, &ValidationError{Field: "transactionStatus", Reason: "is not a known transaction status"}
	}

	typeID := q.TransactionTypeID
	if typeID == "" {
		typeID = TransactionTypeAll
	}
	if !typeID.IsValid() {
		return nil, &ValidationError{Field: "transactionTypeId", Reason: "is not a known transaction type"}
	}

	body := map[string]any{
		"thisStep":          "Money_Transaction_History",
		"sDate":             orDefault(q.StartDate, DayStart(now.Add(-reportWindow))),
		"lDate":             orDefault(q.EndDate, DayEnd(now)),
		"transactionTypeId": string(typeID),
		"transactionStatus": string(status),
		"description":       q.Description,
		"minAmount":         orDefault(q.MinAmount, "0"),
		"maxAmount":         orDefault(q.MaxAmount, "0"),
		"currentPage":       pageNumber(q.CurrentPage),
		"qSize":             string(pageSize),
	}
	if q.WalletID != "" {
		body["walletId"] = q.WalletID
	}

	resp, err := c.Execute(ctx, EndpointTransactionHistory, body)
	if err != nil {
		return nil, err
	}

	for _, tx := range resp.List("transactionList") {
		formatMinorField(tx, "transactionAmount")
		formatMinorField(tx, "transactionFeeAmount")
		formatMinorField(tx, "nextAmount")
	}
	return resp, nil
}

// TransactionSummary returns daily incoming, outgoing and end-of-day totals.
func (c *Client) TransactionSummary(ctx context.Context, q *SummaryQuery) (Response, error) {
	if q == nil {
		q = &SummaryQuery{}
	}
	now := c.now()

	pageSize := q.PageSize
	if pageSize == "" {
		pageSize = PageSizeTop10
	}
	if !pageSize.IsValid() {
		return nil, invalidPageSize()
	}

	resp, err := c.Execute(ctx, EndpointTransactionSummary, map[string]any{
		"thisStep":    "Money_Transaction_Summary",
		"sDate":       orDefault(q.StartDate, now.Add(-reportWindow).Format(dateLayout)),
		"lDate":       orDefault(q.EndDate, now.Format(dateLayout)),
		"currentPage": pageNumber(q.CurrentPage),
		"qSize":       string(pageSize),
	})
	if err != nil {
		return nil, err
	}

	for _, day := range resp.List("data") {
		formatMinorField(day, "incomingTransactionAmount")
		formatMinorField(day, "outgoingTransactionAmount")
		formatMinorField(day, "endOfDayBalance")
	}
	return resp, nil
}

// HistoryByDateRange lists transactions between the start of start's day and
// the end of end's day. Other filters are taken from q.
func (c *Client) HistoryByDateRange(ctx context.Context, start, end time.Time, q HistoryQuery) (Response, error) {
	q.StartDate = DayStart(start)
	q.EndDate = DayEnd(end)
	return c.TransactionHistory(ctx, &q)
}

// HistoryByAmountRange lists transactions whose amount lies between
// minAmount and maxAmount.
func (c *Client) HistoryByAmountRange(ctx context.Context, minAmount, maxAmount decimal.Decimal, q HistoryQuery) (Response, error) {
	q.MinAmount = strconv.FormatInt(FormatAmount(minAmount), 10)
	q.MaxAmount = strconv.FormatInt(FormatAmount(maxAmount), 10)
	return c.TransactionHistory(ctx, &q)
}

// SearchByDescription lists transactions matching description.
func (c *Client) SearchByDescription(ctx context.Context, description string, q HistoryQuery) (Response, error) {
	q.Description = description
	return c.TransactionHistory(ctx, &q)
}

// BlockedTransactions lists transactions held by the provider.
func (c *Client) BlockedTransactions(ctx context.Context, q HistoryQuery) (Response, error) {
	return c.historyWithStatus(ctx, TransactionStatusBlocked, q)
}

// CompletedTransactions lists completed transactions.
func (c *Client) CompletedTransactions(ctx context.Context, q HistoryQuery) (Response, error) {
	return c.historyWithStatus(ctx, TransactionStatusCompleted, q)
}

// PendingTransactions lists transactions still waiting to be processed.
func (c *Client) PendingTransactions(ctx context.Context, q HistoryQuery) (Response, error) {
	return c.historyWithStatus(ctx, TransactionStatusPending, q)
}

func (c *Client) historyWithStatus(ctx context.Context, status TransactionStatus, q HistoryQuery) (Response, error) {
	q.TransactionStatus = &status
	return c.TransactionHistory(ctx, &q)
}

func pageNumber(page int) string {
	if page <= 0 {
		page = 1
	}
	return strconv.Itoa(page)
}

func invalidPageSize() error {
	return &ValidationError{Field: "qSize", Reason: "must be one of top10, top25, top50, top100, all"}
}
