package pratikode

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TransferRecord describes one money-movement call and its outcome.
type TransferRecord struct {
	Endpoint         string
	ExtTransactionID string
	TransactionID    string
	AmountMinor      int64
	CurrencyCode     string
	Success          bool
	ResponseCode     string
	NextStep         string
	CreatedAt        time.Time
}

// Recorder persists TransferRecords, e.g. for reconciliation.
type Recorder interface {
	RecordTransfer(ctx context.Context, rec *TransferRecord) error
}

// record hands the outcome of a money-movement call to the configured
// Recorder. Transport-level failures are not recorded: nothing is known about
// the provider's view of the transfer.
func (c *Client) record(ctx context.Context, rec *TransferRecord, resp Response, err error) {
	if c.recorder == nil {
		return
	}

	if err != nil {
		apiErr, ok := IsAPIError(err)
		if !ok {
			return
		}
		resp = apiErr.Response
	} else {
		rec.Success = true
		rec.NextStep = resp.NextStep()
	}
	rec.ResponseCode = resp.String("ResponseCode")
	if id := resp.TransactionID(); id != "" {
		rec.TransactionID = id
	}
	rec.CreatedAt = c.now().UTC()

	if rerr := c.recorder.RecordTransfer(ctx, rec); rerr != nil {
		c.logger.Warn("failed to record transfer",
			zap.String("endpoint", rec.Endpoint),
			zap.String("ext_transaction_id", rec.ExtTransactionID),
			zap.Error(rerr))
	}
}
