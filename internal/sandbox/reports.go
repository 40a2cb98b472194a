package sandbox

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/pratikode/pratikode-go/pkg/pratikode"
)

const (
	historyLayout = "02-01-2006T15:04:05"
	summaryLayout = "02-01-2006"
)

var pageSizes = map[pratikode.PageSize]int{
	pratikode.PageSizeTop10:  10,
	pratikode.PageSizeTop25:  25,
	pratikode.PageSizeTop50:  50,
	pratikode.PageSizeTop100: 100,
	pratikode.PageSizeAll:    0,
}

type page struct {
	size    int
	current int
}

func parsePage(body request) (page, bool) {
	size, ok := pageSizes[pratikode.PageSize(body.str("qSize"))]
	if !ok {
		return page{}, false
	}
	current, ok := body.integer("currentPage")
	if !ok || current < 1 {
		current = 1
	}
	return page{size: size, current: int(current)}, true
}

// bounds returns the slice bounds of the page within n items.
func (p page) bounds(n int) (int, int) {
	if p.size == 0 {
		return 0, n
	}
	start := (p.current - 1) * p.size
	if start > n {
		start = n
	}
	end := start + p.size
	if end > n {
		end = n
	}
	return start, end
}

func (p page) total(n int) int {
	if p.size == 0 || n == 0 {
		return 1
	}
	return (n + p.size - 1) / p.size
}

// TransactionHistory handles POST /merchantapi/money-transaction-history
func (s *Server) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}

	from, errFrom := time.Parse(historyLayout, body.str("sDate"))
	to, errTo := time.Parse(historyLayout, body.str("lDate"))
	if errFrom != nil || errTo != nil {
		respondFailf(w, CodeInvalidRequest, "sDate and lDate must be dd-mm-yyyyTHH:MM:SS")
		return
	}
	pg, ok := parsePage(body)
	if !ok {
		respondFailf(w, CodeInvalidRequest, "unknown qSize")
		return
	}

	typeID := pratikode.TransactionType(body.str("transactionTypeId"))
	status := pratikode.TransactionStatus(body.str("transactionStatus"))
	minAmount, _ := body.integer("minAmount")
	maxAmount, _ := body.integer("maxAmount")
	description := strings.ToLower(body.str("description"))

	s.mu.Lock()
	defer s.mu.Unlock()

	walletID := body.str("walletId")
	if walletID == "" {
		walletID = s.merchant.walletID
	}

	var matched []*transaction
	for _, t := range s.transactions {
		switch {
		case !t.involves(walletID):
		case t.createdAt.Before(from) || t.createdAt.After(to):
		case typeID != "" && typeID != pratikode.TransactionTypeAll && typeID != t.typeID:
		case status != pratikode.TransactionStatusAll && status != t.status:
		case minAmount > 0 && t.amount < minAmount:
		case maxAmount > 0 && t.amount > maxAmount:
		case description != "" && !strings.Contains(strings.ToLower(t.description), description):
		default:
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].createdAt.After(matched[j].createdAt)
	})

	start, end := pg.bounds(len(matched))
	list := make([]map[string]any, 0, end-start)
	for _, t := range matched[start:end] {
		list = append(list, t.toMap())
	}

	respondOK(w, map[string]any{
		"transactionList": list,
		"totalCount":      len(matched),
		"currentPage":     pg.current,
		"totalPage":       pg.total(len(matched)),
	})
}

// TransactionSummary handles POST /merchantapi/money-transaction-summary.
// Completed transactions of the merchant wallet are grouped per day.
func (s *Server) TransactionSummary(w http.ResponseWriter, r *http.Request) {
	body, err := decodeRequest(r)
	if err != nil {
		respondBadRequest(w, err)
		return
	}

	from, errFrom := time.Parse(summaryLayout, body.str("sDate"))
	to, errTo := time.Parse(summaryLayout, body.str("lDate"))
	if errFrom != nil || errTo != nil {
		respondFailf(w, CodeInvalidRequest, "sDate and lDate must be dd-mm-yyyy")
		return
	}
	to = to.Add(24*time.Hour - time.Second)
	pg, ok := parsePage(body)
	if !ok {
		respondFailf(w, CodeInvalidRequest, "unknown qSize")
		return
	}

	type daySummary struct {
		day      time.Time
		incoming int64
		outgoing int64
		balance  int64
		last     time.Time
	}

	s.mu.Lock()
	walletID := s.merchant.walletID
	days := map[string]*daySummary{}
	for _, t := range s.transactions {
		if t.status != pratikode.TransactionStatusCompleted || !t.involves(walletID) {
			continue
		}
		if t.completedAt.Before(from) || t.completedAt.After(to) {
			continue
		}
		key := t.completedAt.Format(summaryLayout)
		d, ok := days[key]
		if !ok {
			y, m, dd := t.completedAt.Date()
			d = &daySummary{day: time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)}
			days[key] = d
		}
		if t.incoming(walletID) {
			d.incoming += t.amount
		} else {
			d.outgoing += t.amount
		}
		if !t.completedAt.Before(d.last) {
			d.last = t.completedAt
			d.balance = t.nextAmount
		}
	}
	s.mu.Unlock()

	ordered := make([]*daySummary, 0, len(days))
	for _, d := range days {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].day.After(ordered[j].day)
	})

	start, end := pg.bounds(len(ordered))
	data := make([]map[string]any, 0, end-start)
	for _, d := range ordered[start:end] {
		data = append(data, map[string]any{
			"date":                      d.day.Format(summaryLayout),
			"incomingTransactionAmount": d.incoming,
			"outgoingTransactionAmount": d.outgoing,
			"endOfDayBalance":           d.balance,
		})
	}

	respondOK(w, map[string]any{
		"data":        data,
		"totalCount":  len(ordered),
		"currentPage": pg.current,
		"totalPage":   pg.total(len(ordered)),
	})
}
