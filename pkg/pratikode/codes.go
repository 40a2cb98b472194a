package pratikode

// PaymentType classifies a transfer for the receiving bank.
type PaymentType string

const (
	PaymentTypeOther                PaymentType = "99"
	PaymentTypeHousingRent          PaymentType = "01"
	PaymentTypeWorkplaceRent        PaymentType = "02"
	PaymentTypeOtherRent            PaymentType = "03"
	PaymentTypeECommerce            PaymentType = "04"
	PaymentTypeEmployee             PaymentType = "05"
	PaymentTypeCommercial           PaymentType = "06"
	PaymentTypeIndividual           PaymentType = "07"
	PaymentTypeCommercialInvestment PaymentType = "08"
	PaymentTypeIndividualInvestment PaymentType = "09"
	PaymentTypeEducation            PaymentType = "10"
	PaymentTypeMembershipFee        PaymentType = "11"
)

var paymentTypeNames = map[PaymentType]string{
	PaymentTypeOther:                "Diğer",
	PaymentTypeHousingRent:          "Konut Kirası",
	PaymentTypeWorkplaceRent:        "İşyeri Kirası",
	PaymentTypeOtherRent:            "Diğer Kiralar",
	PaymentTypeECommerce:            "E-Ticaret Ödemesi",
	PaymentTypeEmployee:             "Çalışan Ödemesi",
	PaymentTypeCommercial:           "Ticari Ödeme",
	PaymentTypeIndividual:           "Bireysel Ödeme",
	PaymentTypeCommercialInvestment: "Ticari Finansal Yatırım",
	PaymentTypeIndividualInvestment: "Bireysel Finansal Yatırım",
	PaymentTypeEducation:            "Eğitim Ödemesi",
	PaymentTypeMembershipFee:        "Aidat Ödemesi",
}

// TransactionStatus filters the transaction history.
type TransactionStatus string

const (
	TransactionStatusPending         TransactionStatus = "0"
	TransactionStatusCompleted       TransactionStatus = "1"
	TransactionStatusRejected        TransactionStatus = "2"
	TransactionStatusCancelled       TransactionStatus = "3"
	TransactionStatusTechnicalCancel TransactionStatus = "4"
	TransactionStatusSending         TransactionStatus = "5"
	TransactionStatusBlocked         TransactionStatus = "6"

	// TransactionStatusAll is accepted by the history endpoint only.
	TransactionStatusAll TransactionStatus = ""
)

var transactionStatusNames = map[TransactionStatus]string{
	TransactionStatusPending:         "Bekleyen İşlemler",
	TransactionStatusCompleted:       "Tamamlanan İşlemler",
	TransactionStatusRejected:        "Reddedilen İşlemler",
	TransactionStatusCancelled:       "İptal",
	TransactionStatusTechnicalCancel: "Teknik İptal (fast iptali)",
	TransactionStatusSending:         "Gönderliyor",
	TransactionStatusBlocked:         "Blokeye Alınmış",
}

// TransactionType identifies the kind of wallet movement.
type TransactionType string

const (
	TransactionTypeAll                  TransactionType = "0"
	TransactionTypeIndividualTopup      TransactionType = "2"
	TransactionTypeIndividualCashback   TransactionType = "3"
	TransactionTypeIndividualRefund     TransactionType = "4"
	TransactionTypeIndividualWithdrawal TransactionType = "5"
	TransactionTypeCorporateTopup       TransactionType = "6"
	TransactionTypeCorporateCashback    TransactionType = "7"
	TransactionTypeCorporateRefund      TransactionType = "8"
	TransactionTypeCorporateWithdrawal  TransactionType = "9"
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeAll:                  "Tüm işlemleri listele",
	TransactionTypeIndividualTopup:      "Bireysel Bakiye Yükleme",
	TransactionTypeIndividualCashback:   "Bireysel CashBack",
	TransactionTypeIndividualRefund:     "Bireysel İade",
	TransactionTypeIndividualWithdrawal: "Bireysel Para Çıkışı",
	TransactionTypeCorporateTopup:       "Kurumsal Cüzdana Bakiye Yükleme",
	TransactionTypeCorporateCashback:    "Kurumsal CashBack",
	TransactionTypeCorporateRefund:      "Kurumsal İade",
	TransactionTypeCorporateWithdrawal:  "Kurumsal Cüzdandan Para Çıkışı",
}

// PageSize is the report page size enumeration.
type PageSize string

const (
	PageSizeTop10  PageSize = "top10"
	PageSizeTop25  PageSize = "top25"
	PageSizeTop50  PageSize = "top50"
	PageSizeTop100 PageSize = "top100"
	PageSizeAll    PageSize = "all"
)

// PageSizes lists every accepted page size.
var PageSizes = []PageSize{PageSizeTop10, PageSizeTop25, PageSizeTop50, PageSizeTop100, PageSizeAll}

const unknownName = "Unknown"

// IsValid reports whether p is a known payment type.
func (p PaymentType) IsValid() bool {
	_, ok := paymentTypeNames[p]
	return ok
}

// Name returns the provider label for p, or "Unknown".
func (p PaymentType) Name() string {
	if name, ok := paymentTypeNames[p]; ok {
		return name
	}
	return unknownName
}

// IsValid reports whether s is a known status. TransactionStatusAll is not.
func (s TransactionStatus) IsValid() bool {
	_, ok := transactionStatusNames[s]
	return ok
}

// Name returns the provider label for s, or "Unknown".
func (s TransactionStatus) Name() string {
	if name, ok := transactionStatusNames[s]; ok {
		return name
	}
	return unknownName
}

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

// Name returns the provider label for t, or "Unknown".
func (t TransactionType) Name() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return unknownName
}

// IsValid reports whether p is one of PageSizes.
func (p PageSize) IsValid() bool {
	for _, s := range PageSizes {
		if s == p {
			return true
		}
	}
	return false
}

// PaymentTypes returns a copy of the payment type table.
func PaymentTypes() map[PaymentType]string {
	return copyTable(paymentTypeNames)
}

// TransactionStatuses returns a copy of the transaction status table.
func TransactionStatuses() map[TransactionStatus]string {
	return copyTable(transactionStatusNames)
}

// TransactionTypes returns a copy of the transaction type table.
func TransactionTypes() map[TransactionType]string {
	return copyTable(transactionTypeNames)
}

func copyTable[K comparable](m map[K]string) map[K]string {
	out := make(map[K]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
