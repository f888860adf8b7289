package models

// Supported payment methods.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentInstaPay = "instapay"
	PaymentVFCash   = "vf-cash"
)

// CardInfo carries the card fields for method "card". Card details are only
// checked for presence; charging is handled outside this system.
type CardInfo struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// PaymentSelection is a tagged union keyed by Method. Only the variant
// matching the method carries data: Card for "card", ReceiptRef for the
// receipt-based methods (instapay, vf-cash).
type PaymentSelection struct {
	Method     string    `json:"method"`
	Card       *CardInfo `json:"card,omitempty"`
	ReceiptRef string    `json:"receiptRef,omitempty"`
}

// RequiresReceipt reports whether the method is settled by an uploaded
// transfer receipt.
func (p PaymentSelection) RequiresReceipt() bool {
	return p.Method == PaymentInstaPay || p.Method == PaymentVFCash
}

// Masked returns a copy safe to echo to clients: the card number keeps
// only its last four digits and the CVV is dropped.
func (p PaymentSelection) Masked() PaymentSelection {
	if p.Card == nil {
		return p
	}
	card := *p.Card
	if n := len(card.CardNumber); n > 4 {
		card.CardNumber = "**** **** **** " + card.CardNumber[n-4:]
	}
	card.CVV = ""
	p.Card = &card
	return p
}

// Complete reports whether the selection carries everything its method needs.
func (p PaymentSelection) Complete() bool {
	switch p.Method {
	case PaymentCard:
		return p.Card != nil &&
			p.Card.CardNumber != "" &&
			p.Card.CardHolder != "" &&
			p.Card.ExpiryDate != "" &&
			p.Card.CVV != ""
	case PaymentInstaPay, PaymentVFCash:
		return p.ReceiptRef != ""
	default:
		return p.Method != ""
	}
}
