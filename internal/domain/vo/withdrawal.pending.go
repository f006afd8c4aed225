package vo

type PendingWithdrawal struct {
	AccountID      string `json:"account_id"`
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Action         string `json:"action"`
	Amount         string `json:"amount"`
	Status         string `json:"status"`
	Method         string `json:"method"`
	MobileNumber   string `json:"mobile_number"`
	GiftCardNumber string `json:"gift_card_number"`
	Date           string `json:"date"`
	RegisterDate   string `json:"register_date"`
}
