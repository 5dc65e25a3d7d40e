package dto

// AutoAddRequest carries free text to be turned into records.
// AccountID and CurrencyCode seed every draft; the parser may override the currency.
type AutoAddRequest struct {
	Text              string `json:"text" binding:"required,max=4000"`
	AccountID         string `json:"accountID" binding:"required"`
	DefaultCategoryID string `json:"defaultCategoryID"`
	CurrencyCode      string `json:"currencyCode" binding:"required,len=3"`
}

// AutoAddRejection explains why one suggestion did not become a record.
type AutoAddRejection struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// AutoAddResponse lists the records created from the text and the suggestions that were rejected.
type AutoAddResponse struct {
	Created  []TransactionResponse `json:"created"`
	Rejected []AutoAddRejection    `json:"rejected"`
}
