package response

type LedgerUpsertResponse struct {
	DaysWritten int `json:"daysWritten"`
}
