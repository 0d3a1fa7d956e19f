package entity

import "time"

// AppendProgress tracks how far the script of one transaction got.
// LastCompletedStep is -1 until the first item lands.
type AppendProgress struct {
	TxID              string    `json:"txid"`
	Asset             string    `json:"asset"`
	LastCompletedStep int       `json:"lastCompletedStep"`
	TotalSteps        int       `json:"totalSteps"`
	LastSignature     string    `json:"lastSignature,omitempty"`
	Attempts          int       `json:"attempts"`
	Completed         bool      `json:"completed"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NextStep returns the index of the first script item that has not landed yet.
func (p AppendProgress) NextStep() int {
	return p.LastCompletedStep + 1
}
