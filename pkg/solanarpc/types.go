package solanarpc

import (
	"encoding/json"
	"fmt"
)

// Commitment is the ledger consistency level of a query or write.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

var commitmentRank = map[Commitment]int{
	CommitmentProcessed: 1,
	CommitmentConfirmed: 2,
	CommitmentFinalized: 3,
}

func (c Commitment) IsValid() bool {
	_, ok := commitmentRank[c]
	return ok
}

// AtLeast reports whether c is the same or a stronger level than other.
func (c Commitment) AtLeast(other Commitment) bool {
	return commitmentRank[c] >= commitmentRank[other]
}

// RPCError is the error object of a JSON-RPC response.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

type contextValue[T any] struct {
	Context struct {
		Slot uint64 `json:"slot"`
	} `json:"context"`
	Value T `json:"value"`
}

// SignatureStatus is one entry of getSignatureStatuses.
type SignatureStatus struct {
	Slot               uint64          `json:"slot"`
	Confirmations      *uint64         `json:"confirmations"`
	Err                json.RawMessage `json:"err"`
	ConfirmationStatus Commitment      `json:"confirmationStatus"`
}

// Failed reports whether the transaction was recorded with an execution error.
func (s SignatureStatus) Failed() bool {
	return len(s.Err) > 0 && string(s.Err) != "null"
}

// ParsedTransaction is the jsonParsed form of getTransaction.
type ParsedTransaction struct {
	Slot        uint64           `json:"slot"`
	BlockTime   *int64           `json:"blockTime"`
	Meta        *TransactionMeta `json:"meta"`
	Transaction struct {
		Signatures []string `json:"signatures"`
		Message    struct {
			Instructions []ParsedInstruction `json:"instructions"`
		} `json:"message"`
	} `json:"transaction"`
}

// Instructions returns the top level instructions in ledger order.
func (t *ParsedTransaction) Instructions() []ParsedInstruction {
	return t.Transaction.Message.Instructions
}

type TransactionMeta struct {
	Err json.RawMessage `json:"err"`
	Fee uint64          `json:"fee"`
}

// ParsedInstruction is an instruction as reported by the jsonParsed encoding.
// Parsed is empty when the ledger has no parser for the program.
type ParsedInstruction struct {
	Program     string          `json:"program"`
	ProgramID   string          `json:"programId"`
	Parsed      json.RawMessage `json:"parsed"`
	Accounts    []string        `json:"accounts,omitempty"`
	Data        string          `json:"data,omitempty"`
	StackHeight *int            `json:"stackHeight"`
}

// IsParsed reports whether the ledger decoded the instruction.
func (i ParsedInstruction) IsParsed() bool {
	return len(i.Parsed) > 0 && string(i.Parsed) != "null"
}

// TokenAccountBalance is one entry of getTokenLargestAccounts.
type TokenAccountBalance struct {
	Address        string `json:"address"`
	Amount         string `json:"amount"`
	Decimals       uint8  `json:"decimals"`
	UIAmountString string `json:"uiAmountString"`
}

// AccountInfo is the jsonParsed form of getAccountInfo.
type AccountInfo struct {
	Lamports   uint64          `json:"lamports"`
	Owner      string          `json:"owner"`
	Executable bool            `json:"executable"`
	Data       json.RawMessage `json:"data"`
}

// ParsedAccountData is the decoded account data of a program the ledger has a parser for.
type ParsedAccountData struct {
	Program string `json:"program"`
	Space   uint64 `json:"space"`
	Parsed  struct {
		Type string          `json:"type"`
		Info json.RawMessage `json:"info"`
	} `json:"parsed"`
}

// ParsedData returns the decoded account data. Raw (base64) data reports false.
func (a *AccountInfo) ParsedData() (*ParsedAccountData, bool) {
	if len(a.Data) == 0 || a.Data[0] != '{' {
		return nil, false
	}
	var data ParsedAccountData
	if err := json.Unmarshal(a.Data, &data); err != nil {
		return nil, false
	}
	return &data, true
}
