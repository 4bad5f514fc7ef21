package httpapi

// Request/response payloads for the v1 HTTP API. Only the fields the client
// reads are declared; query answers stay opaque (json.RawMessage) because
// the client makes no promises about query semantics.

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User describes the authenticated account as the server reports it.
type User struct {
	Username string `json:"username"`
}

// Database is a named database on the server.
type Database struct {
	Name string `json:"name"`
}

type databasesResponse struct {
	Databases []Database `json:"databases"`
}

type openTransactionRequest struct {
	DatabaseName    string          `json:"databaseName"`
	TransactionType TransactionKind `json:"transactionType"`
}

type openTransactionResponse struct {
	TransactionID string `json:"transactionId"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type oneShotQueryRequest struct {
	Query           string          `json:"query"`
	DatabaseName    string          `json:"databaseName"`
	TransactionType TransactionKind `json:"transactionType"`
	Commit          bool            `json:"commit"`
}
