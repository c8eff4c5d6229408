package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one outbound partner API call or one inbound status
// decision. Request and response bodies are stored after sensitive-field
// masking; writes to the audit trail never fail the operation they describe.
type AuditEntry struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the entry.
	AccountID    *uuid.UUID // Account the call was made for, when known.
	OrderNumber  string     // Waybill the call concerned, when one applies.
	Endpoint     string     // Relative endpoint path, e.g. "order/createOrder".
	Method       string     // HTTP method used.
	RequestBody  string     // Masked request payload.
	ResponseBody string     // Masked response payload.
	StatusCode   int        // HTTP status of the final attempt. Zero on transport failure.
	Success      bool       // Whether the call was treated as successful.
	ErrorMessage string     // Truncated error description for failed calls.
	TokenTail    string     // Last characters of the bearer token used, if any.
	DurationMS   int64      // Wall-clock duration of the call in milliseconds.
	CreatedAt    time.Time  // Timestamp of when the entry was recorded.
}
