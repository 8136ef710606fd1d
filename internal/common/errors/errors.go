// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidAssessmentInput ErrorCode = "INVALID_ASSESSMENT_INPUT"
	ErrCodeInvalidPurchaseRequest ErrorCode = "INVALID_PURCHASE_REQUEST"
	ErrCodeInvalidSponsorship     ErrorCode = "INVALID_SPONSORSHIP_AMOUNT"
	ErrCodeInvalidRevenueInput    ErrorCode = "INVALID_REVENUE_INPUT"
	ErrCodeParseError             ErrorCode = "PARSE_ERROR"

	ErrCodeModulePricingNotFound ErrorCode = "MODULE_PRICING_NOT_FOUND"
	ErrCodePricingLookupFailed   ErrorCode = "PRICING_LOOKUP_FAILED"

	ErrCodeRevenueSplitInvariant ErrorCode = "REVENUE_SPLIT_INVARIANT_VIOLATED"
	ErrCodeDuplicatePayment      ErrorCode = "DUPLICATE_PAYMENT"
	ErrCodeLedgerWriteFailed     ErrorCode = "LEDGER_WRITE_FAILED"

	ErrCodeProposalSendFailed ErrorCode = "PROPOSAL_SEND_FAILED"
	ErrCodeEventPublishFailed ErrorCode = "EVENT_PUBLISH_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeWorkflowEngine           ErrorCode = "WORKFLOW_ENGINE_ERROR"
	ErrCodeTimeout                  ErrorCode = "TIMEOUT_ERROR"
	ErrCodeInternal                 ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidAssessmentInputError creates a non-retryable survey validation error.
func NewInvalidAssessmentInputError(details string) *StandardError {
	return newError(ErrCodeInvalidAssessmentInput, "Assessment input is invalid", details, false)
}

// NewInvalidPurchaseRequestError creates a non-retryable checkout validation error.
func NewInvalidPurchaseRequestError(details string) *StandardError {
	return newError(ErrCodeInvalidPurchaseRequest, "Purchase request is invalid", details, false)
}

// NewInvalidSponsorshipError creates a non-retryable sponsorship amount error.
func NewInvalidSponsorshipError(details string) *StandardError {
	return newError(ErrCodeInvalidSponsorship, "Sponsorship amount is invalid", details, false)
}

// NewInvalidRevenueInputError creates a non-retryable error for malformed sale data.
func NewInvalidRevenueInputError(details string) *StandardError {
	return newError(ErrCodeInvalidRevenueInput, "Revenue distribution input is invalid", details, false)
}

// NewParseError creates a non-retryable error for unreadable job variables.
func NewParseError(err error) *StandardError {
	return newError(ErrCodeParseError, "Failed to parse job variables", err.Error(), false)
}

// NewModulePricingNotFoundError creates a non-retryable lookup miss.
func NewModulePricingNotFoundError(moduleID string) *StandardError {
	return newError(ErrCodeModulePricingNotFound, "Module pricing not found",
		fmt.Sprintf("moduleId: %s", moduleID), false)
}

// NewPricingLookupFailedError creates a retryable store error.
func NewPricingLookupFailedError(moduleID string, err error) *StandardError {
	return newError(ErrCodePricingLookupFailed, "Module pricing lookup failed",
		fmt.Sprintf("moduleId: %s, error: %s", moduleID, err.Error()), true)
}

// NewRevenueSplitInvariantError flags a split that does not conserve the sale total.
func NewRevenueSplitInvariantError(paymentID string, err error) *StandardError {
	return newError(ErrCodeRevenueSplitInvariant, "Revenue split does not conserve the payment total",
		fmt.Sprintf("paymentId: %s, error: %s", paymentID, err.Error()), false)
}

// NewDuplicatePaymentError creates a non-retryable error for a payment credited twice.
func NewDuplicatePaymentError(paymentID string) *StandardError {
	return newError(ErrCodeDuplicatePayment, "Payment already distributed",
		fmt.Sprintf("paymentId: %s", paymentID), false)
}

// NewLedgerWriteFailedError creates a retryable wallet ledger error.
func NewLedgerWriteFailedError(paymentID string, err error) *StandardError {
	return newError(ErrCodeLedgerWriteFailed, "Wallet ledger write failed",
		fmt.Sprintf("paymentId: %s, error: %s", paymentID, err.Error()), true)
}

// NewProposalSendFailedError creates a retryable email delivery error.
func NewProposalSendFailedError(recipient string, err error) *StandardError {
	return newError(ErrCodeProposalSendFailed, "Proposal delivery failed",
		fmt.Sprintf("recipient: %s, error: %s", recipient, err.Error()), true)
}

// NewEventPublishFailedError creates a retryable event publication error.
func NewEventPublishFailedError(event string, err error) *StandardError {
	return newError(ErrCodeEventPublishFailed, "Event publication failed",
		fmt.Sprintf("event: %s, error: %s", event, err.Error()), true)
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnectionFailed, "Database connection error", err.Error(), true)
}

// NewWorkflowEngineError wraps a failed Zeebe gateway call.
func NewWorkflowEngineError(operation string, err error, retryable bool) *StandardError {
	return newError(ErrCodeWorkflowEngine, fmt.Sprintf("Zeebe operation '%s' failed", operation), err.Error(), retryable)
}

// Generic constructors

func NewTimeoutError(service string, err error) *StandardError {
	return newError(ErrCodeTimeout, fmt.Sprintf("Service '%s' timeout", service), err.Error(), true)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), false)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes. They are identical
// except where several internal codes share one boundary event.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInvalidAssessmentInput:   "INVALID_ASSESSMENT_INPUT",
	ErrCodeInvalidPurchaseRequest:   "INVALID_PURCHASE_REQUEST",
	ErrCodeInvalidSponsorship:       "INVALID_PURCHASE_REQUEST",
	ErrCodeInvalidRevenueInput:      "INVALID_REVENUE_INPUT",
	ErrCodeParseError:               "PARSE_ERROR",
	ErrCodeModulePricingNotFound:    "MODULE_PRICING_NOT_FOUND",
	ErrCodePricingLookupFailed:      "PRICING_LOOKUP_FAILED",
	ErrCodeRevenueSplitInvariant:    "REVENUE_SPLIT_INVARIANT_VIOLATED",
	ErrCodeDuplicatePayment:         "DUPLICATE_PAYMENT",
	ErrCodeLedgerWriteFailed:        "LEDGER_WRITE_FAILED",
	ErrCodeProposalSendFailed:       "PROPOSAL_SEND_FAILED",
	ErrCodeEventPublishFailed:       "EVENT_PUBLISH_FAILED",
	ErrCodeDatabaseConnectionFailed: "DATABASE_CONNECTION_FAILED",
	ErrCodeWorkflowEngine:           "WORKFLOW_ENGINE_ERROR",
	ErrCodeTimeout:                  "TIMEOUT_ERROR",
	ErrCodeInternal:                 "INTERNAL_ERROR",
}

// GetRetryCount returns the recommended retry count for an error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodePricingLookupFailed,
		ErrCodeLedgerWriteFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeWorkflowEngine,
		ErrCodeProposalSendFailed,
		ErrCodeEventPublishFailed:
		return 3

	case ErrCodeTimeout:
		return 2

	default:
		return 0 // business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "PRICING"):
		return "PRICING"
	case strings.Contains(codeStr, "REVENUE") || strings.Contains(codeStr, "LEDGER") || strings.Contains(codeStr, "PAYMENT"):
		return "REVENUE"
	case strings.Contains(codeStr, "DATABASE"):
		return "DATABASE"
	case strings.Contains(codeStr, "PROPOSAL") || strings.Contains(codeStr, "EVENT"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
