// internal/workers/communication/send-proposal/validation.go
package sendproposal

import "marketplace-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"companyName", "contactEmail", "quote", "roi"},
		Properties: map[string]validation.Property{
			"companyName": {
				Type:        "string",
				Description: "Company the proposal is addressed to",
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(255),
			},
			"contactEmail": {
				Type:        "string",
				Description: "Recipient email address",
				Format:      "email",
				MaxLength:   validation.IntPtr(255),
			},
			"quote": {
				Type:     "object",
				Required: []string{"tier", "basePrice"},
			},
			"roi": {
				Type:     "object",
				Required: []string{"totalSavings"},
			},
			"recommendedModules": {
				Type:  "array",
				Items: &validation.Property{Type: "string"},
			},
		},
	}
}
