// pkg/registry/schema.go
package registry

type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

// Activity describes one BPMN service task the worker manager serves.
type Activity struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"displayName"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	TaskType    string      `json:"taskType"`
	Status      string      `json:"status"`
	InputSchema interface{} `json:"inputSchema,omitempty"`
	ErrorCodes  []string    `json:"errorCodes"`
	Timeout     string      `json:"timeout"`
	Tags        []string    `json:"tags,omitempty"`
}
