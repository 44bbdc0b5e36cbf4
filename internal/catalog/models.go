package catalog

// Severity grades an alert or secret finding.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Known reports whether s is one of the four graded severities.
func (s Severity) Known() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Tier is the subscription plan shown in the header.
type Tier string

const (
	TierFree       Tier = "Free"
	TierTwo        Tier = "Tier 2"
	TierEnterprise Tier = "Enterprise"
)

// WorkflowStatus is the run state of an AI workflow.
type WorkflowStatus string

const (
	WorkflowActive WorkflowStatus = "Active"
	WorkflowPaused WorkflowStatus = "Paused"
)

// User is the signed-in analyst profile.
type User struct {
	Name   string `yaml:"name" json:"name"`
	Tier   Tier   `yaml:"tier" json:"tier"`
	Avatar string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
}

// Stats holds the dashboard headline counters.
type Stats struct {
	BreachedAccounts int `yaml:"breached_accounts" json:"breached_accounts"`
	SecretsFound     int `yaml:"secrets_found" json:"secrets_found"`
}

// Alert is a monitoring agent hit.
type Alert struct {
	ID            int      `yaml:"id" json:"id"`
	Agent         string   `yaml:"agent" json:"agent"`
	Finding       string   `yaml:"finding" json:"finding"`
	IOC           string   `yaml:"ioc" json:"ioc"`
	Time          string   `yaml:"time" json:"time"`
	Severity      Severity `yaml:"severity" json:"severity"`
	PublishedDate string   `yaml:"published_date" json:"published_date"`
}

// BreachedAccount is a credential pair seen in a breach dataset.
type BreachedAccount struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Source       string `json:"source"`
	BreachDate   string `json:"breach_date"`
}

// Secret is a leaked credential or key.
type Secret struct {
	ID        int      `yaml:"id" json:"id"`
	Type      string   `yaml:"type" json:"type"`
	Value     string   `yaml:"value" json:"value"`
	Source    string   `yaml:"source" json:"source"`
	DateFound string   `yaml:"date_found" json:"date_found"`
	Severity  Severity `yaml:"severity" json:"severity"`
}

// Workflow is a saved monitoring workflow.
type Workflow struct {
	ID      int            `yaml:"id" json:"id"`
	Name    string         `yaml:"name" json:"name"`
	Status  WorkflowStatus `yaml:"status" json:"status"`
	Rules   int            `yaml:"rules" json:"rules"`
	LastRun string         `yaml:"last_run" json:"last_run"`
}

// HistoryEntry is a previously run search query.
type HistoryEntry struct {
	ID    int    `yaml:"id" json:"id"`
	Query string `yaml:"query" json:"query"`
	Time  string `yaml:"time" json:"time"`
}
