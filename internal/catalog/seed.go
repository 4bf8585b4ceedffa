package catalog

// SeedSolutions returns the built-in demo catalog used by the dev seed route
// and the offline demo. IDs are stable so match runs over the seed set are
// reproducible.
func SeedSolutions() []Solution {
	return []Solution{
		{
			ID:                  "wf-invoice-ocr",
			Type:                TypeWorkflow,
			Name:                "Invoice OCR & Data Extraction",
			Description:         "Extracts totals, line items and vendor data from incoming invoices and posts them to the accounting system.",
			Category:            "Finance & Accounting",
			Subcategories:       []string{"Accounts Payable"},
			Tags:                []string{"invoice", "ocr", "accounting", "data-extraction"},
			Difficulty:          DifficultyBeginner,
			SetupTime:           SetupQuick,
			Deployment:          DeployCloud,
			Status:              StatusActive,
			AutomationPotential: 85,
			EstimatedROI:        Range{Min: 250, Max: 400, Unit: "%"},
			TimeToValue:         "1-2 weeks",
			Priority:            PriorityHigh,
			Pricing:             PricingFreemium,
			Requirements: []Requirement{
				{Category: "technical", Items: []string{"Accounting system API access"}, Importance: "important"},
			},
			UseCases: []UseCase{
				{Title: "AP invoice intake", Description: "Automate supplier invoice capture end to end.", Industry: "Finance"},
			},
			Integrations: []Integration{
				{Name: "QuickBooks", Type: "accounting", Required: false},
				{Name: "Gmail", Type: "email", Required: true},
			},
			Metrics:          Metrics{UsageCount: 820, SuccessRate: 97.5, AvgExecutionTimeMS: 5400, UserRating: 4.6, ReviewCount: 128, PerformanceScore: 88},
			Workflow:         &WorkflowMeta{NodeCount: 14, TriggerType: "email", Complexity: "low"},
			DocumentationURL: "https://docs.example.com/workflows/invoice-ocr",
			DemoURL:          "https://demo.example.com/invoice-ocr",
		},
		{
			ID:                  "wf-email-triage",
			Type:                TypeWorkflow,
			Name:                "Support Email Triage",
			Description:         "Classifies inbound support email by topic and urgency and routes it to the right queue.",
			Category:            "Customer Support",
			Tags:                []string{"email", "triage", "routing", "support"},
			Difficulty:          DifficultyIntermediate,
			SetupTime:           SetupMedium,
			Deployment:          DeployCloud,
			Status:              StatusActive,
			AutomationPotential: 75,
			EstimatedROI:        Range{Min: 150, Max: 300, Unit: "%"},
			TimeToValue:         "2-4 weeks",
			Priority:            PriorityMedium,
			Pricing:             PricingPaid,
			Metrics:             Metrics{UsageCount: 410, SuccessRate: 94.0, UserRating: 4.2, ReviewCount: 57, PerformanceScore: 81},
			Workflow:            &WorkflowMeta{NodeCount: 22, TriggerType: "webhook", Complexity: "medium"},
			DocumentationURL:    "https://docs.example.com/workflows/email-triage",
		},
		{
			ID:                  "wf-lead-enrichment",
			Type:                TypeWorkflow,
			Name:                "CRM Lead Enrichment",
			Description:         "Enriches new CRM leads with firmographic data and scores them for sales follow-up.",
			Category:            "Marketing & Sales",
			Tags:                []string{"crm", "leads", "enrichment", "sales"},
			Difficulty:          DifficultyIntermediate,
			SetupTime:           SetupMedium,
			Deployment:          DeployHybrid,
			Status:              StatusActive,
			AutomationPotential: 70,
			EstimatedROI:        Range{Min: 180, Max: 320, Unit: "%"},
			TimeToValue:         "2-4 weeks",
			Priority:            PriorityMedium,
			Pricing:             PricingPaid,
			Integrations: []Integration{
				{Name: "HubSpot", Type: "crm", Required: true},
			},
			Metrics:  Metrics{UsageCount: 265, SuccessRate: 92.5, UserRating: 4.1, ReviewCount: 34, PerformanceScore: 77},
			Workflow: &WorkflowMeta{NodeCount: 18, TriggerType: "schedule", Complexity: "medium"},
		},
		{
			ID:                  "wf-report-pipeline",
			Type:                TypeWorkflow,
			Name:                "Weekly KPI Report Pipeline",
			Description:         "Aggregates metrics from multiple sources into a weekly KPI report and distributes it.",
			Category:            "Data Analysis",
			Tags:                []string{"reporting", "kpi", "etl", "dashboard"},
			Difficulty:          DifficultyAdvanced,
			SetupTime:           SetupLong,
			Deployment:          DeployLocal,
			Status:              StatusBeta,
			AutomationPotential: 65,
			EstimatedROI:        Range{Min: 120, Max: 250, Unit: "%"},
			TimeToValue:         "1-2 months",
			Priority:            PriorityLow,
			Pricing:             PricingEnterprise,
			Metrics:             Metrics{UsageCount: 48, SuccessRate: 88.0, UserRating: 3.9, ReviewCount: 8, PerformanceScore: 70},
			Workflow:            &WorkflowMeta{NodeCount: 35, TriggerType: "schedule", Complexity: "high"},
		},
		{
			ID:                  "wf-onboarding-docs",
			Type:                TypeWorkflow,
			Name:                "Employee Onboarding Paperwork",
			Description:         "Generates, sends and tracks signature status for new-hire paperwork.",
			Category:            "HR & Recruiting",
			Tags:                []string{"onboarding", "hr", "documents", "signatures"},
			Difficulty:          DifficultyBeginner,
			SetupTime:           SetupQuick,
			Deployment:          DeployCloud,
			Status:              StatusActive,
			AutomationPotential: 80,
			EstimatedROI:        Range{Min: 200, Max: 350, Unit: "%"},
			TimeToValue:         "1-2 weeks",
			Priority:            PriorityHigh,
			Pricing:             PricingFreemium,
			Metrics:             Metrics{UsageCount: 530, SuccessRate: 96.0, UserRating: 4.5, ReviewCount: 72, PerformanceScore: 85},
			Workflow:            &WorkflowMeta{NodeCount: 11, TriggerType: "form", Complexity: "low"},
			DocumentationURL:    "https://docs.example.com/workflows/onboarding-docs",
		},
		{
			ID:                  "agent-finance-analyst",
			Type:                TypeAgent,
			Name:                "Finance Analyst Agent",
			Description:         "Answers ad-hoc finance questions over spreadsheets and the data warehouse.",
			Category:            "Finance & Accounting",
			Tags:                []string{"finance", "analysis", "sql", "spreadsheets"},
			Difficulty:          DifficultyIntermediate,
			SetupTime:           SetupMedium,
			Deployment:          DeployCloud,
			Status:              StatusActive,
			AutomationPotential: 70,
			EstimatedROI:        Range{Min: 150, Max: 300, Unit: "%"},
			TimeToValue:         "1-2 weeks",
			Priority:            PriorityMedium,
			Pricing:             PricingPaid,
			Metrics:             Metrics{UsageCount: 190, SuccessRate: 91.0, UserRating: 4.3, ReviewCount: 26, PerformanceScore: 79},
			Agent: &AgentMeta{
				Model:        "gpt-4o",
				Provider:     "openai",
				Capabilities: []string{"data_analysis", "sql", "file_io", "summarization"},
				Domains:      []string{"finance", "accounting"},
			},
			DocumentationURL: "https://docs.example.com/agents/finance-analyst",
			DemoURL:          "https://demo.example.com/finance-analyst",
		},
		{
			ID:                  "agent-content-writer",
			Type:                TypeAgent,
			Name:                "Content Writer Agent",
			Description:         "Drafts marketing copy and blog posts from briefs and web research.",
			Category:            "Marketing & Sales",
			Tags:                []string{"content", "copywriting", "marketing"},
			Difficulty:          DifficultyBeginner,
			SetupTime:           SetupQuick,
			Deployment:          DeployCloud,
			Status:              StatusActive,
			AutomationPotential: 60,
			EstimatedROI:        Range{Min: 100, Max: 220, Unit: "%"},
			TimeToValue:         "1-2 weeks",
			Priority:            PriorityLow,
			Pricing:             PricingFreemium,
			Metrics:             Metrics{UsageCount: 340, SuccessRate: 89.0, UserRating: 4.0, ReviewCount: 44, PerformanceScore: 74},
			Agent: &AgentMeta{
				Model:        "claude-3.5-sonnet",
				Provider:     "anthropic",
				Capabilities: []string{"web_search", "summarization"},
				Domains:      []string{"marketing"},
			},
		},
		{
			ID:                  "agent-support-triage",
			Type:                TypeAgent,
			Name:                "Support Triage Agent",
			Description:         "Reads inbound tickets, drafts replies and escalates by sentiment and urgency.",
			Category:            "Customer Support",
			Tags:                []string{"support", "triage", "sentiment"},
			Difficulty:          DifficultyIntermediate,
			SetupTime:           SetupMedium,
			Deployment:          DeployCloud,
			Status:              StatusBeta,
			AutomationPotential: 65,
			EstimatedROI:        Range{Min: 120, Max: 260, Unit: "%"},
			TimeToValue:         "2-4 weeks",
			Priority:            PriorityMedium,
			Pricing:             PricingPaid,
			Metrics:             Metrics{UsageCount: 95, SuccessRate: 90.0, UserRating: 4.1, ReviewCount: 12, PerformanceScore: 76},
			Agent: &AgentMeta{
				Model:        "gpt-4o-mini",
				Provider:     "openai",
				Capabilities: []string{"email_send", "sentiment_analysis", "web_search"},
				Domains:      []string{"customer-support", "operations"},
			},
		},
	}
}
