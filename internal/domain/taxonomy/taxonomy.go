// Package taxonomy holds the static category → subcategory table that
// drives catalog generation. The table is ordered data, not logic: the
// generator walks it top to bottom so output is reproducible run to run.
package taxonomy

// Category is one business area and its ordered subcategories.
type Category struct {
	Name          string
	Subcategories []string
}

// Names returns the category names in table order.
func Names() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = c.Name
	}
	return out
}

// Categories is the reference taxonomy: 20 categories × 16 subcategories.
// Order matters — it fixes record order in the generated catalog.
var Categories = []Category{
	{Name: "Sales", Subcategories: []string{
		"Lead Generation", "Lead Qualification", "Proposal Writing", "Contract Negotiation",
		"Account Management", "Pipeline Management", "Forecasting", "Competitor Analysis",
		"Demo Scheduling", "Follow-up Automation", "Objection Handling", "Closing",
		"Upselling", "Cross-selling", "Territory Planning", "Sales Coaching",
	}},
	{Name: "Support", Subcategories: []string{
		"Tier 1 Support", "Tier 2 Support", "Tier 3 Support", "Ticket Routing",
		"Knowledge Base", "SLA Monitoring", "Escalation Management", "Chat Support",
		"Email Support", "Phone Support", "Feedback Collection", "Sentiment Analysis",
		"Refund Processing", "Returns Management", "Warranty Claims", "Technical Support",
	}},
	{Name: "HR", Subcategories: []string{
		"Recruitment", "Resume Screening", "Interview Scheduling", "Onboarding",
		"Offboarding", "Performance Reviews", "Training Coordination", "Benefits Administration",
		"Payroll Support", "Policy Guidance", "Compensation Analysis", "Diversity Tracking",
		"Employee Engagement", "Exit Interviews", "Talent Development", "Succession Planning",
	}},
	{Name: "Finance", Subcategories: []string{
		"Invoicing", "Expense Management", "Budget Planning", "Forecasting",
		"Reconciliation", "Fraud Detection", "Tax Advisory", "Audit Support",
		"Payroll Processing", "Collections", "Cash Flow Management", "Financial Reporting",
		"Investment Analysis", "Cost Optimization", "Risk Management", "Compliance",
	}},
	{Name: "Marketing", Subcategories: []string{
		"Content Creation", "Email Campaigns", "Social Media", "SEO",
		"SEM", "Influencer Marketing", "Brand Monitoring", "Campaign Analysis",
		"Persona Development", "Landing Page Optimization", "A/B Testing", "Market Research",
		"Competitive Intelligence", "Product Launches", "Event Planning", "PR Management",
	}},
	{Name: "Legal", Subcategories: []string{
		"Contract Review", "Compliance", "IP Management", "Privacy",
		"Employment Law", "Corporate Governance", "Litigation Support", "Due Diligence",
		"Policy Drafting", "Regulatory Analysis", "Terms of Service", "NDAs",
		"Document Management", "Legal Research", "Risk Assessment", "Dispute Resolution",
	}},
	{Name: "Operations", Subcategories: []string{
		"Process Optimization", "Workflow Automation", "Inventory Management", "Supply Chain",
		"Logistics", "Quality Control", "Vendor Management", "Facility Management",
		"Asset Tracking", "Maintenance Scheduling", "Capacity Planning", "Production Planning",
		"Resource Allocation", "Project Management", "Change Management", "Risk Management",
	}},
	{Name: "IT", Subcategories: []string{
		"Help Desk", "System Monitoring", "Incident Management", "Change Management",
		"Security Monitoring", "Backup Management", "User Provisioning", "License Management",
		"Network Monitoring", "Performance Tuning", "Disaster Recovery", "Code Review",
		"DevOps", "Cloud Management", "Database Administration", "Cybersecurity",
	}},
	{Name: "Product", Subcategories: []string{
		"Roadmap Planning", "Feature Prioritization", "User Research", "Beta Testing",
		"Product Analytics", "Feedback Analysis", "Competitive Analysis", "Go-to-Market",
		"Product Documentation", "Release Planning", "Requirements Gathering", "Wireframing",
		"A/B Testing", "User Onboarding", "Retention Analysis", "Churn Prediction",
	}},
	{Name: "Customer Success", Subcategories: []string{
		"Onboarding", "Account Health", "Usage Monitoring", "Renewals",
		"Expansion", "Churn Prevention", "Success Planning", "Business Reviews",
		"Training", "Adoption Tracking", "ROI Analysis", "Advocacy",
		"Upsell Identification", "Health Scoring", "Engagement Programs", "Feedback Loops",
	}},
	{Name: "Executive", Subcategories: []string{
		"Strategic Planning", "Board Reporting", "Risk Management", "KPI Tracking",
		"Decision Support", "Market Analysis", "Competitive Intelligence", "M&A Analysis",
		"Investor Relations", "Crisis Management", "Change Leadership", "Culture Building",
		"Innovation Management", "Partnership Development", "Stakeholder Communication", "Vision Setting",
	}},
	{Name: "Manufacturing", Subcategories: []string{
		"Production Scheduling", "Quality Assurance", "Equipment Maintenance", "Lean Manufacturing",
		"Six Sigma", "Root Cause Analysis", "Supplier Quality", "Process Engineering",
		"Safety Compliance", "Yield Optimization", "Waste Reduction", "Capacity Planning",
		"Bill of Materials", "Work Orders", "Inventory Control", "Shop Floor Management",
	}},
	{Name: "Retail", Subcategories: []string{
		"Inventory Planning", "Merchandising", "POS Support", "Loss Prevention",
		"Store Operations", "Customer Experience", "Visual Merchandising", "Pricing Strategy",
		"Promotions", "Loyalty Programs", "Store Performance", "Mall Management",
		"E-commerce Integration", "Omnichannel", "Returns Management", "Store Staffing",
	}},
	{Name: "Healthcare", Subcategories: []string{
		"Patient Scheduling", "Medical Records", "Claims Processing", "Billing",
		"HIPAA Compliance", "Clinical Documentation", "Prescription Management", "Telemedicine Support",
		"Patient Engagement", "Quality Reporting", "Care Coordination", "Population Health",
		"Revenue Cycle", "Credentialing", "Medical Coding", "Lab Results",
	}},
	{Name: "Education", Subcategories: []string{
		"Student Admissions", "Course Scheduling", "Grade Management", "Attendance Tracking",
		"Learning Management", "Student Support", "Career Counseling", "Alumni Relations",
		"Financial Aid", "Curriculum Planning", "Accreditation", "Assessment",
		"Parent Communication", "Campus Safety", "Facilities Booking", "Library Services",
	}},
	{Name: "Real Estate", Subcategories: []string{
		"Property Listing", "Lead Qualification", "Showing Scheduling", "Offer Management",
		"Contract Processing", "Tenant Screening", "Lease Management", "Maintenance Requests",
		"Rent Collection", "Property Valuation", "Market Analysis", "Compliance",
		"Insurance Claims", "HOA Management", "Mortgage Support", "Title Search",
	}},
	{Name: "Hospitality", Subcategories: []string{
		"Reservation Management", "Guest Services", "Housekeeping", "Front Desk",
		"Concierge", "Revenue Management", "Event Planning", "Catering",
		"Loyalty Programs", "Guest Feedback", "Maintenance", "Inventory",
		"Staff Scheduling", "Quality Assurance", "Online Reviews", "Channel Management",
	}},
	{Name: "Construction", Subcategories: []string{
		"Project Planning", "Bid Management", "Site Management", "Safety Compliance",
		"Equipment Scheduling", "Material Procurement", "Quality Inspections", "Change Orders",
		"Progress Tracking", "Budget Management", "Risk Assessment", "Permit Management",
		"Subcontractor Management", "Punch Lists", "As-Built Documentation", "Warranty Management",
	}},
	{Name: "Logistics", Subcategories: []string{
		"Route Optimization", "Fleet Management", "Shipment Tracking", "Warehouse Management",
		"Order Processing", "Carrier Selection", "Freight Auditing", "Returns Management",
		"Customs Documentation", "Delivery Scheduling", "Load Planning", "Driver Management",
		"Asset Tracking", "Inventory Optimization", "Cross-docking", "Last Mile Delivery",
	}},
	{Name: "Energy", Subcategories: []string{
		"Asset Management", "Meter Reading", "Billing", "Outage Management",
		"Grid Operations", "Renewable Integration", "Safety Compliance", "Regulatory Reporting",
		"Customer Service", "Energy Trading", "Demand Forecasting", "Emissions Tracking",
		"Equipment Maintenance", "Project Development", "Environmental Compliance", "Emergency Response",
	}},
}
