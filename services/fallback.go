// services/fallback.go - Fixed local insight content
package services

// FallbackIdeas is served whenever the upstream provider fails or
// returns unusable content.
func FallbackIdeas() []TrendingIdea {
	return []TrendingIdea{
		{
			Title:               "AI-Powered Personal Finance Assistant",
			Description:         "An intelligent app that analyzes spending patterns, provides personalized budgeting advice, and automates savings based on user behavior and financial goals.",
			TargetMarket:        "Young professionals aged 25-35",
			PotentialChallenges: "Banking API integration and trust building",
			EstimatedMarketSize: "$1.2B by 2025",
			Category:            "Fintech",
		},
		{
			Title:               "Remote Team Collaboration VR Platform",
			Description:         "A virtual reality platform for remote teams to collaborate in immersive 3D workspaces, conduct meetings, and brainstorm together.",
			TargetMarket:        "Remote-first companies and distributed teams",
			PotentialChallenges: "VR hardware adoption",
			EstimatedMarketSize: "$800M by 2026",
			Category:            "SaaS",
		},
		{
			Title:               "Sustainable Local Marketplace",
			Description:         "A hyperlocal marketplace connecting consumers with sustainable, locally-sourced products from farmers, artisans, and eco-friendly businesses.",
			TargetMarket:        "Environmentally conscious consumers",
			PotentialChallenges: "Vendor recruitment and delivery logistics",
			EstimatedMarketSize: "$600M and growing",
			Category:            "E-commerce",
		},
		{
			Title:               "AI-Driven Mental Health Companion",
			Description:         "An AI-powered mental health app with personalized therapy techniques, mood tracking, and escalation to licensed therapists when needed.",
			TargetMarket:        "Adults seeking mental health support",
			PotentialChallenges: "Regulatory compliance and clinical validation",
			EstimatedMarketSize: "$2.4B by 2025",
			Category:            "HealthTech",
		},
		{
			Title:               "Smart Home Energy Optimizer",
			Description:         "IoT-enabled system that learns household energy usage patterns and automatically optimizes consumption to cut bills and carbon footprint.",
			TargetMarket:        "Homeowners interested in sustainability",
			PotentialChallenges: "Hardware costs and utility partnerships",
			EstimatedMarketSize: "$950M by 2026",
			Category:            "CleanTech",
		},
		{
			Title:               "Micro-Learning Career Platform",
			Description:         "Professional development platform delivering 5-minute daily skill sessions with gamification, peer challenges, and AI-powered career recommendations.",
			TargetMarket:        "Working professionals seeking career growth",
			PotentialChallenges: "Content curation at scale",
			EstimatedMarketSize: "$1.8B by 2025",
			Category:            "EdTech",
		},
	}
}

// FallbackNews is the local substitute for upstream startup news.
func FallbackNews() []NewsItem {
	return []NewsItem{
		{
			Title:    "Seed funding rebounds as AI infrastructure startups attract record rounds",
			Summary:  "Early-stage investment is concentrating on developer tooling, inference optimization, and vertical AI applications.",
			Source:   "IdeaHub Digest",
			Category: "Funding",
		},
		{
			Title:    "Climate tech remains resilient amid broader venture slowdown",
			Summary:  "Grid software, battery recycling, and industrial decarbonization continue to close competitive rounds.",
			Source:   "IdeaHub Digest",
			Category: "Climate",
		},
		{
			Title:    "Solo founders increasingly launch with AI-assisted development",
			Summary:  "Smaller founding teams are shipping production software faster, shifting what seed investors expect at pitch time.",
			Source:   "IdeaHub Digest",
			Category: "Trends",
		},
	}
}

// FallbackSuggestions is the local substitute for idea-specific advice.
func FallbackSuggestions() []string {
	return []string{
		"Validate demand with a landing page and a waitlist before building",
		"Interview at least 20 people in your target market about the problem",
		"Scope an MVP around the single most painful workflow",
		"Map the top three competitors and write down your wedge against each",
		"Pick one revenue model to test first; add others only after signal",
		"Define 2-3 activation metrics and instrument them from day one",
	}
}
