// Package catalog holds the deterministic fallback data used whenever AI
// generation is unavailable: a hand-curated candidate pool and a keyword
// responder for chat. Both paths guarantee the engine always has an answer.
package catalog

import (
	"github.com/rgarhwal/intern-advisor/internal/intern"
)

// pool is the curated mix of government and private-based opportunities.
// It is ranked exactly like an AI-sourced pool, so users still get a
// skill-personalized, quota-balanced result with AI fully disabled.
var pool = []*intern.Candidate{
	{
		Company:     "ISRO",
		Title:       "Space Technology Research Intern",
		Category:    intern.CategoryGovernment,
		Sector:      "Space Technology & Research",
		Skills:      []string{"Programming", "Research", "Data Analysis", "MATLAB", "Python"},
		Duration:    "6 Months",
		Location:    "Bangalore/Thiruvananthapuram",
		Stipend:     "₹25,000/month",
		Description: "Join India's premier space agency and work on satellite technology and space missions.",
	},
	{
		Company:     "DRDO",
		Title:       "Defence Technology Intern",
		Category:    intern.CategoryGovernment,
		Sector:      "Defence Research & Development",
		Skills:      []string{"Research", "Engineering", "Technical Analysis", "Problem Solving", "Innovation"},
		Duration:    "4 Months",
		Location:    "Delhi/Pune/Hyderabad",
		Stipend:     "₹22,000/month",
		Description: "Work on advanced defence technologies and contribute to national security research projects.",
	},
	{
		Company:     "NITI Aayog",
		Title:       "Policy Research & Analysis Intern",
		Category:    intern.CategoryGovernment,
		Sector:      "Public Policy & Governance",
		Skills:      []string{"Research", "Policy Analysis", "Data Interpretation", "Report Writing", "Communication"},
		Duration:    "4 Months",
		Location:    "New Delhi",
		Stipend:     "₹20,000/month",
		Description: "Research policy solutions and contribute to national development strategies.",
	},
	{
		Company:     "Indian Railways",
		Title:       "Railway Operations & Technology Intern",
		Category:    intern.CategoryGovernment,
		Sector:      "Transportation & Logistics",
		Skills:      []string{"Operations Management", "Logistics", "Engineering", "Project Management", "Data Analysis"},
		Duration:    "5 Months",
		Location:    "Multiple Cities",
		Stipend:     "₹18,000/month",
		Description: "Learn operations of the world's largest railway network.",
	},
	{
		Company:     "CSIR Labs",
		Title:       "Scientific Research Intern",
		Category:    intern.CategoryGovernment,
		Sector:      "Scientific Research",
		Skills:      []string{"Research", "Data Analysis", "Laboratory Skills", "Scientific Writing", "Innovation"},
		Duration:    "6 Months",
		Location:    "Multiple CSIR Centers",
		Stipend:     "₹24,000/month",
		Description: "Work with India's premier scientific research organization.",
	},
	{
		Company:     "Ministry of Electronics & IT",
		Title:       "Digital India Technology Intern",
		Category:    intern.CategoryGovernment,
		Sector:      "Digital Governance",
		Skills:      []string{"Programming", "Digital Literacy", "Web Development", "Data Management", "Cybersecurity"},
		Duration:    "4 Months",
		Location:    "New Delhi/Pune",
		Stipend:     "₹21,000/month",
		Description: "Contribute to the nation's digital transformation and e-governance initiatives.",
	},
	{
		Company:     "BARC",
		Title:       "Nuclear Technology Research Intern",
		Category:    intern.CategoryGovernment,
		Sector:      "Nuclear Research",
		Skills:      []string{"Engineering", "Research", "Data Analysis", "Safety Protocols", "Technical Documentation"},
		Duration:    "5 Months",
		Location:    "Mumbai/Kalpakkam",
		Stipend:     "₹26,000/month",
		Description: "Work on nuclear technology and contribute to clean energy research.",
	},
	{
		Company:     "TCS (Tata Consultancy Services)",
		Title:       "Software Development Intern",
		Category:    intern.CategoryPrivate,
		Sector:      "IT Services",
		Skills:      []string{"Java", "Python", "Programming", "Problem Solving", "Communication"},
		Duration:    "3 Months",
		Location:    "Multiple Cities",
		Stipend:     "₹30,000/month",
		Description: "Work on enterprise software projects with India's largest IT company.",
	},
	{
		Company:     "Infosys",
		Title:       "Digital Innovation Intern",
		Category:    intern.CategoryPrivate,
		Sector:      "IT Consulting",
		Skills:      []string{"Digital Technologies", "Innovation", "Cloud Computing", "Problem Solving", "Teamwork"},
		Duration:    "3 Months",
		Location:    "Bangalore/Pune",
		Stipend:     "₹28,000/month",
		Description: "Work on digital transformation projects with global impact.",
	},
	{
		Company:     "Wipro",
		Title:       "Technology Solutions Intern",
		Category:    intern.CategoryPrivate,
		Sector:      "IT Services",
		Skills:      []string{"Cloud Computing", "DevOps", "Programming", "Agile", "Learning Agility"},
		Duration:    "4 Months",
		Location:    "Pune/Bangalore",
		Stipend:     "₹32,000/month",
		Description: "Gain hands-on experience with cloud technologies and modern development practices.",
	},
	{
		Company:     "Microsoft India",
		Title:       "Technology Trainee",
		Category:    intern.CategoryPrivate,
		Sector:      "Technology",
		Skills:      []string{"Programming", "AI/ML", "Cloud Platforms", "Data Science", "Innovation"},
		Duration:    "3 Months",
		Location:    "Hyderabad/Bangalore",
		Stipend:     "₹40,000/month",
		Description: "Work with Microsoft technologies and AI platforms.",
	},
	{
		Company:     "Google India",
		Title:       "Software Engineering Intern",
		Category:    intern.CategoryPrivate,
		Sector:      "Technology",
		Skills:      []string{"Programming", "Algorithms", "Data Structures", "Problem Solving", "Software Design"},
		Duration:    "4 Months",
		Location:    "Bangalore/Gurgaon",
		Stipend:     "₹50,000/month",
		Description: "Work with world-class engineers on products used by billions.",
	},
	{
		Company:     "Amazon India",
		Title:       "SDE Intern",
		Category:    intern.CategoryPrivate,
		Sector:      "E-commerce Technology",
		Skills:      []string{"Programming", "System Design", "AWS", "Data Structures", "Problem Solving"},
		Duration:    "3 Months",
		Location:    "Bangalore/Hyderabad",
		Stipend:     "₹45,000/month",
		Description: "Work on systems handling millions of customers and learn cloud technologies.",
	},
	{
		Company:     "HDFC Bank",
		Title:       "Banking Technology Intern",
		Category:    intern.CategoryPrivate,
		Sector:      "Financial Services",
		Skills:      []string{"Financial Technology", "Data Analysis", "Banking Operations", "Communication", "Excel"},
		Duration:    "3 Months",
		Location:    "Mumbai/Pune",
		Stipend:     "₹25,000/month",
		Description: "Experience digital banking transformation with India's leading private bank.",
	},
	{
		Company:     "Accenture",
		Title:       "Technology Consulting Intern",
		Category:    intern.CategoryPrivate,
		Sector:      "IT Consulting",
		Skills:      []string{"Business Analysis", "Technology Consulting", "Communication", "Problem Solving", "Project Management"},
		Duration:    "4 Months",
		Location:    "Multiple Cities",
		Stipend:     "₹27,000/month",
		Description: "Work with global clients on technology transformation projects.",
	},
}

// Pool returns a fresh copy of the fallback candidates. Callers mutate match
// scores per request, so the shared entries are never handed out directly.
func Pool() []*intern.Candidate {
	out := make([]*intern.Candidate, len(pool))
	for i, candidate := range pool {
		out[i] = candidate.Clone()
	}
	return out
}
