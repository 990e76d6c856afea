package screening

import "context"

// Matcher turns an uploaded resume into a profile and ranked job matches.
type Matcher interface {
	Match(ctx context.Context, in MatchInput) (Results, error)
}

// CannedMatcher returns a fixed profile and job set regardless of input.
type CannedMatcher struct{}

func (CannedMatcher) Match(ctx context.Context, _ MatchInput) (Results, error) {
	if err := ctx.Err(); err != nil {
		return Results{}, err
	}
	return Results{
		Resume:   cannedResume(),
		Jobs:     cannedJobs(),
		Feedback: cannedFeedback,
	}, nil
}

func cannedResume() ResumeData {
	return ResumeData{
		Name:  "John Doe",
		Email: "john.doe@example.com",
		Phone: "+91 9876543210",
		Skills: []Skill{
			{Name: "React", Level: "Advanced"},
			{Name: "TypeScript", Level: "Intermediate"},
			{Name: "Node.js", Level: "Intermediate"},
			{Name: "CSS/SCSS", Level: "Advanced"},
			{Name: "Redux", Level: "Intermediate"},
			{Name: "RESTful APIs", Level: "Advanced"},
			{Name: "Git", Level: "Intermediate"},
		},
		Experience: 4,
		Education: []string{
			"B.Tech in Computer Science, IIT Delhi (2015-2019)",
			"Higher Secondary, Delhi Public School (2013-2015)",
		},
		JobHistory: []JobHistory{
			{Company: "TechInnovate", Role: "Senior Frontend Developer", Duration: "Jan 2021 - Present"},
			{Company: "CodeCraft Solutions", Role: "Frontend Developer", Duration: "Jun 2019 - Dec 2020"},
		},
	}
}

func cannedJobs() []JobMatch {
	return []JobMatch{
		{
			ID:              "1",
			Title:           "Senior Frontend Engineer",
			Company:         "TCS",
			Location:        "Bangalore",
			SalaryRange:     "25-30 LPA",
			JobType:         "Full-time",
			PostedAt:        "2 days ago",
			Description:     "Join our team to build innovative web applications using React, TypeScript and modern frontend technologies.",
			Skills:          []string{"React", "TypeScript", "Redux", "REST APIs"},
			MatchPercentage: 92,
		},
		{
			ID:              "2",
			Title:           "Frontend Team Lead",
			Company:         "Infosys",
			Location:        "Hyderabad",
			SalaryRange:     "30-40 LPA",
			JobType:         "Full-time",
			PostedAt:        "5 days ago",
			Description:     "Looking for an experienced frontend developer to lead our web application development team.",
			Skills:          []string{"React", "TypeScript", "Team Leadership", "Architecture"},
			MatchPercentage: 85,
		},
		{
			ID:              "3",
			Title:           "React Developer",
			Company:         "HCL",
			Location:        "Pune",
			SalaryRange:     "18-25 LPA",
			JobType:         "Full-time",
			PostedAt:        "1 week ago",
			Description:     "Develop and maintain frontend applications using React, Redux and modern JavaScript frameworks.",
			Skills:          []string{"React", "JavaScript", "CSS", "Redux"},
			MatchPercentage: 88,
		},
	}
}

const cannedFeedback = `Based on your resume analysis:

Strengths:
• Strong frontend development skills with React and TypeScript
• Good understanding of modern web technologies
• Experience with full-stack development

Areas for Improvement:
1. Add more quantifiable achievements and metrics
2. Include specific project outcomes and impact
3. Highlight leadership and team collaboration experiences

Recommendations:
• Consider adding cloud certifications (AWS/Azure)
• Expand experience with containerization and microservices
• Include more details about system design experience`
